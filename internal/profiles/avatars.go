package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MaxAvatarSize        = 5 << 20
	avatarUploadValidity = 15 * time.Minute
)

var (
	ErrUnsupportedAvatarType = errors.New("only jpeg and png avatars are supported")
	ErrAvatarTooLarge        = errors.New("avatar must not exceed 5 MB")
)

var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// AvatarExtension returns the file extension for an accepted content type.
func AvatarExtension(contentType string) (string, error) {
	ext, ok := avatarExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", ErrUnsupportedAvatarType
	}
	return ext, nil
}

type AvatarStoreParams struct {
	Region        string
	Bucket        string
	BaseEndpoint  string
	PublicBaseURL string
	AccessKey     string
	SecretKey     string
}

// AvatarStore keeps avatars in an S3 compatible bucket. Browsers upload
// straight to the bucket through presigned PUT URLs.
type AvatarStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicBaseURL string
}

func NewAvatarStore(ctx context.Context, params AvatarStoreParams) (*AvatarStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(params.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if params.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(params.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	publicBaseURL := strings.TrimSuffix(params.PublicBaseURL, "/")
	if publicBaseURL == "" {
		publicBaseURL = strings.TrimSuffix(params.BaseEndpoint, "/") + "/" + params.Bucket
	}

	return &AvatarStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        params.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// PresignUpload returns a URL the browser can PUT exactly one object of the
// given type and size to.
func (s *AvatarStore) PresignUpload(ctx context.Context, key, contentType string, size int64) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3.avatars.presign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(avatarUploadValidity))
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}

	return req.URL, nil
}

func (s *AvatarStore) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3.avatars.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *AvatarStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// KeyFromURL returns the object key of an avatar URL served by this store.
func (s *AvatarStore) KeyFromURL(url string) (string, bool) {
	key, found := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !found || key == "" {
		return "", false
	}
	return key, true
}
