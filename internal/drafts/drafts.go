package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTTL     = 7 * 24 * time.Hour
	draftKeyPrefix = "workoutworks-draft||"
)

var (
	ErrDraftNotFound = errors.New("draft not found")
	ErrDraftCorrupt  = errors.New("draft is corrupt")
	ErrUnknownForm   = errors.New("unknown form")
)

var forms = map[string]bool{
	"meal":     true,
	"metric":   true,
	"goal":     true,
	"exercise": true,
}

func IsKnownForm(form string) bool {
	return forms[form]
}

// Draft is the unsaved state of one form of one user.
type Draft struct {
	OwnerID uuid.UUID       `json:"ownerId"`
	Form    string          `json:"form"`
	Fields  json.RawMessage `json:"fields"`
	SavedAt time.Time       `json:"savedAt"`
}

type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
	Now         func() time.Time
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
		Now:         time.Now,
	}
}

func draftKey(ownerID uuid.UUID, form string) string {
	return draftKeyPrefix + ownerID.String() + "||" + form
}

// Save replaces the draft of the form and restarts its TTL.
func (s *Store) Save(ctx context.Context, ownerID uuid.UUID, form string, fields json.RawMessage) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "drafts.store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("form", form))

	if !IsKnownForm(form) {
		return nil, ErrUnknownForm
	}

	draft := Draft{
		OwnerID: ownerID,
		Form:    form,
		Fields:  fields,
		SavedAt: s.Now().UTC(),
	}
	encoded, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}

	if err := s.redisClient.Set(ctx, draftKey(ownerID, form), string(encoded), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	return &draft, nil
}

// Restore returns the saved draft. A value that no longer decodes is
// removed and reported as ErrDraftCorrupt.
func (s *Store) Restore(ctx context.Context, ownerID uuid.UUID, form string) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "drafts.store.restore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("form", form))

	if !IsKnownForm(form) {
		return nil, ErrUnknownForm
	}

	key := draftKey(ownerID, form)
	raw, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil || draft.OwnerID != ownerID || draft.Form != form {
		log.Warnf("dropping corrupt draft %s", key)
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			log.Errorf("delete corrupt draft %s: %s", key, delErr)
		}
		return nil, ErrDraftCorrupt
	}

	return &draft, nil
}

func (s *Store) Clear(ctx context.Context, ownerID uuid.UUID, form string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "drafts.store.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !IsKnownForm(form) {
		return ErrUnknownForm
	}

	if err := s.redisClient.Del(ctx, draftKey(ownerID, form)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
