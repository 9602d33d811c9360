package inference

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/metrics"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte = 1024 * 1024
	oneHour  = 60 * 60

	outcomeOK     = "ok"
	outcomeError  = "error"
	outcomeCached = "cached"

	// upstream error bodies are only logged, keep them short
	maxErrorBodyLog = 512
)

var (
	ErrUpstream        = errors.New("inference upstream error")
	ErrEmptyCompletion = errors.New("inference returned no content")
)

type ClientParams struct {
	BaseURL          string // e.g. https://api.openai.com/v1
	APIKey           string
	Model            string
	CacheSizeMB      int
	CacheExpireHours int
	HTTPClient       *http.Client
	MetricsManager   *metrics.Manager
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI compatible chat completions endpoint.
// Answers are cached in memory, one attempt per question, no retries.
type Client struct {
	baseURL        string
	apiKey         string
	model          string
	httpClient     *http.Client
	cache          *freecache.Cache
	cacheExpire    int
	metricsManager *metrics.Manager
}

func NewClient(params ClientParams) *Client {
	cacheSizeMB := params.CacheSizeMB
	if cacheSizeMB <= 0 {
		cacheSizeMB = 20
	}
	cacheExpireHours := params.CacheExpireHours
	if cacheExpireHours <= 0 {
		cacheExpireHours = 24
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	return &Client{
		baseURL:        strings.TrimSuffix(params.BaseURL, "/"),
		apiKey:         params.APIKey,
		model:          params.Model,
		httpClient:     httpClient,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		cacheExpire:    cacheExpireHours * oneHour,
		metricsManager: metricsManager,
	}
}

// Complete returns the trimmed content of the first choice.
func (c *Client) Complete(ctx context.Context, task Task, messages []Message, temperature *float64) (content string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "inference.client.complete")
	span.SetAttributes(attribute.String("task", string(task)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reqBody := chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	cacheKey := cacheKeyFor(task, reqBytes)
	if cached, cacheErr := c.cache.Get(cacheKey); cacheErr == nil {
		log.Tracef("inference [%s]: answer found in cache", task)
		c.metricsManager.CounterInferenceCacheHits.Inc()
		c.metricsManager.CounterInferenceRequests.WithLabelValues(string(task), outcomeCached).Inc()
		return string(cached), nil
	}

	start := time.Now()
	content, err = c.doRequest(ctx, reqBytes)
	c.metricsManager.HistogramInferenceDuration.WithLabelValues(string(task)).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metricsManager.CounterInferenceRequests.WithLabelValues(string(task), outcomeError).Inc()
		return "", err
	}
	c.metricsManager.CounterInferenceRequests.WithLabelValues(string(task), outcomeOK).Inc()

	if err := c.cache.Set(cacheKey, []byte(content), c.cacheExpire); err != nil {
		log.Errorf("inference [%s]: failed to cache answer: %s", task, err)
	}

	return content, nil
}

func (c *Client) doRequest(ctx context.Context, reqBytes []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("new completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body := respBytes
		if len(body) > maxErrorBodyLog {
			body = body[:maxErrorBodyLog]
		}
		log.Errorf("inference upstream responded %d: %s", resp.StatusCode, body)
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	return content, nil
}

func cacheKeyFor(task Task, reqBytes []byte) []byte {
	sum := sha256.Sum256(reqBytes)
	return []byte(string(task) + "::" + hex.EncodeToString(sum[:]))
}
