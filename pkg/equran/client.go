// Package equran is a small client for the public equran.id chapter API.
package equran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://equran.id/api/v2"

const maxChapter = 114

var (
	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "alhafizh",
		Subsystem: "equran",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of chapter detail requests",
	})

	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alhafizh",
		Subsystem: "equran",
		Name:      "fetch_total",
		Help:      "Chapter detail lookups by outcome",
	}, []string{"outcome"})
)

// Config defines the client options.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client fetches chapter details and memoizes them for the process lifetime.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	tracer     trace.Tracer

	mu    sync.RWMutex
	cache map[int]ChapterDetail
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		logger:     cfg.Logger.With().Str("component", "equran_client").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/alhafizh-api/pkg/equran"),
		cache:      make(map[int]ChapterDetail),
	}
}

// FetchChapterDetail returns the chapter, or nil when it cannot be obtained.
// Failures are logged, never returned.
func (c *Client) FetchChapterDetail(ctx context.Context, number int) *ChapterDetail {
	if cached, ok := c.cached(number); ok {
		fetchTotal.WithLabelValues("cache_hit").Inc()
		return &cached
	}

	detail, err := c.fetch(ctx, number)
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		c.logger.Error().Err(err).Int("chapter", number).Msg("failed to fetch chapter detail")
		return nil
	}

	fetchTotal.WithLabelValues("fetched").Inc()
	c.mu.Lock()
	c.cache[number] = detail
	c.mu.Unlock()

	return &detail
}

func (c *Client) cached(number int) (ChapterDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	detail, ok := c.cache[number]
	return detail, ok
}

func (c *Client) fetch(parent context.Context, number int) (ChapterDetail, error) {
	ctx, span := c.tracer.Start(parent, "equran.fetch_chapter", trace.WithAttributes(
		attribute.Int("chapter", number),
	))
	defer span.End()

	detail, err := c.doFetch(ctx, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return detail, err
}

func (c *Client) doFetch(ctx context.Context, number int) (ChapterDetail, error) {
	if number < 1 || number > maxChapter {
		return ChapterDetail{}, fmt.Errorf("chapter %d out of range", number)
	}

	start := time.Now()
	defer func() { fetchDuration.Observe(time.Since(start).Seconds()) }()

	url := c.baseURL + "/surat/" + strconv.Itoa(number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ChapterDetail{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ChapterDetail{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChapterDetail{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ChapterDetail{}, fmt.Errorf("http status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ChapterDetail{}, fmt.Errorf("parse envelope: %w", err)
	}
	if env.Code != http.StatusOK {
		message := env.Message
		if message == "" {
			message = "failed to fetch chapter detail"
		}
		return ChapterDetail{}, fmt.Errorf("api code %d: %s", env.Code, message)
	}

	var wire wireChapter
	if err := json.Unmarshal(env.Data, &wire); err != nil {
		return ChapterDetail{}, fmt.Errorf("parse chapter: %w", err)
	}
	if wire.Nomor != number {
		return ChapterDetail{}, fmt.Errorf("unexpected chapter %d in response", wire.Nomor)
	}

	return wire.toDetail(), nil
}
