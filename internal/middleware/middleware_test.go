package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/internal/middleware"
	"github.com/noah-isme/alhafizh-api/internal/observability"
)

func TestCorrelationIDReusesIncomingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		fromCtx := middleware.CorrelationIDFromContext(c.UserContext())
		return c.SendString(middleware.GetCorrelationID(c) + "|" + fromCtx)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, "req-42", resp.Header.Get(middleware.CorrelationHeader))

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	require.Equal(t, "req-42|req-42", string(body[:n]))
}

func TestCorrelationIDGeneratesWhenMissing(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Header.Get(middleware.CorrelationHeader))
}

func TestContextWithCorrelationIgnoresBlank(t *testing.T) {
	ctx := middleware.ContextWithCorrelation(context.Background(), "  ")
	require.NotNil(t, ctx)
	require.Empty(t, middleware.CorrelationIDFromContext(ctx))

	ctx = middleware.ContextWithCorrelation(ctx, " abc ")
	require.Equal(t, "abc", middleware.CorrelationIDFromContext(ctx))
}

func TestObservabilityCountsAPIRoutesOnly(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Observability(zerolog.Nop()))
	app.Get("/api/v1/things/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	requests := observability.APIRequests().WithLabelValues(http.MethodGet, "/api/v1/things/:id", "404")
	errs := observability.APIErrors().WithLabelValues(http.MethodGet, "/api/v1/things/:id", "404")
	beforeRequests := counterValue(t, requests)
	beforeErrors := counterValue(t, errs)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/things/7", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	require.Equal(t, beforeRequests+1, counterValue(t, requests))
	require.Equal(t, beforeErrors+1, counterValue(t, errs))

	health := observability.APIRequests().WithLabelValues(http.MethodGet, "/health", "200")
	require.Zero(t, counterValue(t, health))
}

func TestRateLimitRejectsAfterMax(t *testing.T) {
	app := fiber.New()
	app.Post("/import", middleware.RateLimit("import", 2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/import", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/import", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func counterValue(t *testing.T, counter interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, counter.Write(metric))
	return metric.GetCounter().GetValue()
}
