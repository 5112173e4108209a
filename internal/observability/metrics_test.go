package observability

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, 0)
		m.RecordError("/", "GET", "NOT_FOUND")
		m.RecordAuthDecision("allowed")
	})
	assert.NotNil(t, m.Handler())
}

func TestMetrics_AuthDecisions(t *testing.T) {
	m := NewMetrics()
	m.RecordAuthDecision("forbidden")
	m.RecordAuthDecision("forbidden")
	m.RecordAuthDecision("allowed")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.authDecisions.WithLabelValues("forbidden")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.authDecisions.WithLabelValues("allowed")))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), m))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/denied", func(*fiber.Ctx) error { return apperrors.NewForbidden("insufficient role") })
	app.Get("/boom", func(*fiber.Ctx) error { return errors.New("boom") })

	for _, path := range []string{"/ok", "/denied", "/boom"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(403), entries[1].ContextMap()["status"])
	assert.Equal(t, int64(500), entries[2].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/denied", "GET", "403")))
}

func TestRequestLogger_UnmatchedRoutesShareOneLabel(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, path := range []string{"/items/1", "/items/2", "/nowhere-1", "/nowhere-2"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/items/:id", "GET", "204")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues(UnmatchedRoute, "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestsTotal))
}
