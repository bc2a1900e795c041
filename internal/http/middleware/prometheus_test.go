package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	app.Get("/collections/:collection/documents/:key", func(c *fiber.Ctx) error {
		assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsInFlight))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/collections/:collection/documents/:key", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Put("/collections/:collection/documents/:key", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusPreconditionFailed, "revision mismatch")
	})
	app.Post("/collections/:collection/documents", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	const route = "/collections/:collection/documents/:key"
	tests := []struct {
		name   string
		method string
		target string
		route  string
		status string
	}{
		{name: "read", method: "GET", target: "/collections/customers/documents/1", route: route, status: "200"},
		{name: "other key same route", method: "GET", target: "/collections/orders/documents/2", route: route, status: "200"},
		{name: "delete", method: "DELETE", target: "/collections/customers/documents/1", route: route, status: "204"},
		{name: "fiber error", method: "PUT", target: "/collections/customers/documents/1", route: route, status: "412"},
		{name: "plain error", method: "POST", target: "/collections/customers/documents", route: "/collections/:collection/documents", status: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
		})
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", route, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("DELETE", route, "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("PUT", route, "412")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("POST", "/collections/:collection/documents", "500")))
	assert.Equal(t, 4, testutil.CollectAndCount(m.requestDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestsInFlight))
}

func TestPrometheusMiddlewareSkipsMetrics(t *testing.T) {
	app, _, reg := newMetricsApp(t)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "arangodoc_gateway_requests_total" {
			assert.Empty(t, mf.GetMetric())
		}
	}
}

func TestPrometheusMiddlewareDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
