package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"order-intake/internal/middleware"
	"order-intake/pkg/log"
	"order-intake/pkg/metrics"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/orders", handlers...)
	return r
}

func get(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	tcs := map[string]struct {
		key    string
		header string
		want   int
	}{
		"disabled":  {key: "", header: "", want: http.StatusOK},
		"missing":   {key: "secret", header: "", want: http.StatusUnauthorized},
		"wrong key": {key: "secret", header: "nope", want: http.StatusUnauthorized},
		"match":     {key: "secret", header: "secret", want: http.StatusOK},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			mw := middleware.New(log.NewNop(), nil, middleware.Config{APIKey: tc.key})
			r := newRouter(mw.Auth())

			w := get(r, map[string]string{middleware.APIKeyHeader: tc.header})
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := middleware.New(log.NewNop(), nil, middleware.Config{RateLimitPerMin: 60})
	r := newRouter(mw.RateLimit())

	for i := range 6 {
		if w := get(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
	if w := get(r, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), nil, middleware.Config{})
	r := newRouter(mw.RateLimit())

	for range 50 {
		if w := get(r, nil); w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	}
}

func TestLogging(t *testing.T) {
	m := metrics.NewRegistry()
	mw := middleware.New(log.NewNop(), m, middleware.Config{})
	r := newRouter(mw.Logging())

	w := get(r, map[string]string{middleware.RequestIDHeader: "req-1"})
	if w.Header().Get(middleware.RequestIDHeader) != "req-1" {
		t.Errorf("request id not echoed: %q", w.Header().Get(middleware.RequestIDHeader))
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/orders", "200")); got != 1 {
		t.Errorf("requests counter = %v, want 1", got)
	}

	w = get(r, nil)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected generated request id")
	}
}
