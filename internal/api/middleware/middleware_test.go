package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/pkg/logger"
	"github.com/bandicon/jam-schedule-service/pkg/metrics"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	var gotID int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		status int
		userID int64
	}{
		{"valid", "3", http.StatusOK, 3},
		{"missing", "", http.StatusUnauthorized, 0},
		{"not a number", "abc", http.StatusUnauthorized, 0},
		{"zero", "0", http.StatusUnauthorized, 0},
		{"negative", "-4", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.userID, gotID)
		})
	}
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		rid := rec.Header().Get(RequestIDHeader)
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, fromCtx)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", fromCtx)
	})

	t.Run("too long is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func newTestLimiter(t *testing.T, opts RateLimiterOptions) *RateLimiter {
	t.Helper()
	rl, err := NewRateLimiter(opts, logger.NewNop())
	require.NoError(t, err)
	return rl
}

func TestRateLimiter(t *testing.T) {
	rl := newTestLimiter(t, RateLimiterOptions{RPS: 0.001, Burst: 2})
	h := rl.Middleware(http.HandlerFunc(okHandler))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// у другого IP своя корзина
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}

func TestRateLimiter_ForwardedForWithoutTrustedProxy(t *testing.T) {
	rl := newTestLimiter(t, RateLimiterOptions{RPS: 0.001, Burst: 1})
	h := rl.Middleware(http.HandlerFunc(okHandler))

	do := func(fwd string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.9:5555"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.1"))
	// смена заголовка не дает новую корзину
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.2"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := newTestLimiter(t, RateLimiterOptions{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("10.0.0.1")
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.size())

	now = now.Add(30 * time.Second)
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.size())

	now = now.Add(40 * time.Second)
	rl.limiter("10.0.0.3")
	// 10.0.0.1 простаивал 70s, 10.0.0.2 - 40s
	assert.Equal(t, 2, rl.size())
	_, ok := rl.visitors["10.0.0.1"]
	assert.False(t, ok)
}

func TestNewRateLimiter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRateLimiter(RateLimiterOptions{RPS: 1, Burst: 1, TrustedProxies: []string{"not-an-ip"}}, logger.NewNop())
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	rl := newTestLimiter(t, RateLimiterOptions{RPS: 1, Burst: 1, TrustedProxies: []string{"10.0.0.0/8", "192.168.1.5"}})

	tests := []struct {
		name   string
		remote string
		fwd    string
		want   string
	}{
		{"no header", "192.168.1.5:1234", "", "192.168.1.5"},
		{"untrusted remote ignores header", "198.51.100.9:1234", "203.0.113.7", "198.51.100.9"},
		{"trusted remote", "192.168.1.5:1234", "203.0.113.7", "203.0.113.7"},
		{"trusted chain", "10.0.0.2:1234", "203.0.113.7, 10.0.0.1", "203.0.113.7"},
		{"spoofed left entry", "10.0.0.2:1234", "1.1.1.1, 203.0.113.7", "203.0.113.7"},
		{"garbage hop", "10.0.0.2:1234", "evil", "10.0.0.2"},
		{"only proxies", "10.0.0.2:1234", "10.0.0.3", "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.fwd != "" {
				req.Header.Set("X-Forwarded-For", tt.fwd)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/jams/{jamId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jams/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/jams/{jamId}", "418"))
	assert.Equal(t, float64(2), got)
}
