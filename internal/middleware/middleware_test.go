package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"qr-menu/pkg/log"
)

func newRouter(h ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", append(h, func(c *gin.Context) { c.String(http.StatusOK, "ok") })...)
	return r
}

func do(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	mw := New(log.NewNop(), Config{AdminAPIKey: "s3cret"})
	r := newRouter(mw.AdminAuth())

	if w := do(r, AdminKeyHeader, "s3cret"); w.Code != http.StatusOK {
		t.Errorf("expected 200 with the right key, got %d", w.Code)
	}
	if w := do(r, AdminKeyHeader, "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a wrong key, got %d", w.Code)
	}
	if w := do(r, "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a key, got %d", w.Code)
	}
}

func TestAdminAuthWithoutConfiguredKey(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newRouter(mw.AdminAuth())

	if w := do(r, AdminKeyHeader, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when no admin key is configured, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 60, RateLimitBurst: 2})
	r := newRouter(mw.RateLimit())

	for i := 0; i < 2; i++ {
		if w := do(r, "", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 within burst, got %d", i, w.Code)
		}
	}
	if w := do(r, "", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newRouter(mw.RateLimit())

	for i := 0; i < 50; i++ {
		if w := do(r, "", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with limiting disabled, got %d", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	var seen string
	r := newRouter(mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
	})

	w := do(r, RequestIDHeader, "abc")
	if seen != "abc" || w.Header().Get(RequestIDHeader) != "abc" {
		t.Errorf("expected incoming id to propagate, got ctx=%q header=%q", seen, w.Header().Get(RequestIDHeader))
	}

	w = do(r, "", "")
	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected a generated id, got ctx=%q header=%q", seen, w.Header().Get(RequestIDHeader))
	}
}
