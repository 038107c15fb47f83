package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestHeadersMiddleware_AppliesDefaults(t *testing.T) {
	h := NewHeadersMiddleware(DefaultHeadersConfig())

	rec := httptest.NewRecorder()
	h.Middleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, "cross-origin", rec.Header().Get("Cross-Origin-Resource-Policy"))
	// HSTS only applies to TLS requests
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestHeadersMiddleware_NoCSPWhenEmpty(t *testing.T) {
	cfg := DefaultHeadersConfig()
	cfg.CSP = ""
	h := NewHeadersMiddleware(cfg)

	rec := httptest.NewRecorder()
	h.Middleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestCORSMiddleware_StampsHeaders(t *testing.T) {
	mw := CORSMiddleware(DefaultCORSConfig())

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSMiddleware_AnswersPreflight(t *testing.T) {
	mw := CORSMiddleware(DefaultCORSConfig())

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/transactions", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called, "preflight must not reach the handler")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
