package http

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/apratimrana/FInTracker/internal/core"
	"github.com/apratimrana/FInTracker/internal/middleware/ratelimit"
	"github.com/apratimrana/FInTracker/internal/middleware/security"
	"github.com/apratimrana/FInTracker/internal/middleware/trace"
)

// Store is the persistence surface the HTTP layer depends on.
type Store interface {
	CreateTransaction(ctx context.Context, in core.TransactionInput) (int64, error)
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	ListTransactions(ctx context.Context) ([]core.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, in core.TransactionInput) error
	DeleteTransaction(ctx context.Context, id int64) error

	Summary(ctx context.Context, month string) (core.Summary, error)
	ExpenseBreakdown(ctx context.Context) ([]core.CategoryTotal, error)
	MonthlyComparison(ctx context.Context) ([]core.MonthlyTotals, error)

	MonthlyBudget(ctx context.Context) (float64, error)
	SetMonthlyBudget(ctx context.Context, budget float64) error
	CategoryBudgets(ctx context.Context, month string) ([]core.CategoryBudget, error)
	SetCategoryBudget(ctx context.Context, category string, budget float64, month string) error
	DeleteCategoryBudget(ctx context.Context, category, month string) error

	Ping(ctx context.Context) error
}

// Server wires the API routes, the static frontend and the middleware chain
// around a Store.
type Server struct {
	http.Server

	store       Store
	frontendDir string

	limiter      *ratelimit.Limiter
	tracer       *trace.Middleware
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
// frontendDir is the directory the static frontend is served from.
func NewServer(addr string, store Store, frontendDir string, requestsPerMinute int) *Server {
	s := &Server{
		store:       store,
		frontendDir: frontendDir,
		limiter:     ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: requestsPerMinute}),
		tracer:      trace.NewMiddleware(clientIP),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", s.handleGetTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/charts/expense_breakdown", s.handleExpenseBreakdown)
	mux.HandleFunc("GET /api/charts/monthly_comparison", s.handleMonthlyComparison)
	mux.HandleFunc("GET /api/budget", s.handleGetBudget)
	mux.HandleFunc("POST /api/budget", s.handleSetMonthlyBudget)
	mux.HandleFunc("POST /api/budget/category", s.handleSetCategoryBudget)
	mux.HandleFunc("DELETE /api/budget/category/{category}", s.handleDeleteCategoryBudget)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", s.tracer.MetricsHandler())

	mux.HandleFunc("/", s.handleFrontend)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	cors := security.CORSMiddleware(security.DefaultCORSConfig())

	var handler http.Handler = mux
	handler = s.limitWrites(handler)
	handler = cors(handler)
	handler = headers.Middleware(handler)
	handler = s.tracer.Middleware(handler)

	s.Server = http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}

// limitWrites rate-limits mutating API calls per client IP. Reads and the
// frontend stay unthrottled.
func (s *Server) limitWrites(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(clientIP, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "")
	})(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") && r.Method != http.MethodGet {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Shutdown gracefully shuts down the server and its cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// clientIP extracts the client address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
