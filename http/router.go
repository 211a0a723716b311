package http

import (
	"net/http"

	"go.uber.org/zap"
)

// RouterOptions wires the router. Limiter and Metrics are optional.
type RouterOptions struct {
	Handler *CalculatorHandler
	Limiter *RateLimiter
	Metrics *Metrics
	Logger  *zap.Logger
}

// NewRouter registers every calculator under /api/v1 plus history, health and
// metrics endpoints.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := opts.Handler

	mux := http.NewServeMux()
	handle := func(route string, handler http.Handler, limited bool) {
		if limited && opts.Limiter != nil {
			handler = RateLimitMiddleware(opts.Limiter, logger, handler)
		}
		if opts.Metrics != nil {
			handler = opts.Metrics.Middleware(route, handler)
		}
		mux.Handle(route, handler)
	}

	handle("/api/v1/mortgage", h.Mortgage(), true)
	handle("/api/v1/antler", h.Antler(), true)
	handle("/api/v1/stock-options", h.StockOption(), true)
	handle("/api/v1/crs", h.CRS(), true)
	handle("/api/v1/fswp", h.FSWP(), true)
	handle("/api/v1/heloc", h.HELOC(), true)
	handle("/api/v1/sonnet/generate", h.Sonnet(), true)
	handle("/api/v1/sonnet/analyze", h.AnalyzeSonnet(), true)
	handle("/api/v1/supplement-label", h.Supplement(), true)
	handle("/api/v1/history", http.HandlerFunc(h.History), true)
	handle("/api/v1/tools", http.HandlerFunc(h.Tools), false)
	handle("/healthz", http.HandlerFunc(h.Healthz), false)
	if opts.Metrics != nil {
		mux.Handle("/metrics", opts.Metrics.Handler())
	}

	return RequestIDMiddleware(LoggingMiddleware(logger, mux))
}
