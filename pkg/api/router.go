package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/internal/telemetry"
	"github.com/marmos91/dittologin/pkg/api/handlers"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Tracing and custom request logging using the internal logger
//   - Panic recovery to prevent server crashes
//   - A 30s request timeout
//
// Routes:
//   - GET /health - Liveness probe
//   - GET /health/identity - Login user probe
//   - GET /metrics - Prometheus exposition (only when gatherer is non-nil)
func NewRouter(identity handlers.IdentitySource, gatherer prometheus.Gatherer) http.Handler {
	return newRouter(identity, gatherer, 30*time.Second)
}

func newRouter(identity handlers.IdentitySource, gatherer prometheus.Gatherer, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	healthHandler := handlers.NewHealthHandler(identity)

	// Health routes - unauthenticated
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/identity", healthHandler.Identity)
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	return r
}

// requestLogger is a custom middleware that traces and logs requests using
// the internal telemetry and logger packages.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		ctx, span := telemetry.StartAPISpan(r.Context(), r.Method, r.URL.Path, telemetry.ClientIP(r.RemoteAddr))
		defer span.End()

		lc := logger.NewLogContext("api").
			WithRequest(requestID, r.RemoteAddr).
			WithTrace(telemetry.TraceID(ctx), telemetry.SpanID(ctx))
		ctx = logger.WithContext(ctx, lc)

		logger.DebugCtx(ctx, "API request started",
			logger.KeyMethod, r.Method,
			logger.KeyPath, r.URL.Path,
		)

		// Wrap response writer to capture status code
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.InfoCtx(ctx, "API request completed",
			logger.KeyMethod, r.Method,
			logger.KeyPath, r.URL.Path,
			logger.KeyStatus, ww.Status(),
			"bytes", ww.BytesWritten(),
			logger.KeyDurationMs, logger.Duration(start),
		)
	})
}
