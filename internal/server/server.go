package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/FairSpin_Go/docs" // Registers the OpenAPI document served under /swagger
	"github.com/osse101/FairSpin_Go/internal/handler"
	"github.com/osse101/FairSpin_Go/internal/ledger"
	"github.com/osse101/FairSpin_Go/internal/logger"
	"github.com/osse101/FairSpin_Go/internal/metrics"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// Options holds the HTTP edge settings
type Options struct {
	Port               int
	CORSAllowedOrigins []string
	TrustedProxies     []string
	RateLimitPerWindow int
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance.
// lookup serves GET /api/v1/spins/{spinId}; readiness gates /readyz.
func NewServer(opts Options, slotsService slots.Service, balances ledger.Ledger, lookup handler.SpinLookup, readiness handler.Pinger) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimitPerWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(readiness))
	r.Get("/version", handler.HandleVersion(slotsService.Paytable().Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	spinHandler := handler.NewSpinHandler(slotsService, balances, lookup)
	verifyHandler := handler.NewVerifyHandler(slotsService)
	statsHandler := handler.NewStatsHandler(slotsService)

	// Public spin entry point
	r.Post("/spin", spinHandler.HandleSpin)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spin", spinHandler.HandleSpin)
		r.Post("/verify", verifyHandler.HandleVerify)
		r.Get("/spins/{spinId}", spinHandler.HandleGetSpin)
		r.Get("/stats", statsHandler.HandleGetStats)
		r.Get("/paytable", statsHandler.HandleGetPaytable)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Handler exposes the router for in-process testing
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor a caller-supplied id so spins can be traced across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
