package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/DexBinder_Go/internal/binder"
	"github.com/osse101/DexBinder_Go/internal/database"
	"github.com/osse101/DexBinder_Go/internal/dex"
	"github.com/osse101/DexBinder_Go/internal/handler"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/metrics"
	"github.com/osse101/DexBinder_Go/internal/session"
)

// Config carries everything NewServer needs to assemble the router.
type Config struct {
	Port              int
	SessionCookieName string
	AuthDisabled      bool
	TrustedProxies    []string
}

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	binderService binder.Service
	dexService    dex.Service
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, binderService binder.Service, dexService dex.Service, sessions session.Validator) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost).
	// Request IDs are attached first so every failure, including auth and
	// rate-limit rejections, carries the correlation id in its envelope.
	detector := NewSuspiciousActivityDetector()

	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.SessionCookieName, cfg.AuthDisabled, sessions, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		slotsHandler := handler.NewSlotsHandler(binderService)
		r.Route("/slots", func(r chi.Router) {
			r.Get("/", slotsHandler.HandleList)
			r.Post("/", slotsHandler.HandleCreate)
			r.Post("/admin/seed", slotsHandler.HandleSeed)

			r.Route("/{number}", func(r chi.Router) {
				r.Get("/", slotsHandler.HandleGet)
				r.Patch("/", slotsHandler.HandlePatchMeta)
				r.Put("/replace", slotsHandler.HandleReplace)
				r.Delete("/current", slotsHandler.HandleClear)
			})
		})

		dexHandler := handler.NewDexHandler(dexService)
		r.Route("/dex", func(r chi.Router) {
			r.Get("/", dexHandler.HandleList)
			r.Post("/", dexHandler.HandleCreate)

			r.Route("/{number}", func(r chi.Router) {
				r.Get("/", dexHandler.HandleGet)
				r.Put("/", dexHandler.HandleUpdate)
				r.Delete("/", dexHandler.HandleDelete)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:        dbPool,
		binderService: binderService,
		dexService:    dexService,
	}
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
		statusCode:     http.StatusOK, // default status
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

// requestIDMiddleware attaches a fresh request id to the context before any
// other middleware runs
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, "Cookie") || strings.EqualFold(k, HeaderAuthorization) {
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
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
