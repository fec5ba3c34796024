package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SlotsBot_Go/internal/economy"
	"github.com/osse101/SlotsBot_Go/internal/handler"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/metrics"
	"github.com/osse101/SlotsBot_Go/internal/slots"
	"github.com/osse101/SlotsBot_Go/internal/sse"
	"github.com/osse101/SlotsBot_Go/internal/stats"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	Version        string
	CORSOrigins    []string
	TrustedProxies []string
	// MaxRequestsPerWindow caps requests per client IP; 0 uses the default
	MaxRequestsPerWindow int
}

// Services bundles what the routes call into
type Services struct {
	Slots   slots.Service
	Economy economy.Service
	Stats   stats.Service
	Flusher handler.Flusher
	// Storage is pinged by /readyz; nil means nothing to check
	Storage handler.Pinger
	// Feed serves the live spin stream; nil disables the route
	Feed *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Middleware runs in the order registered.
func NewRouter(cfg Config, svc Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(cfg.MaxRequestsPerWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey, HeaderRequestID},
		ExposedHeaders:   []string{HeaderRequestID, handler.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           CORSMaxAgeSeconds,
	}))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Storage))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	slotsHandler := handler.NewSlotsHandler(svc.Slots, svc.Economy)
	adminHandler := handler.NewAdminHandler(svc.Economy, svc.Stats, svc.Flusher)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/slots/spin", slotsHandler.HandleSpin)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/balance", slotsHandler.HandleGetBalance)
			r.Post("/bonus", handler.HandleClaimBonus(svc.Economy))
			r.Put("/settings", handler.HandleUpdateSettings(svc.Economy))
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc.Stats))

		if svc.Feed != nil {
			r.Get("/events", sse.Handler(svc.Feed))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
			r.Post("/balance", adminHandler.HandleAdjustBalance)
			r.Get("/users", adminHandler.HandleListUsers)
			r.Get("/stats", adminHandler.HandleSystemStats)
			r.Post("/save", adminHandler.HandleSave)
		})
	})

	return r
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

// Unwrap lets http.ResponseController reach the underlying writer for flushing
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range quietPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags the request context with a request ID (reusing a
// client-supplied X-Request-ID) and logs start and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
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
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
