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

	"github.com/cageside/fightcred/internal/database"
	"github.com/cageside/fightcred/internal/fight"
	"github.com/cageside/fightcred/internal/handler"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/metrics"
	"github.com/cageside/fightcred/internal/prediction"
	"github.com/cageside/fightcred/internal/profile"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	fightService      fight.Service
	predictionService prediction.Service
	profileService    profile.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, fightService fight.Service, predictionService prediction.Service, profileService profile.Service, pollTrigger handler.PollTrigger) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
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
		// Fight lifecycle routes
		r.Route("/fights", func(r chi.Router) {
			r.Post("/", handler.HandleCreateFight(fightService))
			r.Get("/", handler.HandleListFights(fightService))

			r.Route("/{fightID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetFight(fightService))
				r.Post("/lock", handler.HandleLockFight(fightService))
				r.Post("/cancel", handler.HandleCancelFight(fightService))
				r.Post("/resolve", handler.HandleResolveFight(fightService))

				r.Post("/predictions", handler.HandleSubmitPrediction(predictionService))
				r.Get("/predictions", handler.HandleListFightPredictions(predictionService))
				r.Get("/predictions/{userID}", handler.HandleGetPrediction(predictionService))
			})
		})

		// User profile and history routes
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/profile", handler.HandleGetProfile(profileService))
			r.Get("/fighters", handler.HandleFighterStats(profileService))
			r.Get("/history", handler.HandleCredibilityHistory(profileService))
			r.Get("/predictions", handler.HandleListUserPredictions(predictionService))
		})

		r.Get("/leaderboard", handler.HandleLeaderboard(profileService))

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/poll", handler.HandleTriggerPoll(pollTrigger))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		fightService:      fightService,
		predictionService: predictionService,
		profileService:    profileService,
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

		// Generate unique request ID
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
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
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
