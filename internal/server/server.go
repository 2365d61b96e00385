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

	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/database"
	"github.com/concretemix/smartmix/internal/erp"
	"github.com/concretemix/smartmix/internal/handler"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/material"
	"github.com/concretemix/smartmix/internal/metrics"
	"github.com/concretemix/smartmix/internal/mix"
	"github.com/concretemix/smartmix/internal/task"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	materialService material.Service
	mixService      mix.Service
	taskService     task.Service
	costService     cost.Service
	erpService      erp.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey, erpToken string, trustedProxies []string, dbPool database.Pool, materialService material.Service, mixService mix.Service, taskService task.Service, costService cost.Service, erpService erp.Service) *Server {
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

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	materialHandler := handler.NewMaterialHandler(materialService)
	mixHandler := handler.NewMixHandler(mixService)
	taskHandler := handler.NewTaskHandler(taskService)
	costHandler := handler.NewCostHandler(costService)
	erpHandler := handler.NewErpHandler(erpService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", materialHandler.List)
			r.Get("/{id}", materialHandler.Get)
			r.Get("/{id}/price", materialHandler.CurrentPrice)
			r.Get("/{id}/prices", materialHandler.PriceHistory)
		})

		r.Route("/mix/recipes", func(r chi.Router) {
			r.Get("/", mixHandler.List)
			r.Post("/", mixHandler.Create)
			r.Get("/{id}", mixHandler.Get)
			r.Put("/{id}", mixHandler.Update)
			r.Post("/{id}/approve", mixHandler.Approve)
			r.Post("/{id}/disable", mixHandler.Disable)
			r.Post("/{id}/copy", mixHandler.Copy)
			r.Get("/{id}/cost", costHandler.PriceRecipe)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Get("/{id}", taskHandler.Get)
			r.Post("/{id}/select-mix", taskHandler.SelectMix)
			r.Post("/{id}/start", taskHandler.Start)
			r.Post("/{id}/complete", taskHandler.Complete)
			r.Post("/{id}/cancel", taskHandler.Cancel)
		})

		r.Get("/cost/recommendations", costHandler.Recommend)

		// ERP integration routes. The push endpoints carry an extra shared
		// token so a leaked API key alone cannot feed us data.
		r.Route("/erp", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(ErpTokenMiddleware(erpToken, trustedProxies, detector))
				r.Post("/materials", erpHandler.SyncMaterials)
				r.Post("/material-prices", erpHandler.SyncPrices)
				r.Post("/production-tasks", erpHandler.SyncTasks)
			})
			r.Get("/sync-logs", erpHandler.ListSyncLogs)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		materialService: materialService,
		mixService:      mixService,
		taskService:     taskService,
		costService:     costService,
		erpService:      erpService,
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

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

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

		// Sanitize headers for debug logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderErpToken) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

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
