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

	"github.com/wmateusz/mealweek/internal/catalog"
	"github.com/wmateusz/mealweek/internal/category"
	"github.com/wmateusz/mealweek/internal/database"
	"github.com/wmateusz/mealweek/internal/handler"
	"github.com/wmateusz/mealweek/internal/logger"
	"github.com/wmateusz/mealweek/internal/metrics"
	"github.com/wmateusz/mealweek/internal/plan"
)

// Server hosts the JSON API the presentation layer talks to.
type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	planSvc    plan.Service
	catalogSvc catalog.Service
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, planSvc plan.Service, catalogSvc catalog.Service, registry category.Registry) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(securityHeadersMiddleware)
	r.Use(requestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		planHandler := handler.NewPlanHandler(planSvc)
		r.Route("/plan", func(r chi.Router) {
			r.Post("/week", planHandler.LoadWeek)
			r.Get("/week/current", planHandler.CurrentWeek)
			r.Post("/assign", planHandler.Assign)
			r.Post("/assign-date", planHandler.AssignDate)
			r.Post("/clear-day", planHandler.ClearDay)
			r.Post("/remove-date", planHandler.RemoveDate)
			r.Post("/copy-week", planHandler.CopyWeek)
			r.Post("/move", planHandler.Move)
			r.Get("/month", planHandler.MonthProjection)

			shoppingHandler := handler.NewShoppingHandler(planSvc, catalogSvc)
			r.Get("/shopping-list", shoppingHandler.ShoppingList)
		})

		recipeHandler := handler.NewRecipeHandler(catalogSvc)
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeHandler.List)
			r.Post("/", recipeHandler.Save)
			r.Get("/{id}", recipeHandler.Get)
			r.Delete("/{id}", recipeHandler.Delete)
		})

		categoryHandler := handler.NewCategoryHandler(registry)
		r.Get("/categories", categoryHandler.List)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:     dbPool,
		planSvc:    planSvc,
		catalogSvc: catalogSvc,
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

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func requestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
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
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
