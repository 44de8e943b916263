package httpapi

import (
	"net/http"
	"time"

	"restro-analytics-service/internal/analytics"
	"restro-analytics-service/internal/config"
	"restro-analytics-service/internal/http/handlers"
	"restro-analytics-service/internal/middleware"
	"restro-analytics-service/internal/queue"
	"restro-analytics-service/internal/storage"
	"restro-analytics-service/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func NewRouter(db *pgxpool.Pool, logger *zap.Logger, cfg config.Config, queueClient *queue.Client, objects *storage.ObjectStore, engine *analytics.Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			AllowCredentials: true,
			MaxAge:           300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{
		DB:      db,
		Logger:  logger,
		Config:  cfg,
		Queue:   queueClient,
		Objects: objects,
		Engine:  engine,
		Lookups: store.NewLookups(db),
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/restaurant", func(r chi.Router) {
		r.Use(middleware.RestaurantAuth(cfg.JWTSecret))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/date-ranges", h.DateRanges)
			r.Get("/sales", h.SalesAnalytics)
			r.Get("/report.pdf", h.ReportPDF)
			r.Get("/export.csv", h.ExportCSV)
		})
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
