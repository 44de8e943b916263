package handlers

import (
	"restro-analytics-service/internal/analytics"
	"restro-analytics-service/internal/config"
	"restro-analytics-service/internal/queue"
	"restro-analytics-service/internal/storage"
	"restro-analytics-service/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Handler struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  config.Config
	Queue   *queue.Client
	Objects *storage.ObjectStore
	Engine  *analytics.Engine
	Lookups *store.Lookups
}
