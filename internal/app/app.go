// Package app assembles the sync engine from configuration. It is shared by
// the HTTP server and the operator CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"creative-sync/internal/adapter/memory"
	"creative-sync/internal/adapter/partner"
	"creative-sync/internal/adapter/postgres"
	redisadapter "creative-sync/internal/adapter/redis"
	"creative-sync/internal/adapter/usecase"
	"creative-sync/internal/adapter/webhook"
	"creative-sync/internal/config"
	"creative-sync/internal/config/configs"
	"creative-sync/internal/core/port"
	"creative-sync/internal/db"
)

// App holds the wired engine and the resources it owns.
type App struct {
	Service *usecase.SyncService
	Gateway *usecase.NotificationGateway

	pool  *pgxpool.Pool
	redis *redis.Client
	dedup port.DedupStore
}

type repositories struct {
	catalog       port.CatalogRepository
	statuses      port.SyncStatusRepository
	notifications port.NotificationRepository
}

// New connects the configured backends, applies migrations and seed data
// when requested, and builds the engine. The caller must Close the App.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}

	repos, err := a.openStorage(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Redis.Enabled() {
		a.redis, err = db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.dedup = redisadapter.NewDedupStore(a.redis, cfg.Redis.KeyPrefix)
	} else {
		a.dedup = memory.NewDedupStore()
	}

	var deliverer port.WebhookDeliverer
	if cfg.Webhook.URL != "" {
		deliverer = webhook.NewDeliverer(repos.notifications, cfg.Webhook, logger.With(slog.String("component", "webhook")))
	} else {
		deliverer = webhook.NewLogDeliverer(logger.With(slog.String("component", "webhook")))
	}

	a.Gateway = usecase.NewNotificationGateway(repos.notifications, a.dedup, deliverer, logger.With(slog.String("component", "notifications")))
	a.Service = usecase.NewSyncService(repos.catalog, repos.statuses, newTransport(cfg, logger), a.Gateway, cfg.Sync.BatchSize, logger)
	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, error) {
	if strings.EqualFold(cfg.Sync.Storage, configs.StorageMemory) {
		store := memory.NewStore()
		if cfg.Psql.Seed {
			db.SeedMemory(store)
			logger.Info("demo data loaded into memory store")
		}
		return repositories{catalog: store, statuses: store, notifications: store}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return repositories{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return repositories{}, fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return repositories{}, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	return repositories{
		catalog:       postgres.NewCatalogRepository(pool),
		statuses:      postgres.NewSyncStatusRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
	}, nil
}

func newTransport(cfg config.Config, logger *slog.Logger) port.PartnerTransport {
	logger = logger.With(slog.String("component", "partner"))
	if strings.EqualFold(cfg.Sync.Transport, configs.TransportHTTP) {
		return partner.NewHTTPTransport(cfg.Partner, logger)
	}
	return partner.NewSimulatedTransport(cfg.Partner, logger)
}

// Close waits for pending webhook deliveries and releases connections.
func (a *App) Close() {
	if a.Gateway != nil {
		a.Gateway.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
