package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/redis/rendercache"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/storage"
	"github.com/heartmarshall/mydocs-backend/internal/config"
)

// infra holds connections to external systems. Optional systems are nil
// when they are not configured.
type infra struct {
	pool    *pgxpool.Pool
	cache   *rendercache.Cache
	meili   *search.Meili
	avatars *storage.Avatars
	llm     *llm.Provider
}

// openInfra connects to PostgreSQL and every configured optional system.
// Only the database is required; an unreachable Redis or object store is
// logged and the feature it backs is disabled.
func openInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	in := &infra{pool: pool}

	if cfg.Redis.URL != "" {
		cache, err := rendercache.Connect(ctx, cfg.Redis.URL, cfg.Reader.CacheTTL)
		if err != nil {
			logger.Warn("render cache disabled", slog.String("error", err.Error()))
		} else {
			in.cache = cache
		}
	}

	if cfg.Search.MeiliURL != "" {
		in.meili = search.NewMeili(cfg.Search.MeiliURL, cfg.Search.MeiliAPIKey, cfg.Search.IndexName, logger)
	}

	if cfg.Storage.Endpoint != "" {
		avatars, err := storage.New(cfg.Storage, logger)
		if err == nil {
			err = avatars.EnsureBucket(ctx)
		}
		if err != nil {
			logger.Warn("avatar uploads disabled", slog.String("error", err.Error()))
		} else {
			in.avatars = avatars
		}
	}

	if cfg.AI.APIKey != "" {
		in.llm = llm.NewProvider(cfg.AI, logger)
	}

	logger.Info("infrastructure ready",
		slog.Bool("render_cache", in.cache != nil),
		slog.Bool("meilisearch", in.meili != nil),
		slog.Bool("avatars", in.avatars != nil),
		slog.Bool("ai", in.llm != nil),
	)

	return in, nil
}

func (in *infra) close(logger *slog.Logger) {
	if in.meili != nil {
		in.meili.Close()
	}
	if in.cache != nil {
		if err := in.cache.Close(); err != nil {
			logger.Warn("close render cache", slog.String("error", err.Error()))
		}
	}
	in.pool.Close()
}
