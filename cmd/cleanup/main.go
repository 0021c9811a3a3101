// Command cleanup deletes expired sessions and page views that fell out of
// the unique-visitor window. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/page"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/pageview"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/redis/rendercache"
	"github.com/heartmarshall/mydocs-backend/internal/app"
	"github.com/heartmarshall/mydocs-backend/internal/auth"
	"github.com/heartmarshall/mydocs-backend/internal/config"
	"github.com/heartmarshall/mydocs-backend/internal/service/analytics"
	authService "github.com/heartmarshall/mydocs-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pages := page.New(pool)
	projects := project.New(pool)

	authSvc := authService.NewService(logger, user.New(pool), session.New(pool), projects, pages,
		rendercache.Nop{}, auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL), cfg.Auth)
	analyticsSvc := analytics.NewService(logger, pages, projects, pageview.New(pool), postgres.NewTxManager(pool))

	sessions, err := authSvc.CleanupExpiredSessions(ctx)
	if err != nil {
		logger.Error("session cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	views, err := analyticsSvc.CleanupExpiredViews(ctx)
	if err != nil {
		logger.Error("page view cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int("sessions", sessions),
		slog.Int("page_views", views),
	)
}
