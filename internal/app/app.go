package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	pageRepo "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/page"
	pageViewRepo "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/pageview"
	projectRepo "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/project"
	sessionRepo "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/session"
	userRepo "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/redis/rendercache"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"github.com/heartmarshall/mydocs-backend/internal/auth"
	"github.com/heartmarshall/mydocs-backend/internal/config"
	"github.com/heartmarshall/mydocs-backend/internal/service/analytics"
	authService "github.com/heartmarshall/mydocs-backend/internal/service/auth"
	"github.com/heartmarshall/mydocs-backend/internal/service/page"
	"github.com/heartmarshall/mydocs-backend/internal/service/project"
	"github.com/heartmarshall/mydocs-backend/internal/service/reader"
	"github.com/heartmarshall/mydocs-backend/internal/service/rewrite"
	"github.com/heartmarshall/mydocs-backend/internal/service/user"
	"github.com/heartmarshall/mydocs-backend/internal/transport/dataloader"
	"github.com/heartmarshall/mydocs-backend/internal/transport/middleware"
	"github.com/heartmarshall/mydocs-backend/internal/transport/rest"
)

// renderCache is the reader cache, which also serves as the revalidator
// of every mutating service.
type renderCache interface {
	Get(ctx context.Context, projectSlug, key string) ([]byte, bool, error)
	Set(ctx context.Context, projectSlug, key string, value []byte) error
	RevalidateProject(ctx context.Context, projectSlug string) error
}

// Run is the application entry point. It loads configuration, connects to
// the database and optional backends, wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	in, err := openInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer in.close(logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := buildHandler(cfg, in, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// buildHandler wires repositories, services and handlers into the
// middleware chain.
func buildHandler(cfg *config.Config, in *infra, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(in.pool)

	users := userRepo.New(in.pool)
	sessions := sessionRepo.New(in.pool)
	projects := projectRepo.New(in.pool)
	pages := pageRepo.New(in.pool)
	views := pageViewRepo.New(in.pool)

	var cache renderCache = rendercache.Nop{}
	if in.cache != nil {
		cache = in.cache
	}

	searchSvc := search.NewService(in.meili, pages, logger)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authService.NewService(logger, users, sessions, projects, pages, cache, jwtManager, cfg.Auth)
	projectSvc := project.NewService(logger, projects, pages, users, cache, searchSvc, txm)
	pageSvc := page.NewService(logger, pages, projects, cache, searchSvc, txm)
	analyticsSvc := analytics.NewService(logger, pages, projects, views, txm)
	readerSvc := reader.NewService(logger, projects, pages, cache, searchSvc)

	// Optional backends are passed as untyped nil when absent so the
	// services see a nil interface.
	var userSvc *user.Service
	if in.avatars != nil {
		userSvc = user.NewService(logger, users, in.avatars, txm, cfg.Storage.MaxAvatarBytes)
	} else {
		userSvc = user.NewService(logger, users, nil, txm, cfg.Storage.MaxAvatarBytes)
	}

	var reimagine *rest.ReimagineHandler
	if in.llm != nil {
		reimagine = rest.NewReimagineHandler(rewrite.NewService(logger, in.llm, users), logger)
	} else {
		reimagine = rest.NewReimagineHandler(nil, logger)
	}

	health := rest.NewHealthHandler(in.pool, Version)
	if in.cache != nil {
		health.AddComponent("redis", in.cache)
	}

	var static http.Handler
	if cfg.Server.StaticDir != "" {
		static = http.FileServer(http.Dir(cfg.Server.StaticDir))
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:    health,
		Auth:      rest.NewAuthHandler(authSvc, rest.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}, logger),
		User:      rest.NewUserHandler(userSvc, cfg.Storage.MaxAvatarBytes, logger),
		Project:   rest.NewProjectHandler(projectSvc, logger),
		Page:      rest.NewPageHandler(pageSvc, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsSvc, logger),
		Reader:    rest.NewReaderHandler(readerSvc, logger),
		Reimagine: reimagine,
	}, rest.Limits{
		Auth:      limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		Reimagine: limiter.Limit("reimagine", cfg.RateLimit.ReimaginePerMinute),
	}, static)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.ClientInfo(cfg.Server.TrustProxy),
		middleware.Auth(authSvc, cfg.Auth.CookieName),
		middleware.Guard(),
		dataloader.Middleware(&dataloader.Repos{ProjectStats: projects}),
	)

	return chain(mux)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within the shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
