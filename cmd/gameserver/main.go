// Package main provides the game server binary: it loads the content
// catalog, connects to PostgreSQL, and serves the browser client over
// HTTP and websocket.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/config"
	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/progress"
	"github.com/manus-games/shadowcity/internal/game/rng"
	"github.com/manus-games/shadowcity/internal/game/session"
	"github.com/manus-games/shadowcity/internal/httpapi"
	"github.com/manus-games/shadowcity/internal/observability"
	"github.com/manus-games/shadowcity/internal/server"
	"github.com/manus-games/shadowcity/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "path to catalog content directory (overrides config)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting game server",
		zap.String("http_addr", cfg.HTTP.Addr()),
	)

	// Load the content catalog.
	catalogStart := time.Now()
	contentRoot := cfg.Game.ContentDir
	if *contentDir != "" {
		contentRoot = *contentDir
	}
	reg, err := catalog.Load(contentRoot)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("dir", contentRoot),
		zap.Int("locations", len(reg.Locations())),
		zap.Int("skills", len(reg.Skills())),
		zap.Duration("elapsed", time.Since(catalogStart)),
	)

	// Connect to PostgreSQL for account and save-game persistence.
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)
	accountRepo := postgres.NewAccountRepository(pool.DB())
	saveRepo := postgres.NewSaveGameRepository(pool.DB())

	// Wire the game engine.
	sessions := session.NewManager()
	ctrl := progress.NewController(reg, rng.NewCryptoSource(), logger)
	api := httpapi.NewAPI(logger, reg, ctrl, sessions, accountRepo, saveRepo, cfg.Game)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: api.Handler(),
	}

	// Wire lifecycle.
	lifecycle := server.NewLifecycle(logger)

	regenCtx, regenCancel := context.WithCancel(ctx)
	lifecycle.Add("energy-regen", &server.FuncService{
		StartFn: func() error {
			sessions.RunEnergyRegen(regenCtx, cfg.Game.EnergyRegenInterval, logger)
			return nil
		},
		StopFn: regenCancel,
	})

	lifecycle.Add("http", &server.FuncService{
		StartFn: func() error {
			logger.Info("http server listening", zap.String("addr", httpServer.Addr))
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
		StopFn: func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		},
	})

	healthCtx, healthCancel := context.WithCancel(ctx)
	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func() error {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-healthCtx.Done():
					return nil
				case <-ticker.C:
					if err := pool.Health(healthCtx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			}
		},
		StopFn: func() {
			healthCancel()
			pool.Close()
		},
	})

	logger.Info("game server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("http_addr", cfg.HTTP.Addr()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
