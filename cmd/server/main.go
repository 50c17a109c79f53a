package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/config"
	analyticsRepoPkg "github.com/oaksmart/pos-ledger/internal/analytics/repository"
	analyticsUCPkg "github.com/oaksmart/pos-ledger/internal/analytics/usecase"
	productRepoPkg "github.com/oaksmart/pos-ledger/internal/product/repository"
	productUCPkg "github.com/oaksmart/pos-ledger/internal/product/usecase"
	saleRepoPkg "github.com/oaksmart/pos-ledger/internal/sale/repository"
	saleUCPkg "github.com/oaksmart/pos-ledger/internal/sale/usecase"
	"github.com/oaksmart/pos-ledger/internal/server"
	"github.com/oaksmart/pos-ledger/internal/storage"
	syncClientPkg "github.com/oaksmart/pos-ledger/internal/syncer/client"
	syncdto "github.com/oaksmart/pos-ledger/internal/syncer/dto"
	syncRepoPkg "github.com/oaksmart/pos-ledger/internal/syncer/repository"
	syncUCPkg "github.com/oaksmart/pos-ledger/internal/syncer/usecase"
	userRepoPkg "github.com/oaksmart/pos-ledger/internal/user/repository"
	userUCPkg "github.com/oaksmart/pos-ledger/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// 3. Open the local ledger database
	db, err := storage.Open(&cfg.Sqlite)
	if err != nil {
		logger.Fatal("could not open ledger database", zap.Error(err))
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		logger.Fatal("could not migrate ledger schema", zap.Error(err))
	}
	logger.Info("ledger database ready", zap.String("path", cfg.Sqlite.Path))

	// 4. Local id generator, one node per terminal
	node, err := snowflake.NewNode(cfg.Sync.TerminalID)
	if err != nil {
		logger.Fatal("invalid terminal id", zap.Int64("terminal_id", cfg.Sync.TerminalID), zap.Error(err))
	}

	// 5. Repositories
	productRepo := productRepoPkg.NewSqliteRepository(db)
	saleRepo := saleRepoPkg.NewSqliteRepository(db)
	syncRepo := syncRepoPkg.NewSqliteRepository(db)
	analyticsRepo := analyticsRepoPkg.NewSqliteRepository(db)
	userRepo := userRepoPkg.NewSqliteRepository(db)

	// 6. UseCases
	syncClient := syncClientPkg.NewHTTPClient(cfg.Sync.Endpoint, cfg.Sync.Timeout)
	productUC := productUCPkg.NewProductUseCase(productRepo, logger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, node, logger)
	syncUC := syncUCPkg.NewSyncUseCase(syncRepo, syncClient, logger)
	analyticsUC := analyticsUCPkg.NewAnalyticsUseCase(analyticsRepo, productRepo, logger)
	userUC := userUCPkg.NewUserUseCase(userRepo, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := userUC.Bootstrap(ctx, cfg.Bootstrap.AdminPIN); err != nil {
		logger.Fatal("could not bootstrap default admin", zap.Error(err))
	}

	// 7. Background auto-sync
	var sched *cron.Cron
	if cfg.Sync.AutoEvery > 0 {
		sched = cron.New()
		_, err := sched.AddFunc("@every "+cfg.Sync.AutoEvery.String(), func() {
			result, err := syncUC.Sync(ctx)
			if err != nil {
				logger.Error("auto-sync storage failure", zap.Error(err))
				return
			}
			switch result.Status {
			case syncdto.StatusFailed:
				logger.Warn("auto-sync failed", zap.String("reason", result.Reason))
			case syncdto.StatusSucceeded:
				logger.Info("auto-sync succeeded",
					zap.Int("acked", result.Acked),
					zap.Int("updated_products", result.UpdatedProducts),
				)
			default:
				logger.Debug("auto-sync no-op", zap.String("status", string(result.Status)))
			}
		})
		if err != nil {
			logger.Fatal("could not schedule auto-sync", zap.Error(err))
		}
		sched.Start()
		logger.Info("auto-sync enabled", zap.Duration("every", cfg.Sync.AutoEvery))
	}

	// 8. HTTP server
	srv := server.NewServer(saleUC, syncUC, analyticsUC, productUC, userUC, logger)
	go func() {
		if err := srv.Start(cfg.Server.HTTPAddr); err != nil {
			logger.Info("http server stopped", zap.Error(err))
		}
	}()
	logger.Info("pos-ledger listening", zap.String("addr", cfg.Server.HTTPAddr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	if sched != nil {
		sched.Stop()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Server.AppEnv == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.Logger.Level); err == nil {
		zapCfg.Level = level
	}
	zapCfg.Encoding = cfg.Logger.Encoding
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace
	return zapCfg.Build()
}
