// cmd/reconciler/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/nordhus/wms-sync/internal/adapters/erp"
	"github.com/nordhus/wms-sync/internal/adapters/redislock"
	"github.com/nordhus/wms-sync/internal/adapters/wms"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/internal/pkg/config"
	"github.com/nordhus/wms-sync/internal/pkg/logger"
	"github.com/nordhus/wms-sync/internal/workers"
)

func main() {
	// Setup logger
	slogger := logger.SetupLogger("info", "json")

	// Load configuration
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting reconciler",
		slog.String("environment", cfg.App.Environment),
		slog.String("erp_base_url", cfg.ERP.BaseURL),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	// Verify redis is reachable before registering anything
	ctx := context.Background()
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slogger.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize adapters
	erpClient := erp.NewClient(erp.Config{
		BaseURL:           cfg.ERP.BaseURL,
		APIToken:          cfg.ERP.APIToken,
		Timeout:           cfg.ERP.Timeout,
		RequestsPerSecond: cfg.ERP.RequestsPerSecond,
		Burst:             cfg.ERP.RateBurst,
	}, slogger.Logger)

	fileStore := wms.NewFileStore(wms.Config{
		ReturnsDir:        cfg.WMS.ReturnsDir,
		OrdersDir:         cfg.WMS.OrdersDir,
		PurchaseOrdersDir: cfg.WMS.PurchaseOrdersDir,
		ItemsDir:          cfg.WMS.ItemsDir,
		OutboundRetention: cfg.WMS.OutboundRetention,
	}, slogger.Logger)

	passLock := redislock.NewPassLock(redisClient, cfg.Sync.PassLockTTL, slogger.Logger)

	// Initialize services
	reconcilerService := services.NewReconcilerService(erpClient, fileStore, fileStore, slogger.Logger)
	itemSyncService := services.NewItemSyncService(erpClient, fileStore, slogger.Logger)
	exportService := services.NewOrderExportService(erpClient, fileStore, slogger.Logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	// Create Asynq server
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			Logger:          newAsynqLogger(slogger.Logger),
		},
	)

	// Create task handlers
	mux := asynq.NewServeMux()

	// Register reconciliation handler
	reconcileProcessor := workers.NewReconcileProcessor(reconcilerService, passLock, slogger.Logger)
	mux.HandleFunc(workers.TypeReconcileReturns, reconcileProcessor.ProcessReturns)

	// Register item sync handler
	itemSyncProcessor := workers.NewItemSyncProcessor(itemSyncService, slogger.Logger)
	mux.HandleFunc(workers.TypeSyncItems, itemSyncProcessor.ProcessSync)

	// Register order export handler
	exportProcessor := workers.NewExportProcessor(exportService, passLock, slogger.Logger)
	mux.HandleFunc(workers.TypeExportOrders, exportProcessor.ProcessExport)

	// Register outbound sweep handler
	sweepProcessor := workers.NewSweepProcessor(fileStore, slogger.Logger)
	mux.HandleFunc(workers.TypeSweepOutbound, sweepProcessor.ProcessSweep)

	// Schedule the periodic ticks
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger: newAsynqLogger(slogger.Logger),
		},
	)

	entries := []struct {
		spec string
		task *asynq.Task
	}{
		{fmt.Sprintf("@every %s", cfg.Sync.ReconcileInterval), asynq.NewTask(workers.TypeReconcileReturns, nil, asynq.MaxRetry(cfg.Asynq.RetryMax))},
		{fmt.Sprintf("@every %s", cfg.Sync.ItemSyncInterval), asynq.NewTask(workers.TypeSyncItems, nil, asynq.MaxRetry(cfg.Asynq.RetryMax))},
		{fmt.Sprintf("@every %s", cfg.Sync.OrderExportInterval), asynq.NewTask(workers.TypeExportOrders, nil, asynq.MaxRetry(cfg.Asynq.RetryMax))},
		{fmt.Sprintf("@every %s", cfg.Sync.SweepInterval), asynq.NewTask(workers.TypeSweepOutbound, nil, asynq.MaxRetry(cfg.Asynq.RetryMax))},
	}
	for _, e := range entries {
		if _, err := scheduler.Register(e.spec, e.task); err != nil {
			slogger.Error("failed to register scheduled task",
				slog.String("type", e.task.Type()),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Handle shutdown gracefully
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run task server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("reconciler started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Duration("reconcile_interval", cfg.Sync.ReconcileInterval),
		slog.Duration("item_sync_interval", cfg.Sync.ItemSyncInterval),
		slog.Duration("export_interval", cfg.Sync.OrderExportInterval))

	// Wait for shutdown signal
	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Gracefully shutdown
	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("reconciler shutdown complete")
}

// handleError picks up the pass and task attributes from the failed task's
// context so the error lands next to the pass's own log lines.
func handleError(ctx context.Context, task *asynq.Task, err error) {
	logger.FromContext(ctx).ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
