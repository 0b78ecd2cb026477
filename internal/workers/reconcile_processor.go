// internal/workers/reconcile_processor.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/nordhus/wms-sync/internal/adapters/redislock"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/internal/pkg/logger"
)

// Task type names
const (
	TypeReconcileReturns = "reconcile:returns"
	TypeSyncItems        = "sync:items"
	TypeExportOrders     = "export:orders"
	TypeSweepOutbound    = "sweep:outbound"
)

const reconcileLock = "reconcile"

// ReconcileProcessor runs reconciliation passes over the return directory
type ReconcileProcessor struct {
	service *services.ReconcilerService
	lock    *redislock.PassLock
	logger  *slog.Logger
}

// NewReconcileProcessor creates a new reconcile processor
func NewReconcileProcessor(service *services.ReconcilerService, lock *redislock.PassLock, log *slog.Logger) *ReconcileProcessor {
	return &ReconcileProcessor{
		service: service,
		lock:    lock,
		logger:  log.With(slog.String("processor", "reconcile")),
	}
}

// ProcessReturns handles one scheduled reconciliation tick. Overlapping ticks
// are skipped rather than queued: the next tick picks up whatever is left.
func (p *ReconcileProcessor) ProcessReturns(ctx context.Context, t *asynq.Task) error {
	passID := uuid.New()
	ctx = context.WithValue(ctx, logger.ContextKeyPassID, passID)
	ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())

	acquired, err := p.lock.Acquire(ctx, reconcileLock)
	if err != nil {
		return err
	}
	if !acquired {
		p.logger.WarnContext(ctx, "previous reconciliation pass still running, skipping tick")
		return nil
	}
	defer func() {
		releaseCtx := context.WithoutCancel(ctx)
		if err := p.lock.Release(releaseCtx, reconcileLock); err != nil {
			p.logger.ErrorContext(releaseCtx, "failed to release pass lock",
				slog.String("error", err.Error()))
		}
	}()

	started := time.Now()
	p.logger.InfoContext(ctx, "reconciliation pass started",
		slog.String("pass_id", passID.String()))

	result, err := p.service.Run(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "reconciliation pass aborted",
			slog.String("error", err.Error()))
		return err
	}

	p.logger.InfoContext(ctx, "reconciliation pass completed",
		slog.String("pass_id", passID.String()),
		slog.Int("files", result.Files),
		slog.Int("consumed", result.Consumed),
		slog.Int("retained", result.Retained),
		slog.Int("orders_updated", result.OrdersUpdated),
		slog.Int("orders_skipped", result.OrdersSkipped),
		slog.Int("orders_failed", result.OrdersFailed),
		slog.Duration("duration_ms", time.Since(started)))

	return nil
}
