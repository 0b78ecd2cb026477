// internal/workers/export_processor.go
package workers

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/nordhus/wms-sync/internal/adapters/redislock"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/internal/pkg/logger"
)

const exportLock = "export"

// ExportProcessor hands open ERP orders to the warehouse
type ExportProcessor struct {
	service *services.OrderExportService
	lock    *redislock.PassLock
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(service *services.OrderExportService, lock *redislock.PassLock, log *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		service: service,
		lock:    lock,
		logger:  log.With(slog.String("processor", "export")),
	}
}

// ProcessExport handles one scheduled order export tick
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())

	acquired, err := p.lock.Acquire(ctx, exportLock)
	if err != nil {
		return err
	}
	if !acquired {
		p.logger.WarnContext(ctx, "previous export pass still running, skipping tick")
		return nil
	}
	defer func() {
		releaseCtx := context.WithoutCancel(ctx)
		if err := p.lock.Release(releaseCtx, exportLock); err != nil {
			p.logger.ErrorContext(releaseCtx, "failed to release pass lock",
				slog.String("error", err.Error()))
		}
	}()

	exported, err := p.service.Export(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "order export failed",
			slog.String("error", err.Error()))
		return err
	}

	if exported > 0 {
		p.logger.InfoContext(ctx, "order export completed",
			slog.Int("exported", exported))
	}
	return nil
}
