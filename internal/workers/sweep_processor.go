// internal/workers/sweep_processor.go
package workers

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/nordhus/wms-sync/internal/adapters/wms"
	"github.com/nordhus/wms-sync/internal/pkg/logger"
)

// SweepProcessor removes aged outbound documents the warehouse has already
// consumed
type SweepProcessor struct {
	store  *wms.FileStore
	logger *slog.Logger
}

// NewSweepProcessor creates a new sweep processor
func NewSweepProcessor(store *wms.FileStore, log *slog.Logger) *SweepProcessor {
	return &SweepProcessor{
		store:  store,
		logger: log.With(slog.String("processor", "sweep")),
	}
}

// ProcessSweep handles one scheduled outbound sweep tick
func (p *SweepProcessor) ProcessSweep(ctx context.Context, t *asynq.Task) error {
	ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())

	deleted, err := p.store.SweepOutbound(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "outbound sweep failed",
			slog.String("error", err.Error()))
		return err
	}

	p.logger.InfoContext(ctx, "outbound sweep completed",
		slog.Int("files_deleted", deleted))
	return nil
}
