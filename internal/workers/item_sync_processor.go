// internal/workers/item_sync_processor.go
package workers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hibiken/asynq"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/internal/pkg/logger"
)

// ItemSyncProcessor publishes item catalog snapshots to the warehouse. The
// sync cursor lives in process memory only; a restart causes one full
// re-export, which the snapshot write absorbs.
type ItemSyncProcessor struct {
	service *services.ItemSyncService
	logger  *slog.Logger

	mu     sync.Mutex
	cursor domain.SyncCursor
}

// NewItemSyncProcessor creates a new item sync processor
func NewItemSyncProcessor(service *services.ItemSyncService, log *slog.Logger) *ItemSyncProcessor {
	return &ItemSyncProcessor{
		service: service,
		logger:  log.With(slog.String("processor", "item_sync")),
	}
}

// ProcessSync handles one scheduled item sync tick. The cursor only advances
// when the whole sync succeeds, so a failed tick is retried in full.
func (p *ItemSyncProcessor) ProcessSync(ctx context.Context, t *asynq.Task) error {
	ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())

	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := p.service.Sync(ctx, p.cursor)
	if err != nil {
		p.logger.ErrorContext(ctx, "item sync failed",
			slog.String("error", err.Error()))
		return err
	}

	p.cursor = next
	return nil
}
