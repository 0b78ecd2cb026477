// internal/core/services/items.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// ItemSyncService keeps the WMS item catalog snapshot in step with the ERP.
type ItemSyncService struct {
	erp    ports.ERPClient
	docs   ports.DocumentWriter
	logger *slog.Logger
}

// NewItemSyncService creates a new item sync service
func NewItemSyncService(erp ports.ERPClient, docs ports.DocumentWriter, logger *slog.Logger) *ItemSyncService {
	return &ItemSyncService{
		erp:    erp,
		docs:   docs,
		logger: logger.With(slog.String("service", "item_sync")),
	}
}

// Sync fetches items changed since the cursor and writes a fresh catalog
// snapshot into the items directory. The returned cursor is advanced only
// when both the fetch and the snapshot write succeeded; on any failure the
// input cursor comes back unchanged so the window is retried next tick.
func (s *ItemSyncService) Sync(ctx context.Context, cursor domain.SyncCursor) (domain.SyncCursor, error) {
	// Stamped before the fetch so changes racing the sync fall into the
	// next window instead of being lost.
	started := time.Now()

	since := time.Time{}
	if !cursor.Empty() {
		since = cursor.LastSync
	}

	items, err := s.erp.FetchItemsSince(ctx, since)
	if err != nil {
		return cursor, fmt.Errorf("failed to fetch changed items: %w", err)
	}

	if len(items) == 0 {
		s.logger.InfoContext(ctx, "no item changes since last sync",
			slog.Time("since", since))
		return cursor.Advance(started), nil
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			return cursor, fmt.Errorf("ERP returned invalid item %q: %w", items[i].Code, err)
		}
	}

	if err := s.docs.WriteItemCatalog(ctx, items); err != nil {
		return cursor, fmt.Errorf("failed to write item catalog snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "item catalog synchronized",
		slog.Int("items", len(items)),
		slog.Bool("full_sync", cursor.Empty()))

	return cursor.Advance(started), nil
}
