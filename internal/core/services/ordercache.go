// internal/core/services/ordercache.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// OrderCache is the working set of ERP orders for one reconciliation pass.
// Each referenced order is fetched at most once per pass, keyed by its parsed
// reference; later lookups return the cached, possibly already mutated
// instance. The cache is pass-scoped and discarded when the pass ends.
type OrderCache struct {
	erp    ports.ERPClient
	logger *slog.Logger
	orders map[string]*domain.Order
}

// NewOrderCache creates an empty working set backed by the ERP client.
func NewOrderCache(erp ports.ERPClient, logger *slog.Logger) *OrderCache {
	return &OrderCache{
		erp:    erp,
		logger: logger.With(slog.String("service", "order_cache")),
		orders: make(map[string]*domain.Order),
	}
}

// Get returns the working-set order for ref, fetching it from the ERP on the
// first reference within the pass. Moved quantities are reset to zero on that
// initial load so accumulation always starts from the live ERP state, even
// when the same order shows up in several files of one pass.
func (c *OrderCache) Get(ctx context.Context, ref domain.OrderRef) (*domain.Order, error) {
	if order, ok := c.orders[ref.Key()]; ok {
		return order, nil
	}

	kind, ok := ref.Kind()
	if !ok {
		return nil, &domain.MalformedOrderNumberError{Raw: ref.String()}
	}

	order, err := c.erp.FetchOrder(ctx, kind, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", ref, err)
	}

	order.Kind = kind
	order.ResetMovedQuantities()
	c.orders[ref.Key()] = order

	c.logger.DebugContext(ctx, "order loaded into working set",
		slog.String("order_number", ref.String()),
		slog.Int("lines", len(order.Lines)))

	return order, nil
}

// Size returns the number of distinct orders fetched so far in this pass.
func (c *OrderCache) Size() int {
	return len(c.orders)
}
