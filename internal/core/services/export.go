// internal/core/services/export.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// OrderExportService hands newly opened ERP orders to the warehouse: it
// writes the outbound pick/purchase-order documents and marks each exported
// order released in the ERP.
type OrderExportService struct {
	erp    ports.ERPClient
	docs   ports.DocumentWriter
	logger *slog.Logger
}

// NewOrderExportService creates a new order export service
func NewOrderExportService(erp ports.ERPClient, docs ports.DocumentWriter, logger *slog.Logger) *OrderExportService {
	return &OrderExportService{
		erp:    erp,
		docs:   docs,
		logger: logger.With(slog.String("service", "order_export")),
	}
}

// Export writes outbound documents for all open delivery and transfer orders.
// The release update intentionally drops line data: only the status moves,
// the lines travel in the document.
func (s *OrderExportService) Export(ctx context.Context) (int, error) {
	exported := 0
	for _, kind := range []domain.OrderKind{domain.KindDelivery, domain.KindTransfer} {
		n, err := s.exportKind(ctx, kind)
		exported += n
		if err != nil {
			return exported, err
		}
	}
	return exported, nil
}

func (s *OrderExportService) exportKind(ctx context.Context, kind domain.OrderKind) (int, error) {
	orders, err := s.erp.FetchOpenOrders(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch open %s orders: %w", kind, err)
	}

	exported := 0
	for i := range orders {
		order := &orders[i]
		order.Kind = kind

		var werr error
		switch kind {
		case domain.KindDelivery:
			werr = s.docs.WritePickOrder(ctx, order)
		case domain.KindTransfer:
			werr = s.docs.WritePurchaseOrder(ctx, order)
		}
		if werr != nil {
			// Not released: the order stays open and is re-exported next tick.
			s.logger.ErrorContext(ctx, "failed to write outbound order document",
				slog.String("order_number", order.WMSNumber()),
				slog.String("error", werr.Error()))
			continue
		}

		if err := s.erp.PushStatusOnly(ctx, kind, order.Number, domain.StatusReleased); err != nil {
			s.logger.ErrorContext(ctx, "failed to mark exported order as released",
				slog.String("order_number", order.WMSNumber()),
				slog.String("error", err.Error()))
			continue
		}

		exported++
	}

	if exported > 0 {
		s.logger.InfoContext(ctx, "orders exported to warehouse",
			slog.String("kind", string(kind)),
			slog.Int("count", exported))
	}

	return exported, nil
}
