// internal/core/ports/erp.go
package ports

import (
	"context"
	"time"

	"github.com/nordhus/wms-sync/internal/core/domain"
)

// ERPClient is the transport port to the ERP system of record.
// This interface is implemented by the HTTP adapter.
//
// Implementations classify failures onto the domain error taxonomy:
// domain.ErrUnknownOrder for missing documents, *domain.CommitError for
// finalized documents rejecting changes, *domain.TransportError for
// connectivity-level failures.
type ERPClient interface {
	FetchOrder(ctx context.Context, kind domain.OrderKind, number string) (*domain.Order, error)
	FetchOpenOrders(ctx context.Context, kind domain.OrderKind) ([]domain.Order, error)
	PushOrderUpdate(ctx context.Context, order *domain.Order) error
	PushStatusOnly(ctx context.Context, kind domain.OrderKind, number string, status domain.OrderStatus) error
	FetchItemsSince(ctx context.Context, since time.Time) ([]domain.Item, error)
}
