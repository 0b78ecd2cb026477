// internal/core/ports/wms.go
package ports

import (
	"context"

	"github.com/nordhus/wms-sync/internal/core/domain"
)

// ReturnStore lists and consumes pending WMS return files. Deletion is the
// sole durability signal: a file stays pending until explicitly deleted.
type ReturnStore interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) (*domain.ReturnDocument, error)
	Delete(ctx context.Context, name string) error
}

// DocumentWriter builds outbound WMS documents from ERP records.
type DocumentWriter interface {
	WritePickOrder(ctx context.Context, order *domain.Order) error
	WritePurchaseOrder(ctx context.Context, order *domain.Order) error
	WritePickConfirmation(ctx context.Context, order *domain.Order) error
	WriteReceiptConfirmation(ctx context.Context, order *domain.Order) error
	WriteItemCatalog(ctx context.Context, items []domain.Item) error
}
