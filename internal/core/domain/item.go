// internal/core/domain/item.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Item is one catalog entry fetched from the ERP
type Item struct {
	Code        string          `json:"code"`
	Description string          `json:"description,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Price       decimal.Decimal `json:"price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the item
func (i *Item) Validate() error {
	if i.Code == "" {
		return fmt.Errorf("item code is required")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("item price cannot be negative")
	}
	return nil
}

// SyncCursor bounds the next incremental item fetch window. It is an explicit
// value handed into and returned from the sync operation; the caller advances
// it only after a confirmed success. An empty cursor forces a full fetch.
type SyncCursor struct {
	LastSync time.Time
}

// Empty reports whether no successful sync has happened yet this process run.
func (c SyncCursor) Empty() bool {
	return c.LastSync.IsZero()
}

// Advance returns a cursor moved forward to t.
func (c SyncCursor) Advance(t time.Time) SyncCursor {
	return SyncCursor{LastSync: t}
}
