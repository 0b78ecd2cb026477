// internal/core/domain/returns.go
package domain

// DocumentType tags the kind of WMS return file
type DocumentType string

// Document type constants
const (
	DocInventoryReturn DocumentType = "inventory_return"
	DocPurchaseReturn  DocumentType = "purchase_return"
	DocPickReturn      DocumentType = "pick_return"
	DocUnknown         DocumentType = "unknown"
)

// ReturnRecord is one fulfillment event reported by the warehouse: a single
// scan or putaway against one order line.
type ReturnRecord struct {
	OrderNumber  string
	LineNumber   int
	Delivered    int
	LocationInfo string
}

// ReturnDocument is one WMS return file read from the pending directory.
type ReturnDocument struct {
	FileName string
	Type     DocumentType
	Records  []ReturnRecord
}

// Reconcilable reports whether the document type is routed through return
// reconciliation. Inventory returns and unknown types are not.
func (d *ReturnDocument) Reconcilable() bool {
	return d.Type == DocPurchaseReturn || d.Type == DocPickReturn
}
