// internal/core/domain/order.go
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind distinguishes outbound picks from inbound warehouse movements
type OrderKind string

// Order kind constants
const (
	KindDelivery OrderKind = "delivery"
	KindTransfer OrderKind = "transfer"
)

// OrderStatus represents the ERP-side lifecycle status of an order
type OrderStatus string

// Status constants
const (
	StatusOpen         OrderStatus = "open"
	StatusReleased     OrderStatus = "released"
	StatusAcknowledged OrderStatus = "acknowledged"
	StatusCompleted    OrderStatus = "completed"
)

// Type code prefixes carried on order numbers in WMS documents
const (
	TypeCodeDelivery     = "D"
	TypeCodeTransfer     = "T"
	TypeCodeManualPick   = "MP"
	TypeCodeManualSupply = "MS"
)

var orderNumberPattern = regexp.MustCompile(`^([A-Z]*)([0-9]+)$`)

// OrderRef is a parsed WMS order identifier: a leading alphabetic type code
// and the bare ERP order number.
type OrderRef struct {
	TypeCode string
	Number   string
}

// ParseOrderRef splits a raw order number into its type code and bare number.
// An empty type code is valid and means the kind is unknown to this system.
func ParseOrderRef(raw string) (OrderRef, error) {
	m := orderNumberPattern.FindStringSubmatch(raw)
	if m == nil {
		return OrderRef{}, &MalformedOrderNumberError{Raw: raw}
	}
	return OrderRef{TypeCode: m[1], Number: m[2]}, nil
}

// Kind maps the type code onto an order kind. The second return value is
// false for manual pick/supply codes and anything unrecognized.
func (r OrderRef) Kind() (OrderKind, bool) {
	switch r.TypeCode {
	case TypeCodeDelivery:
		return KindDelivery, true
	case TypeCodeTransfer:
		return KindTransfer, true
	}
	return "", false
}

// Manual reports whether the reference names a manual pick or manual supply,
// which the reconciler skips.
func (r OrderRef) Manual() bool {
	return r.TypeCode == TypeCodeManualPick || r.TypeCode == TypeCodeManualSupply
}

// Key returns the working-set cache key for the reference.
func (r OrderRef) Key() string {
	return r.TypeCode + ":" + r.Number
}

func (r OrderRef) String() string {
	return r.TypeCode + r.Number
}

// TypeCodeFor returns the WMS number prefix for an order kind.
func TypeCodeFor(kind OrderKind) string {
	if kind == KindTransfer {
		return TypeCodeTransfer
	}
	return TypeCodeDelivery
}

// OrderLine is a single line within a fetched ERP order. MovedQty is the
// per-pass accumulator for confirmed fulfillment quantities.
type OrderLine struct {
	LineNumber    int             `json:"line_number"`
	ItemCode      string          `json:"item_code"`
	Description   string          `json:"description,omitempty"`
	OrderedQty    int             `json:"ordered_qty"`
	MovedQty      int             `json:"moved_qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SerialOrBatch string          `json:"serial_or_batch,omitempty"`
}

// Order represents one ERP delivery or transfer document
type Order struct {
	Number       string      `json:"number"`
	Kind         OrderKind   `json:"kind"`
	Status       OrderStatus `json:"status"`
	CustomerCode string      `json:"customer_code,omitempty"`
	OrderDate    time.Time   `json:"order_date"`
	Lines        []OrderLine `json:"lines"`
}

// Validate performs domain validation on the order
func (o *Order) Validate() error {
	if o.Number == "" {
		return fmt.Errorf("order number is required")
	}
	if o.Kind != KindDelivery && o.Kind != KindTransfer {
		return fmt.Errorf("unrecognized order kind: %q", o.Kind)
	}
	seen := make(map[int]bool, len(o.Lines))
	for _, line := range o.Lines {
		if seen[line.LineNumber] {
			return fmt.Errorf("duplicate line number %d in order %s", line.LineNumber, o.Number)
		}
		seen[line.LineNumber] = true
	}
	return nil
}

// WMSNumber returns the order number as the warehouse sees it, with the
// kind-specific type prefix attached.
func (o *Order) WMSNumber() string {
	return TypeCodeFor(o.Kind) + o.Number
}

// ResetMovedQuantities zeroes every line accumulator. Called once when an
// order enters the working set so accumulation always starts from the live
// ERP state.
func (o *Order) ResetMovedQuantities() {
	for i := range o.Lines {
		o.Lines[i].MovedQty = 0
	}
}

// LineByNumber finds the unique line with the given line number.
func (o *Order) LineByNumber(lineNumber int) (*OrderLine, error) {
	for i := range o.Lines {
		if o.Lines[i].LineNumber == lineNumber {
			return &o.Lines[i], nil
		}
	}
	return nil, &OrderLineNotFoundError{OrderNumber: o.Number, LineNumber: lineNumber}
}

// MovedLineCount counts lines with a confirmed moved quantity.
func (o *Order) MovedLineCount() int {
	count := 0
	for i := range o.Lines {
		if o.Lines[i].MovedQty > 0 {
			count++
		}
	}
	return count
}

// HasMovedLines reports whether anything was actually picked or received.
func (o *Order) HasMovedLines() bool {
	return o.MovedLineCount() > 0
}
