// internal/adapters/wms/documents.go
package wms

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordhus/wms-sync/internal/core/domain"
)

// Outbound document wire formats. Every document carries the order header
// (WMS-prefixed number, date, customer) and one Line element per order line.

type outboundDocument struct {
	XMLName xml.Name
	Header  outboundHeader `xml:"Header"`
	Lines   []outboundLine `xml:"Line"`
}

type outboundHeader struct {
	OrderNumber string `xml:"OrderNumber"`
	OrderDate   string `xml:"OrderDate"`
	Customer    string `xml:"Customer,omitempty"`
}

type outboundLine struct {
	LineNumber   int    `xml:"LineNumber"`
	Article      string `xml:"Article"`
	Description  string `xml:"Description,omitempty"`
	OrderedQty   int    `xml:"OrderedQty"`
	DeliveredQty int    `xml:"DeliveredQty"`
	UnitPrice    string `xml:"UnitPrice"`
	Batch        string `xml:"Batch,omitempty"`
}

type itemCatalog struct {
	XMLName xml.Name      `xml:"ItemCatalog"`
	Created string        `xml:"Created,attr"`
	Items   []catalogItem `xml:"Item"`
}

type catalogItem struct {
	Code        string `xml:"Code"`
	Description string `xml:"Description,omitempty"`
	Barcode     string `xml:"Barcode,omitempty"`
	Unit        string `xml:"Unit,omitempty"`
	Price       string `xml:"Price"`
}

func buildOutbound(element string, order *domain.Order) outboundDocument {
	doc := outboundDocument{
		XMLName: xml.Name{Local: element},
		Header: outboundHeader{
			OrderNumber: order.WMSNumber(),
			OrderDate:   order.OrderDate.Format("2006-01-02"),
			Customer:    order.CustomerCode,
		},
		Lines: make([]outboundLine, 0, len(order.Lines)),
	}
	for _, l := range order.Lines {
		doc.Lines = append(doc.Lines, outboundLine{
			LineNumber:   l.LineNumber,
			Article:      l.ItemCode,
			Description:  l.Description,
			OrderedQty:   l.OrderedQty,
			DeliveredQty: l.MovedQty,
			UnitPrice:    l.UnitPrice.String(),
			Batch:        l.SerialOrBatch,
		})
	}
	return doc
}

func (f *FileStore) writeOrderDocument(ctx context.Context, dir, element, prefix string, order *domain.Order) error {
	data, err := xml.MarshalIndent(buildOutbound(element, order), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s for order %s: %w", element, order.WMSNumber(), err)
	}

	name := fmt.Sprintf("%s_%s.xml", prefix, order.WMSNumber())
	if err := f.writeAtomic(dir, name, data); err != nil {
		return err
	}

	f.logger.InfoContext(ctx, "outbound document written",
		slog.String("document", element),
		slog.String("file", name),
		slog.String("order_number", order.WMSNumber()))
	return nil
}

// WritePickOrder hands an open delivery to the warehouse for picking.
func (f *FileStore) WritePickOrder(ctx context.Context, order *domain.Order) error {
	return f.writeOrderDocument(ctx, f.cfg.OrdersDir, "PickList", "pick", order)
}

// WritePurchaseOrder hands an expected inbound movement to the warehouse.
func (f *FileStore) WritePurchaseOrder(ctx context.Context, order *domain.Order) error {
	return f.writeOrderDocument(ctx, f.cfg.PurchaseOrdersDir, "PurchaseOrder", "po", order)
}

// WritePickConfirmation reports the picked quantities of a completed delivery.
func (f *FileStore) WritePickConfirmation(ctx context.Context, order *domain.Order) error {
	return f.writeOrderDocument(ctx, f.cfg.OrdersDir, "PickConfirmation", "pickconf", order)
}

// WriteReceiptConfirmation reports the received quantities of an inbound
// transfer, partial quantities included.
func (f *FileStore) WriteReceiptConfirmation(ctx context.Context, order *domain.Order) error {
	return f.writeOrderDocument(ctx, f.cfg.PurchaseOrdersDir, "ReceiptConfirmation", "receipt", order)
}

// WriteItemCatalog replaces the item catalog snapshot in the items directory.
// The warehouse always reads the latest snapshot, so the file name is fixed.
func (f *FileStore) WriteItemCatalog(ctx context.Context, items []domain.Item) error {
	catalog := itemCatalog{
		Created: time.Now().UTC().Format(time.RFC3339),
		Items:   make([]catalogItem, 0, len(items)),
	}
	for _, item := range items {
		catalog.Items = append(catalog.Items, catalogItem{
			Code:        item.Code,
			Description: item.Description,
			Barcode:     item.Barcode,
			Unit:        item.Unit,
			Price:       item.Price.String(),
		})
	}

	data, err := xml.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal item catalog: %w", err)
	}

	if err := f.writeAtomic(f.cfg.ItemsDir, "items.xml", data); err != nil {
		return err
	}

	f.logger.InfoContext(ctx, "item catalog snapshot written",
		slog.Int("items", len(items)))
	return nil
}
