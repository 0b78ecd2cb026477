// internal/core/services/reconciler.go
package services

import (
	"context"
	"log/slog"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// ReconcilerService drives pending WMS return files through line matching,
// quantity accumulation and the ERP status transition, and decides per-file
// disposition from the resulting error class: delete on success and on
// permanent failure, retain on transient failure.
type ReconcilerService struct {
	erp     ports.ERPClient
	returns ports.ReturnStore
	docs    ports.DocumentWriter
	logger  *slog.Logger
}

// NewReconcilerService creates a new reconciler service
func NewReconcilerService(erp ports.ERPClient, returns ports.ReturnStore, docs ports.DocumentWriter, logger *slog.Logger) *ReconcilerService {
	return &ReconcilerService{
		erp:     erp,
		returns: returns,
		docs:    docs,
		logger:  logger.With(slog.String("service", "reconciler")),
	}
}

// PassResult summarizes one reconciliation pass.
type PassResult struct {
	Files         int
	Consumed      int
	Retained      int
	OrdersUpdated int
	OrdersSkipped int
	OrdersFailed  int
}

// Run executes one reconciliation pass over the pending return directory.
// Per-file failures never prevent subsequent files from being processed; the
// only error returned is a failure to enumerate the directory itself.
func (s *ReconcilerService) Run(ctx context.Context) (*PassResult, error) {
	names, err := s.returns.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &PassResult{Files: len(names)}
	cache := NewOrderCache(s.erp, s.logger)

	for _, name := range names {
		s.processFile(ctx, cache, name, result)
	}

	s.logger.InfoContext(ctx, "reconciliation pass finished",
		slog.Int("files", result.Files),
		slog.Int("consumed", result.Consumed),
		slog.Int("retained", result.Retained),
		slog.Int("orders_updated", result.OrdersUpdated),
		slog.Int("orders_skipped", result.OrdersSkipped),
		slog.Int("orders_failed", result.OrdersFailed))

	return result, nil
}

// processFile routes one return file and settles its disposition. It never
// returns an error: every failure class maps onto keeping or deleting the
// file, and one bad file must not stop the rest of the pass.
func (s *ReconcilerService) processFile(ctx context.Context, cache *OrderCache, name string, result *PassResult) {
	doc, err := s.returns.Read(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read return file, keeping it for the next pass",
			slog.String("file", name),
			slog.String("error", err.Error()))
		result.Retained++
		return
	}

	if !doc.Reconcilable() {
		msg := "unknown return document type, leaving file in place"
		if doc.Type == domain.DocInventoryReturn {
			msg = "inventory returns are not supported, leaving file in place"
		}
		s.logger.WarnContext(ctx, msg, slog.String("file", name))
		result.Retained++
		return
	}

	failed, err := s.reconcileDocument(ctx, cache, doc, result)
	result.OrdersFailed += failed

	if err != nil {
		s.logger.ErrorContext(ctx, "transient failure, keeping return file for the next pass",
			slog.String("file", name),
			slog.String("error", err.Error()))
		result.Retained++
		return
	}

	if failed > 0 {
		s.logger.ErrorContext(ctx, "return file had permanently failed orders, discarding it",
			slog.String("file", name),
			slog.Int("orders_failed", failed))
	}

	if err := s.returns.Delete(ctx, name); err != nil {
		// The ERP updates already went through; the file will be reprocessed
		// next pass, which the reset-on-load accumulation tolerates.
		s.logger.ErrorContext(ctx, "failed to delete consumed return file",
			slog.String("file", name),
			slog.String("error", err.Error()))
		result.Retained++
		return
	}

	result.Consumed++
}

// reconcileDocument matches every record of one return file against its order
// lines, accumulates moved quantities, and pushes a status transition per
// touched order. Failures are isolated per order: a permanent error abandons
// that order and counts it as failed, while the first transient error is
// returned so the caller retains the whole file.
func (s *ReconcilerService) reconcileDocument(ctx context.Context, cache *OrderCache, doc *domain.ReturnDocument, result *PassResult) (int, error) {
	var touched []domain.OrderRef
	seen := make(map[string]bool)
	abandoned := make(map[string]bool)
	failedRecords := 0

	for _, rec := range doc.Records {
		ref, err := domain.ParseOrderRef(rec.OrderNumber)
		if err != nil {
			s.logger.ErrorContext(ctx, "rejecting return record with malformed order number",
				slog.String("file", doc.FileName),
				slog.String("order_number", rec.OrderNumber))
			failedRecords++
			continue
		}

		if ref.Manual() {
			s.logger.WarnContext(ctx, "skipping unsupported manual pick/supply record",
				slog.String("file", doc.FileName),
				slog.String("order_number", rec.OrderNumber))
			continue
		}

		if abandoned[ref.Key()] {
			continue
		}

		order, err := cache.Get(ctx, ref)
		if err != nil {
			if !domain.IsPermanent(err) {
				return failedRecords, err
			}
			s.logger.ErrorContext(ctx, "abandoning order referenced by return file",
				slog.String("file", doc.FileName),
				slog.String("order_number", ref.String()),
				slog.String("error", err.Error()))
			abandoned[ref.Key()] = true
			failedRecords++
			continue
		}

		line, err := order.LineByNumber(rec.LineNumber)
		if err != nil {
			s.logger.ErrorContext(ctx, "return record references a line missing from the order",
				slog.String("file", doc.FileName),
				slog.String("order_number", ref.String()),
				slog.Int("line_number", rec.LineNumber))
			abandoned[ref.Key()] = true
			failedRecords++
			continue
		}

		// Accumulate, never overwrite: one pick line can be fulfilled across
		// several physical scan events reported as separate records.
		line.MovedQty += rec.Delivered
		if rec.LocationInfo != "" {
			line.SerialOrBatch = rec.LocationInfo
		}

		if !seen[ref.Key()] {
			seen[ref.Key()] = true
			touched = append(touched, ref)
		}
	}

	var transient error
	for _, ref := range touched {
		if abandoned[ref.Key()] {
			continue
		}

		order, err := cache.Get(ctx, ref)
		if err != nil {
			// The order is cached at this point; a miss means the cache
			// itself failed, which only a transport error can cause.
			transient = err
			continue
		}

		skipped, err := s.transition(ctx, order)
		if err != nil {
			if domain.IsPermanent(err) {
				s.logger.ErrorContext(ctx, "order update permanently rejected by ERP",
					slog.String("file", doc.FileName),
					slog.String("order_number", ref.String()),
					slog.String("error", err.Error()))
				failedRecords++
				continue
			}
			// Transport failures and anything unclassified (a failed document
			// write, for example) keep the file so the order is retried.
			s.logger.ErrorContext(ctx, "order update failed, will retry next pass",
				slog.String("file", doc.FileName),
				slog.String("order_number", ref.String()),
				slog.String("error", err.Error()))
			transient = err
			continue
		}

		if skipped {
			result.OrdersSkipped++
		} else {
			result.OrdersUpdated++
		}
	}

	return failedRecords, transient
}

// transition pushes the accumulated quantities and the next status to the
// ERP as a single full-order update. Delivery-kind orders where nothing
// moved are acknowledged without producing an output document; every other
// path writes a confirmation document first, then completes the order.
func (s *ReconcilerService) transition(ctx context.Context, order *domain.Order) (skipped bool, err error) {
	switch order.Kind {
	case domain.KindDelivery:
		if !order.HasMovedLines() {
			order.Status = domain.StatusAcknowledged
			if err := s.erp.PushOrderUpdate(ctx, order); err != nil {
				return false, err
			}
			s.logger.InfoContext(ctx, "acknowledged order without picked lines",
				slog.String("order_number", order.WMSNumber()))
			return true, nil
		}
		if err := s.docs.WritePickConfirmation(ctx, order); err != nil {
			return false, err
		}

	case domain.KindTransfer:
		// An inbound movement confirmation is always meaningful, even with
		// partial quantities, so there is no skip path.
		if err := s.docs.WriteReceiptConfirmation(ctx, order); err != nil {
			return false, err
		}

	default:
		return false, &domain.MalformedOrderNumberError{Raw: order.Number}
	}

	order.Status = domain.StatusCompleted
	if err := s.erp.PushOrderUpdate(ctx, order); err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "order completed",
		slog.String("order_number", order.WMSNumber()),
		slog.Int("moved_lines", order.MovedLineCount()))

	return false, nil
}
