// internal/adapters/wms/filestore.go
package wms

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// Config holds the shared-filesystem layout agreed with the warehouse
type Config struct {
	ReturnsDir        string
	OrdersDir         string
	PurchaseOrdersDir string
	ItemsDir          string
	OutboundRetention time.Duration
}

// FileStore exchanges XML documents with the warehouse over a shared
// filesystem: it consumes return files from the pending directory and writes
// outbound documents into the order, purchase-order and items directories.
type FileStore struct {
	cfg    Config
	logger *slog.Logger
}

// Statically assert that *FileStore implements both WMS ports.
var (
	_ ports.ReturnStore    = (*FileStore)(nil)
	_ ports.DocumentWriter = (*FileStore)(nil)
)

// NewFileStore creates a new WMS file store
func NewFileStore(cfg Config, logger *slog.Logger) *FileStore {
	return &FileStore{
		cfg:    cfg,
		logger: logger.With(slog.String("adapter", "wms_files")),
	}
}

// List enumerates pending return files, oldest name first so processing
// order is stable across passes.
func (f *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.cfg.ReturnsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read returns directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Return file wire format: a fixed root with exactly one of the three return
// bodies as its first child.

type returnFile struct {
	XMLName   xml.Name    `xml:"WMSDocument"`
	Inventory *returnBody `xml:"InventoryReturn"`
	Purchase  *returnBody `xml:"PurchaseReturn"`
	Pick      *returnBody `xml:"PickReturn"`
}

type returnBody struct {
	Data []returnData `xml:"Data"`
}

type returnData struct {
	OrderNumber  string `xml:"OrderNumber"`
	LineNumber   int    `xml:"LineNumber"`
	Delivered    int    `xml:"Delivered"`
	LocationInfo string `xml:"LocationInfo"`
}

// Read parses one return file into a typed document. A file whose root
// contains none of the known return bodies comes back as DocUnknown rather
// than an error, so the caller can decide to leave it in place.
func (f *FileStore) Read(ctx context.Context, name string) (*domain.ReturnDocument, error) {
	data, err := os.ReadFile(filepath.Join(f.cfg.ReturnsDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read return file %s: %w", name, err)
	}

	var file returnFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse return file %s: %w", name, err)
	}

	doc := &domain.ReturnDocument{FileName: name, Type: domain.DocUnknown}

	var body *returnBody
	switch {
	case file.Inventory != nil:
		doc.Type = domain.DocInventoryReturn
		body = file.Inventory
	case file.Purchase != nil:
		doc.Type = domain.DocPurchaseReturn
		body = file.Purchase
	case file.Pick != nil:
		doc.Type = domain.DocPickReturn
		body = file.Pick
	}

	if body != nil {
		doc.Records = make([]domain.ReturnRecord, 0, len(body.Data))
		for _, d := range body.Data {
			doc.Records = append(doc.Records, domain.ReturnRecord{
				OrderNumber:  strings.TrimSpace(d.OrderNumber),
				LineNumber:   d.LineNumber,
				Delivered:    d.Delivered,
				LocationInfo: strings.TrimSpace(d.LocationInfo),
			})
		}
	}

	return doc, nil
}

// Delete removes a consumed return file. Deletion is the success signal for
// return processing.
func (f *FileStore) Delete(ctx context.Context, name string) error {
	if err := os.Remove(filepath.Join(f.cfg.ReturnsDir, name)); err != nil {
		return fmt.Errorf("failed to delete return file %s: %w", name, err)
	}
	f.logger.DebugContext(ctx, "return file deleted", slog.String("file", name))
	return nil
}

// SweepOutbound removes outbound documents the warehouse has had longer than
// the retention window. Files the WMS consumes disappear on their own; this
// catches the ones it never picked up.
func (f *FileStore) SweepOutbound(ctx context.Context) (int, error) {
	if f.cfg.OutboundRetention <= 0 {
		return 0, nil
	}

	deleted := 0
	for _, dir := range []string{f.cfg.OrdersDir, f.cfg.PurchaseOrdersDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return deleted, fmt.Errorf("failed to read outbound directory %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			if time.Since(info.ModTime()) <= f.cfg.OutboundRetention {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				f.logger.WarnContext(ctx, "failed to delete stale outbound document",
					slog.String("file", path),
					slog.String("error", err.Error()))
				continue
			}
			deleted++
		}
	}
	return deleted, nil
}

// writeAtomic writes data under a temporary name and renames it into place,
// so the warehouse never observes a half-written document.
func (f *FileStore) writeAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write([]byte(xml.Header)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document header: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}
