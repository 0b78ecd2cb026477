// internal/adapters/wms/filestore_test.go
package wms_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordhus/wms-sync/internal/adapters/wms"
	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/test/helpers"
)

func newTestStore(t *testing.T) (*wms.FileStore, wms.Config) {
	t.Helper()

	testCfg := helpers.LoadTestConfig(t)
	cfg := wms.Config{
		ReturnsDir:        testCfg.WMS.ReturnsDir,
		OrdersDir:         testCfg.WMS.OrdersDir,
		PurchaseOrdersDir: testCfg.WMS.PurchaseOrdersDir,
		ItemsDir:          testCfg.WMS.ItemsDir,
		OutboundRetention: testCfg.WMS.OutboundRetention,
	}
	for _, dir := range []string{cfg.ReturnsDir, cfg.OrdersDir, cfg.PurchaseOrdersDir, cfg.ItemsDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	return wms.NewFileStore(cfg, helpers.TestLogger()), cfg
}

const pickReturnXML = `<?xml version="1.0" encoding="UTF-8"?>
<WMSDocument>
  <PickReturn>
    <Data>
      <OrderNumber>D00050</OrderNumber>
      <LineNumber>1</LineNumber>
      <Delivered>3</Delivered>
      <LocationInfo>BATCH-A</LocationInfo>
    </Data>
    <Data>
      <OrderNumber>D00050</OrderNumber>
      <LineNumber>1</LineNumber>
      <Delivered>4</Delivered>
      <LocationInfo></LocationInfo>
    </Data>
  </PickReturn>
</WMSDocument>`

func TestFileStore_List(t *testing.T) {
	store, cfg := newTestStore(t)

	helpers.WriteReturnFile(t, cfg.ReturnsDir, "return_b.xml", pickReturnXML)
	helpers.WriteReturnFile(t, cfg.ReturnsDir, "return_a.XML", pickReturnXML)
	helpers.WriteReturnFile(t, cfg.ReturnsDir, "notes.txt", "ignore me")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ReturnsDir, "archive"), 0o755))

	names, err := store.List(context.Background())
	require.NoError(t, err)

	// Only XML files, case-insensitive extension, sorted by name.
	assert.Equal(t, []string{"return_a.XML", "return_b.xml"}, names)
}

func TestFileStore_List_MissingDirectoryFails(t *testing.T) {
	store := wms.NewFileStore(wms.Config{ReturnsDir: "/nonexistent/returns"}, helpers.TestLogger())

	_, err := store.List(context.Background())
	require.Error(t, err)
}

func TestFileStore_Read(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedType    domain.DocumentType
		expectedRecords int
		expectedErr     bool
	}{
		{
			name:            "pick_return",
			content:         pickReturnXML,
			expectedType:    domain.DocPickReturn,
			expectedRecords: 2,
		},
		{
			name: "purchase_return",
			content: `<WMSDocument><PurchaseReturn><Data>
				<OrderNumber>T00060</OrderNumber><LineNumber>1</LineNumber><Delivered>5</Delivered>
			</Data></PurchaseReturn></WMSDocument>`,
			expectedType:    domain.DocPurchaseReturn,
			expectedRecords: 1,
		},
		{
			name:            "inventory_return",
			content:         `<WMSDocument><InventoryReturn></InventoryReturn></WMSDocument>`,
			expectedType:    domain.DocInventoryReturn,
			expectedRecords: 0,
		},
		{
			name:         "unknown_body",
			content:      `<WMSDocument><SomethingElse/></WMSDocument>`,
			expectedType: domain.DocUnknown,
		},
		{
			name:        "not_xml_at_all",
			content:     "this is not xml",
			expectedErr: true,
		},
		{
			name:        "truncated_xml",
			content:     `<WMSDocument><PickReturn><Data><OrderNumber>D0005`,
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cfg := newTestStore(t)
			helpers.WriteReturnFile(t, cfg.ReturnsDir, "return.xml", tt.content)

			doc, err := store.Read(context.Background(), "return.xml")
			if tt.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "return.xml", doc.FileName)
			assert.Equal(t, tt.expectedType, doc.Type)
			assert.Len(t, doc.Records, tt.expectedRecords)
		})
	}
}

func TestFileStore_Read_TrimsWhitespace(t *testing.T) {
	store, cfg := newTestStore(t)
	helpers.WriteReturnFile(t, cfg.ReturnsDir, "return.xml", `<WMSDocument><PickReturn><Data>
		<OrderNumber>  D00050  </OrderNumber><LineNumber>1</LineNumber><Delivered>3</Delivered>
		<LocationInfo> BATCH-A </LocationInfo>
	</Data></PickReturn></WMSDocument>`)

	doc, err := store.Read(context.Background(), "return.xml")
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "D00050", doc.Records[0].OrderNumber)
	assert.Equal(t, "BATCH-A", doc.Records[0].LocationInfo)
}

func TestFileStore_Delete(t *testing.T) {
	store, cfg := newTestStore(t)
	path := helpers.WriteReturnFile(t, cfg.ReturnsDir, "return.xml", pickReturnXML)

	require.NoError(t, store.Delete(context.Background(), "return.xml"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting a file that is already gone is an error the caller must see.
	require.Error(t, store.Delete(context.Background(), "return.xml"))
}

func TestFileStore_SweepOutbound(t *testing.T) {
	store, cfg := newTestStore(t)

	fresh := filepath.Join(cfg.OrdersDir, "pick_D00050.xml")
	stale := filepath.Join(cfg.OrdersDir, "pick_D00001.xml")
	stalePO := filepath.Join(cfg.PurchaseOrdersDir, "po_T00002.xml")

	for _, path := range []string{fresh, stale, stalePO} {
		require.NoError(t, os.WriteFile(path, []byte("<doc/>"), 0o644))
	}

	old := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(stalePO, old, old))

	deleted, err := store.SweepOutbound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_SweepOutbound_DisabledRetention(t *testing.T) {
	store := wms.NewFileStore(wms.Config{OutboundRetention: 0}, helpers.TestLogger())

	deleted, err := store.SweepOutbound(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
