// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Name:        "wms-sync-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		ERP: config.ERPConfig{
			BaseURL:           "http://localhost:9090",
			APIToken:          "test-token",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 100,
			RateBurst:         10,
		},
		WMS: config.WMSConfig{
			ReturnsDir:        filepath.Join(base, "returns"),
			OrdersDir:         filepath.Join(base, "orders"),
			PurchaseOrdersDir: filepath.Join(base, "purchase_orders"),
			ItemsDir:          filepath.Join(base, "items"),
			OutboundRetention: 14 * 24 * time.Hour,
		},
		Sync: config.SyncConfig{
			ReconcileInterval:   time.Minute,
			ItemSyncInterval:    15 * time.Minute,
			OrderExportInterval: time.Minute,
			SweepInterval:       24 * time.Hour,
			PassLockTTL:         time.Minute,
		},
	}
}

// CreateTestOrder creates a test order with two lines
func CreateTestOrder(overrides ...func(*domain.Order)) *domain.Order {
	order := &domain.Order{
		Number:       "00050",
		Kind:         domain.KindDelivery,
		Status:       domain.StatusReleased,
		CustomerCode: "CUST-001",
		OrderDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Lines: []domain.OrderLine{
			{
				LineNumber:  1,
				ItemCode:    "ART-100",
				Description: "Stainless bolt M8",
				OrderedQty:  10,
				UnitPrice:   decimal.NewFromFloat(1.25),
			},
			{
				LineNumber:  2,
				ItemCode:    "ART-200",
				Description: "Hex nut M8",
				OrderedQty:  4,
				UnitPrice:   decimal.NewFromFloat(0.40),
			},
		},
	}

	for _, override := range overrides {
		override(order)
	}

	return order
}

// CreateTestReturnDocument creates a pick return referencing the test order
func CreateTestReturnDocument(overrides ...func(*domain.ReturnDocument)) *domain.ReturnDocument {
	doc := &domain.ReturnDocument{
		FileName: "return_0001.xml",
		Type:     domain.DocPickReturn,
		Records: []domain.ReturnRecord{
			{OrderNumber: "D00050", LineNumber: 1, Delivered: 3},
			{OrderNumber: "D00050", LineNumber: 1, Delivered: 4},
		},
	}

	for _, override := range overrides {
		override(doc)
	}

	return doc
}

// CreateTestItems creates a small item catalog
func CreateTestItems(count int) []domain.Item {
	items := make([]domain.Item, count)
	for i := 0; i < count; i++ {
		items[i] = domain.Item{
			Code:        fmt.Sprintf("ART-%03d", i+1),
			Description: fmt.Sprintf("Test article %d", i+1),
			Barcode:     fmt.Sprintf("4006381%06d", i+1),
			Unit:        "pcs",
			Price:       decimal.NewFromFloat(float64(1+i) * 0.5),
			UpdatedAt:   time.Now().UTC(),
		}
	}
	return items
}

// WriteReturnFile writes a raw return file into a returns directory
func WriteReturnFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
