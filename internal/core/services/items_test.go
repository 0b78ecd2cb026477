// internal/core/services/items_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/test/helpers"
	"github.com/nordhus/wms-sync/test/mocks"
)

func newItemSync(t *testing.T) (*services.ItemSyncService, *mocks.MockERPClient, *mocks.MockDocumentWriter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockERP := mocks.NewMockERPClient(ctrl)
	mockDocs := mocks.NewMockDocumentWriter(ctrl)
	service := services.NewItemSyncService(mockERP, mockDocs, helpers.TestLogger())
	return service, mockERP, mockDocs
}

func TestItemSyncService_EmptyCursorForcesFullFetch(t *testing.T) {
	service, mockERP, mockDocs := newItemSync(t)

	items := helpers.CreateTestItems(3)
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), time.Time{}).
		Return(items, nil)
	mockDocs.EXPECT().WriteItemCatalog(gomock.Any(), items).Return(nil)

	before := time.Now()
	cursor, err := service.Sync(context.Background(), domain.SyncCursor{})
	require.NoError(t, err)

	assert.False(t, cursor.Empty())
	assert.False(t, cursor.LastSync.Before(before))
}

func TestItemSyncService_IncrementalFetchUsesCursor(t *testing.T) {
	service, mockERP, mockDocs := newItemSync(t)

	since := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	items := helpers.CreateTestItems(1)

	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), since).
		Return(items, nil)
	mockDocs.EXPECT().WriteItemCatalog(gomock.Any(), items).Return(nil)

	cursor, err := service.Sync(context.Background(), domain.SyncCursor{LastSync: since})
	require.NoError(t, err)
	assert.True(t, cursor.LastSync.After(since))
}

func TestItemSyncService_CursorStampedBeforeFetch(t *testing.T) {
	service, mockERP, mockDocs := newItemSync(t)

	var fetchReturned time.Time
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]domain.Item, error) {
			time.Sleep(10 * time.Millisecond)
			fetchReturned = time.Now()
			return helpers.CreateTestItems(1), nil
		})
	mockDocs.EXPECT().WriteItemCatalog(gomock.Any(), gomock.Any()).Return(nil)

	cursor, err := service.Sync(context.Background(), domain.SyncCursor{})
	require.NoError(t, err)

	// Changes racing the fetch fall into the next window rather than the gap
	// between fetch completion and cursor advance.
	assert.True(t, cursor.LastSync.Before(fetchReturned))
}

func TestItemSyncService_NoChangesStillAdvancesCursor(t *testing.T) {
	service, mockERP, _ := newItemSync(t)

	since := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), since).
		Return(nil, nil)

	cursor, err := service.Sync(context.Background(), domain.SyncCursor{LastSync: since})
	require.NoError(t, err)
	assert.True(t, cursor.LastSync.After(since))
}

func TestItemSyncService_FetchFailureLeavesCursorUnchanged(t *testing.T) {
	service, mockERP, _ := newItemSync(t)

	original := domain.SyncCursor{LastSync: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), original.LastSync).
		Return(nil, &domain.TransportError{Op: "GET", Err: errors.New("timeout")})

	cursor, err := service.Sync(context.Background(), original)
	require.Error(t, err)
	assert.Equal(t, original, cursor)
}

func TestItemSyncService_WriteFailureLeavesCursorUnchanged(t *testing.T) {
	service, mockERP, mockDocs := newItemSync(t)

	original := domain.SyncCursor{LastSync: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), original.LastSync).
		Return(helpers.CreateTestItems(2), nil)
	mockDocs.EXPECT().
		WriteItemCatalog(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	cursor, err := service.Sync(context.Background(), original)
	require.Error(t, err)
	assert.Equal(t, original, cursor)
}

func TestItemSyncService_InvalidItemLeavesCursorUnchanged(t *testing.T) {
	service, mockERP, _ := newItemSync(t)

	bad := []domain.Item{{Code: "", Price: decimal.NewFromFloat(1)}}
	mockERP.EXPECT().
		FetchItemsSince(gomock.Any(), gomock.Any()).
		Return(bad, nil)

	original := domain.SyncCursor{LastSync: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	cursor, err := service.Sync(context.Background(), original)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid item")
	assert.Equal(t, original, cursor)
}
