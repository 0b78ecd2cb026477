// internal/core/services/export_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/test/helpers"
	"github.com/nordhus/wms-sync/test/mocks"
)

func newExport(t *testing.T) (*services.OrderExportService, *mocks.MockERPClient, *mocks.MockDocumentWriter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockERP := mocks.NewMockERPClient(ctrl)
	mockDocs := mocks.NewMockDocumentWriter(ctrl)
	service := services.NewOrderExportService(mockERP, mockDocs, helpers.TestLogger())
	return service, mockERP, mockDocs
}

func TestOrderExportService_ExportsBothKinds(t *testing.T) {
	service, mockERP, mockDocs := newExport(t)

	delivery := *helpers.CreateTestOrder(func(o *domain.Order) {
		o.Status = domain.StatusOpen
	})
	transfer := *helpers.CreateTestOrder(func(o *domain.Order) {
		o.Number = "00060"
		o.Status = domain.StatusOpen
	})

	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindDelivery).
		Return([]domain.Order{delivery}, nil)
	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindTransfer).
		Return([]domain.Order{transfer}, nil)

	mockDocs.EXPECT().WritePickOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockDocs.EXPECT().WritePurchaseOrder(gomock.Any(), gomock.Any()).Return(nil)

	mockERP.EXPECT().
		PushStatusOnly(gomock.Any(), domain.KindDelivery, "00050", domain.StatusReleased).
		Return(nil)
	mockERP.EXPECT().
		PushStatusOnly(gomock.Any(), domain.KindTransfer, "00060", domain.StatusReleased).
		Return(nil)

	exported, err := service.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, exported)
}

func TestOrderExportService_FailedWriteIsNotReleased(t *testing.T) {
	service, mockERP, mockDocs := newExport(t)

	orders := []domain.Order{
		*helpers.CreateTestOrder(func(o *domain.Order) { o.Number = "00050" }),
		*helpers.CreateTestOrder(func(o *domain.Order) { o.Number = "00051" }),
	}

	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindDelivery).
		Return(orders, nil)
	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindTransfer).
		Return(nil, nil)

	mockDocs.EXPECT().
		WritePickOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) error {
			if order.Number == "00050" {
				return errors.New("disk full")
			}
			return nil
		}).
		Times(2)

	// Only the order whose document was written gets a release; the failed
	// one stays open and is re-exported next tick.
	mockERP.EXPECT().
		PushStatusOnly(gomock.Any(), domain.KindDelivery, "00051", domain.StatusReleased).
		Return(nil)

	exported, err := service.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, exported)
}

func TestOrderExportService_FailedReleaseIsNotCounted(t *testing.T) {
	service, mockERP, mockDocs := newExport(t)

	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindDelivery).
		Return([]domain.Order{*helpers.CreateTestOrder()}, nil)
	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindTransfer).
		Return(nil, nil)

	mockDocs.EXPECT().WritePickOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockERP.EXPECT().
		PushStatusOnly(gomock.Any(), domain.KindDelivery, "00050", domain.StatusReleased).
		Return(&domain.TransportError{Op: "PATCH", Err: errors.New("timeout")})

	exported, err := service.Export(context.Background())
	require.NoError(t, err)
	assert.Zero(t, exported)
}

func TestOrderExportService_FetchFailureStopsExport(t *testing.T) {
	service, mockERP, _ := newExport(t)

	mockERP.EXPECT().
		FetchOpenOrders(gomock.Any(), domain.KindDelivery).
		Return(nil, &domain.TransportError{Op: "GET", Err: errors.New("connection refused")})

	_, err := service.Export(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}
