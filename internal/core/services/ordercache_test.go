// internal/core/services/ordercache_test.go
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

func TestOrderCache_FetchesEachOrderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockERP := mocks.NewMockERPClient(ctrl)
	mockERP.EXPECT().
		FetchOrder(gomock.Any(), domain.KindDelivery, "00050").
		Return(helpers.CreateTestOrder(), nil).
		Times(1)

	cache := services.NewOrderCache(mockERP, helpers.TestLogger())
	ref := domain.OrderRef{TypeCode: "D", Number: "00050"}

	first, err := cache.Get(context.Background(), ref)
	require.NoError(t, err)

	second, err := cache.Get(context.Background(), ref)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Size())
}

func TestOrderCache_ResetsMovedQuantitiesOnLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stale := helpers.CreateTestOrder(func(o *domain.Order) {
		o.Lines[0].MovedQty = 9
		o.Lines[1].MovedQty = 2
	})

	mockERP := mocks.NewMockERPClient(ctrl)
	mockERP.EXPECT().
		FetchOrder(gomock.Any(), domain.KindDelivery, "00050").
		Return(stale, nil)

	cache := services.NewOrderCache(mockERP, helpers.TestLogger())

	order, err := cache.Get(context.Background(), domain.OrderRef{TypeCode: "D", Number: "00050"})
	require.NoError(t, err)

	for _, line := range order.Lines {
		assert.Zero(t, line.MovedQty)
	}
}

func TestOrderCache_PreservesMutationsBetweenLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockERP := mocks.NewMockERPClient(ctrl)
	mockERP.EXPECT().
		FetchOrder(gomock.Any(), domain.KindDelivery, "00050").
		Return(helpers.CreateTestOrder(), nil).
		Times(1)

	cache := services.NewOrderCache(mockERP, helpers.TestLogger())
	ref := domain.OrderRef{TypeCode: "D", Number: "00050"}

	order, err := cache.Get(context.Background(), ref)
	require.NoError(t, err)
	order.Lines[0].MovedQty = 3

	again, err := cache.Get(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Lines[0].MovedQty)
}

func TestOrderCache_UnknownTypeCodeIsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No FetchOrder expectation: the reference never reaches the ERP.
	mockERP := mocks.NewMockERPClient(ctrl)
	cache := services.NewOrderCache(mockERP, helpers.TestLogger())

	_, err := cache.Get(context.Background(), domain.OrderRef{TypeCode: "X", Number: "55"})
	require.Error(t, err)

	var me *domain.MalformedOrderNumberError
	assert.True(t, errors.As(err, &me))
	assert.True(t, domain.IsPermanent(err))
}

func TestOrderCache_FetchErrorIsWrappedNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockERP := mocks.NewMockERPClient(ctrl)
	mockERP.EXPECT().
		FetchOrder(gomock.Any(), domain.KindDelivery, "00050").
		Return(nil, &domain.TransportError{Op: "GET", Err: errors.New("connection refused")}).
		Times(2)

	cache := services.NewOrderCache(mockERP, helpers.TestLogger())
	ref := domain.OrderRef{TypeCode: "D", Number: "00050"}

	_, err := cache.Get(context.Background(), ref)
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
	assert.Equal(t, 0, cache.Size())

	// A failed fetch is retried on the next lookup.
	_, err = cache.Get(context.Background(), ref)
	require.Error(t, err)
}
