// internal/workers/reconcile_processor_test.go
package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nordhus/wms-sync/internal/adapters/redislock"
	"github.com/nordhus/wms-sync/internal/core/services"
	"github.com/nordhus/wms-sync/internal/workers"
	"github.com/nordhus/wms-sync/test/helpers"
	"github.com/nordhus/wms-sync/test/mocks"
)

func newProcessor(t *testing.T) (*workers.ReconcileProcessor, *mocks.MockReturnStore, *redislock.PassLock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockERP := mocks.NewMockERPClient(ctrl)
	mockReturns := mocks.NewMockReturnStore(ctrl)
	mockDocs := mocks.NewMockDocumentWriter(ctrl)

	service := services.NewReconcilerService(mockERP, mockReturns, mockDocs, helpers.TestLogger())

	tr := helpers.SetupTestRedis(t)
	lock := redislock.NewPassLock(tr.Client, time.Minute, helpers.TestLogger())

	return workers.NewReconcileProcessor(service, lock, helpers.TestLogger()), mockReturns, lock
}

func TestReconcileProcessor_RunsAPass(t *testing.T) {
	processor, mockReturns, _ := newProcessor(t)

	mockReturns.EXPECT().List(gomock.Any()).Return(nil, nil)

	task := asynq.NewTask(workers.TypeReconcileReturns, nil)
	require.NoError(t, processor.ProcessReturns(context.Background(), task))
}

func TestReconcileProcessor_SkipsTickWhileLockHeld(t *testing.T) {
	processor, _, lock := newProcessor(t)

	acquired, err := lock.Acquire(context.Background(), "reconcile")
	require.NoError(t, err)
	require.True(t, acquired)

	// No List expectation: the pass never starts while the lock is held.
	task := asynq.NewTask(workers.TypeReconcileReturns, nil)
	require.NoError(t, processor.ProcessReturns(context.Background(), task))
}

func TestReconcileProcessor_ReleasesLockAfterPass(t *testing.T) {
	processor, mockReturns, lock := newProcessor(t)

	mockReturns.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	task := asynq.NewTask(workers.TypeReconcileReturns, nil)
	require.NoError(t, processor.ProcessReturns(context.Background(), task))

	// The lock is free again, so a fresh tick runs a full pass.
	require.NoError(t, processor.ProcessReturns(context.Background(), task))

	acquired, err := lock.Acquire(context.Background(), "reconcile")
	require.NoError(t, err)
	assert.True(t, acquired)
}
