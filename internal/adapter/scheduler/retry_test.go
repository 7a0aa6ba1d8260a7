package scheduler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/duka-eats/payflow/internal/adapter/scheduler"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRetryWorker_Run(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	t.Run("every due payout is reissued once", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		service := mock.NewMockService(mockCtrl)

		due := []*domain.DisbursementTransaction{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}, {ID: 7},
		}
		repo.EXPECT().ListDueDisbursementRetries(gomock.Any(), gomock.Any()).
			Return(due, nil)

		var mu sync.Mutex
		seen := make(map[uint64]int)
		service.EXPECT().RetryDisbursement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uint64) error {
				mu.Lock()
				seen[id]++
				mu.Unlock()
				return nil
			}).Times(len(due))

		w, err := scheduler.NewRetryWorker(repo, service, logger)
		require.NoError(t, err)
		require.NoError(t, w.Run(context.Background()))

		assert.Len(t, seen, len(due))
		for id, count := range seen {
			assert.Equal(t, 1, count, "disbursement %d", id)
		}
	})

	t.Run("one failing payout does not stop the rest", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		service := mock.NewMockService(mockCtrl)

		repo.EXPECT().ListDueDisbursementRetries(gomock.Any(), gomock.Any()).
			Return([]*domain.DisbursementTransaction{{ID: 1}, {ID: 2}}, nil)
		service.EXPECT().RetryDisbursement(gomock.Any(), uint64(1)).
			Return(domain.ErrGatewayUnavailable)
		service.EXPECT().RetryDisbursement(gomock.Any(), uint64(2)).
			Return(nil)

		w, err := scheduler.NewRetryWorker(repo, service, logger)
		require.NoError(t, err)
		assert.NoError(t, w.Run(context.Background()))
	})

	t.Run("empty queue is a cheap no-op", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		service := mock.NewMockService(mockCtrl)

		repo.EXPECT().ListDueDisbursementRetries(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		w, err := scheduler.NewRetryWorker(repo, service, logger)
		require.NoError(t, err)
		assert.NoError(t, w.Run(context.Background()))
	})
}
