package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/adapter/scheduler"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/duka-eats/payflow/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReconciler(t *testing.T, repo *mock.MockRepository,
	gateway *mock.MockPaymentGateway, applier *mock.MockProviderResultApplier) *scheduler.Reconciler {
	t.Helper()

	logger, _ := zap.NewProduction()
	r, err := scheduler.NewReconciler(repo, gateway, applier,
		&config.Jobs{PendingTimeout: 10 * time.Minute}, logger)
	require.NoError(t, err)
	return r
}

func TestReconciler_Run(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("stuck collection gets polled and applied", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		applier := mock.NewMockProviderResultApplier(mockCtrl)

		stuck := &domain.PaymentTransaction{
			ID:          1,
			OrderID:     10,
			ProviderRef: "REF-1",
			Status:      domain.TransactionStatusPending,
		}
		result := &port.ProviderResult{
			ProviderRef: "REF-1",
			Status:      domain.TransactionStatusSuccessful,
		}

		repo.EXPECT().ListPendingCollections(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*domain.PaymentTransaction, error) {
				// only rows older than the pending timeout are swept
				assert.True(t, cutoff.Before(time.Now().Add(-9*time.Minute)))
				return []*domain.PaymentTransaction{stuck}, nil
			})
		repo.EXPECT().ListPendingDisbursements(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		gateway.EXPECT().QueryStatus(gomock.Any(), "REF-1").Return(result, nil)
		applier.EXPECT().ApplyProviderResult(gomock.Any(), result).Return(nil)

		err := newTestReconciler(t, repo, gateway, applier).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("still pending at the provider is left alone", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		applier := mock.NewMockProviderResultApplier(mockCtrl)

		stuck := &domain.PaymentTransaction{ProviderRef: "REF-1"}
		repo.EXPECT().ListPendingCollections(gomock.Any(), gomock.Any()).
			Return([]*domain.PaymentTransaction{stuck}, nil)
		repo.EXPECT().ListPendingDisbursements(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		gateway.EXPECT().QueryStatus(gomock.Any(), "REF-1").
			Return(&port.ProviderResult{
				ProviderRef: "REF-1",
				Status:      domain.TransactionStatusPending,
			}, nil)

		err := newTestReconciler(t, repo, gateway, applier).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("stuck disbursements are swept too", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		applier := mock.NewMockProviderResultApplier(mockCtrl)

		stuck := &domain.DisbursementTransaction{ProviderRef: "PAYOUT-REF"}
		result := &port.ProviderResult{
			ProviderRef: "PAYOUT-REF",
			Status:      domain.TransactionStatusFailed,
		}

		repo.EXPECT().ListPendingCollections(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		repo.EXPECT().ListPendingDisbursements(gomock.Any(), gomock.Any()).
			Return([]*domain.DisbursementTransaction{stuck}, nil)
		gateway.EXPECT().QueryStatus(gomock.Any(), "PAYOUT-REF").Return(result, nil)
		applier.EXPECT().ApplyProviderResult(gomock.Any(), result).Return(nil)

		err := newTestReconciler(t, repo, gateway, applier).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("query failure skips the row, sweep goes on", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		applier := mock.NewMockProviderResultApplier(mockCtrl)

		first := &domain.PaymentTransaction{ProviderRef: "REF-1"}
		second := &domain.PaymentTransaction{ProviderRef: "REF-2"}
		result := &port.ProviderResult{
			ProviderRef: "REF-2",
			Status:      domain.TransactionStatusExpired,
		}

		repo.EXPECT().ListPendingCollections(gomock.Any(), gomock.Any()).
			Return([]*domain.PaymentTransaction{first, second}, nil)
		repo.EXPECT().ListPendingDisbursements(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		gateway.EXPECT().QueryStatus(gomock.Any(), "REF-1").
			Return(nil, domain.ErrGatewayUnavailable)
		gateway.EXPECT().QueryStatus(gomock.Any(), "REF-2").Return(result, nil)
		applier.EXPECT().ApplyProviderResult(gomock.Any(), result).Return(nil)

		err := newTestReconciler(t, repo, gateway, applier).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("listing failure aborts the sweep", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		applier := mock.NewMockProviderResultApplier(mockCtrl)

		listErr := errors.New("connection reset")
		repo.EXPECT().ListPendingCollections(gomock.Any(), gomock.Any()).
			Return(nil, listErr)

		err := newTestReconciler(t, repo, gateway, applier).Run(context.Background())
		assert.ErrorIs(t, err, listErr)
	})
}
