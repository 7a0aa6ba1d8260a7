package port

import (
	"context"
	"time"

	"github.com/duka-eats/payflow/internal/core/domain"
)

// CollectionApplyFn mutates a collection row and its order inside one
// repository transaction. Disbursement rows it returns are inserted in the
// same transaction (idempotently, keyed on external id) so a provider result,
// the order transition it triggers and the payouts it creates commit as one
// unit or not at all.
type CollectionApplyFn func(tx *domain.PaymentTransaction, order *domain.Order) ([]*domain.DisbursementTransaction, error)

// DisbursementApplyFn mutates a disbursement row and its order inside one
// repository transaction.
type DisbursementApplyFn func(d *domain.DisbursementTransaction, order *domain.Order) error

type OrderUpdateFn func(order *domain.Order) error

type CollectionUpdateFn func(tx *domain.PaymentTransaction) error

type DisbursementUpdateFn func(d *domain.DisbursementTransaction) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderByNumber(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	// UpdateOrder re-reads and reapplies fn on version conflicts, guarded by
	// a compare-and-swap on the order's version counter.
	UpdateOrder(ctx context.Context, orderID uint64, fn OrderUpdateFn) (*domain.Order, error)

	// Collection
	CreateCollection(ctx context.Context, tx *domain.PaymentTransaction) (*domain.PaymentTransaction, error)
	ReadCollectionByRef(ctx context.Context, providerRef string) (*domain.PaymentTransaction, error)
	ReadSuccessfulCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error)
	ReadActiveCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error)
	// ReadRetryableCollection returns the latest attempt that failed before
	// the provider issued a reference. Its external id is safe to resubmit.
	ReadRetryableCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error)
	UpdateCollection(ctx context.Context, txID uint64, fn CollectionUpdateFn) (*domain.PaymentTransaction, error)
	ApplyCollectionResult(ctx context.Context, providerRef string, fn CollectionApplyFn) (*domain.PaymentTransaction, error)
	ListPendingCollections(ctx context.Context, pendingSince time.Time) ([]*domain.PaymentTransaction, error)

	// Disbursement
	CreateDisbursements(ctx context.Context, list []*domain.DisbursementTransaction) error
	ReadDisbursement(ctx context.Context, id uint64) (*domain.DisbursementTransaction, error)
	ListDisbursementsByOrder(ctx context.Context, orderID uint64) ([]*domain.DisbursementTransaction, error)
	UpdateDisbursement(ctx context.Context, id uint64, fn DisbursementUpdateFn) (*domain.DisbursementTransaction, error)
	ApplyDisbursementResult(ctx context.Context, providerRef string, fn DisbursementApplyFn) (*domain.DisbursementTransaction, error)
	ListPendingDisbursements(ctx context.Context, pendingSince time.Time) ([]*domain.DisbursementTransaction, error)
	ListDueDisbursementRetries(ctx context.Context, now time.Time) ([]*domain.DisbursementTransaction, error)
	ListManualReviewDisbursements(ctx context.Context) ([]*domain.DisbursementTransaction, error)

	// Earnings
	CreateBikerEarning(ctx context.Context, earning *domain.BikerEarning) (*domain.BikerEarning, error)
}
