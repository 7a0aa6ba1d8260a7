package port

import (
	"context"

	"github.com/duka-eats/payflow/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	Checkout(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	ApplyOrderEvent(ctx context.Context, number domain.OrderNumber, event domain.OrderEvent) (*domain.Order, error)
	RetryCollection(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)

	ApplyProviderResult(ctx context.Context, result *ProviderResult) error
	RetryDisbursement(ctx context.Context, disbursementID uint64) error
	ListManualReviewDisbursements(ctx context.Context) ([]*domain.DisbursementTransaction, error)
}

// ProviderResultApplier is the slice of Service the schedulers depend on.
type ProviderResultApplier interface {
	ApplyProviderResult(ctx context.Context, result *ProviderResult) error
}
