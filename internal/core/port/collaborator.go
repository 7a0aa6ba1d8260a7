package port

import (
	"context"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=collaborator.go -destination=mock/collaborator.go -package=mock

// CommissionRates resolves the platform commission rate agreed with a
// restaurant, e.g. 0.10 for 10%.
type CommissionRates interface {
	Rate(ctx context.Context, restaurantID uint64) (decimal.Decimal, error)
}

// CourierFees computes the base and distance parts of a biker's earning.
type CourierFees interface {
	Fee(ctx context.Context, distanceKm float64) (base decimal.Decimal, distance decimal.Decimal, err error)
}

// Notifier receives fire-and-forget lifecycle events. Implementations must
// not influence core behavior and must not block.
type Notifier interface {
	OrderPaid(orderID uint64)
	OrderDelivered(orderID uint64)
	DisbursementFinal(orderID uint64, role domain.RecipientRole, status domain.TransactionStatus)
}
