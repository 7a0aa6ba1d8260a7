package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// BikerEarning is the breakdown behind a biker payout, recorded once the
// delivery payout is created. Total = BaseFee + DistanceFee + Tip + Bonus.
type BikerEarning struct {
	ID             uint64
	OrderID        uint64
	DisbursementID uint64
	BaseFee        decimal.Decimal
	DistanceFee    decimal.Decimal
	Tip            decimal.Decimal
	Bonus          decimal.Decimal
	Total          decimal.Decimal
	CreatedAt      time.Time
}
