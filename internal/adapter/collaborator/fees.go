package collaborator

import (
	"context"
	"fmt"

	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/govalues/decimal"
)

// FlatCourierFees computes biker pay as a flat base plus a per-kilometer
// rate. Distance is rounded to the started kilometer.
type FlatCourierFees struct {
	base  decimal.Decimal
	perKm decimal.Decimal
}

func NewFlatCourierFees(cfg *config.Fees) (*FlatCourierFees, error) {
	base, err := decimal.Parse(cfg.CourierBaseFee)
	if err != nil {
		return nil, fmt.Errorf("parse courier base fee: %w", err)
	}
	perKm, err := decimal.Parse(cfg.CourierPerKm)
	if err != nil {
		return nil, fmt.Errorf("parse courier per-km fee: %w", err)
	}
	return &FlatCourierFees{base: base, perKm: perKm}, nil
}

func (f *FlatCourierFees) Fee(_ context.Context, distanceKm float64) (decimal.Decimal, decimal.Decimal, error) {
	km := int64(distanceKm)
	if distanceKm > float64(km) {
		km++
	}
	if km < 0 {
		km = 0
	}

	kmDec, err := decimal.New(km, 0)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	distance, err := f.perKm.Mul(kmDec)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return f.base, distance, nil
}
