package collaborator

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/adapter/storage"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

// AgreementRates resolves commission rates from restaurant agreements, with
// the platform default for restaurants that have no negotiated rate.
type AgreementRates struct {
	db          *storage.DB
	defaultRate decimal.Decimal
}

func NewAgreementRates(db *storage.DB, cfg *config.Fees) (*AgreementRates, error) {
	rate, err := decimal.Parse(cfg.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("parse default commission rate: %w", err)
	}
	if rate.Sign() < 0 || rate.Cmp(decimal.One) >= 0 {
		return nil, domain.ErrValidation
	}
	return &AgreementRates{db: db, defaultRate: rate}, nil
}

func (a *AgreementRates) Rate(ctx context.Context, restaurantID uint64) (decimal.Decimal, error) {
	statement := a.db.QueryBuilder.
		Select("commission_rate").
		From("restaurant_agreements").
		Where(sq.Eq{"restaurant_id": restaurantID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var rate decimal.Decimal
	err = a.db.QueryRow(ctx, sql, args...).Scan(&rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return a.defaultRate, nil
		}
		return decimal.Zero, err
	}
	return rate, nil
}
