package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/duka-eats/payflow/internal/adapter/storage"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// casRetries bounds the optimistic-concurrency retry loop in UpdateOrder.
const casRetries = 3

var orderColumns = []string{
	"id", "number", "restaurant_id", "biker_id",
	"customer_msisdn", "restaurant_msisdn", "biker_msisdn",
	"status", "payment_status",
	"subtotal", "delivery_fee", "discount_amount", "final_amount",
	"delivery_km", "tip", "version", "created_at", "updated_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("number", "restaurant_id", "biker_id",
			"customer_msisdn", "restaurant_msisdn", "biker_msisdn",
			"status", "payment_status",
			"subtotal", "delivery_fee", "discount_amount", "final_amount",
			"delivery_km", "tip").
		Values(order.Number, order.RestaurantID, order.BikerID,
			order.CustomerMSISDN, order.RestaurantMSISDN, order.BikerMSISDN,
			order.Status, order.PaymentStatus,
			order.Subtotal, order.DeliveryFee, order.DiscountAmount, order.FinalAmount,
			order.DeliveryKm, order.Tip).
		Suffix("returning id, version, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID, &order.Number, &order.RestaurantID, &order.BikerID,
		&order.CustomerMSISDN, &order.RestaurantMSISDN, &order.BikerMSISDN,
		&order.Status, &order.PaymentStatus,
		&order.Subtotal, &order.DeliveryFee, &order.DiscountAmount, &order.FinalAmount,
		&order.DeliveryKm, &order.Tip, &order.Version,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repository) readOrderBy(ctx context.Context, pred any, forUpdate bool, q querier) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(pred)
	if forUpdate {
		statement = statement.Suffix("for update")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(q.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrderBy(ctx, sq.Eq{"id": orderID}, false, r.db)
}

func (r *Repository) ReadOrderByNumber(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	return r.readOrderBy(ctx, sq.Eq{"number": number}, false, r.db)
}

// UpdateOrder applies fn under a compare-and-swap on the version counter.
// A lost race re-reads the row and reapplies fn; transitions are idempotent,
// so reapplying is safe.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uint64, fn port.OrderUpdateFn) (*domain.Order, error) {
	for i := 0; i < casRetries; i++ {
		order, err := r.ReadOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}

		prev := order.Version
		if err := fn(order); err != nil {
			return nil, err
		}
		order.Version = prev + 1
		order.UpdatedAt = time.Now()

		statement := r.db.QueryBuilder.Update("orders").
			Set("status", order.Status).
			Set("payment_status", order.PaymentStatus).
			Set("biker_id", order.BikerID).
			Set("biker_msisdn", order.BikerMSISDN).
			Set("version", order.Version).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": orderID, "version": prev})

		sql, args, err := statement.ToSql()
		if err != nil {
			return nil, err
		}

		tag, err := r.db.Exec(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 1 {
			return order, nil
		}
	}

	return nil, domain.ErrTooManyConflicts
}

func (r *Repository) CreateBikerEarning(ctx context.Context, earning *domain.BikerEarning) (*domain.BikerEarning, error) {
	statement := r.db.QueryBuilder.Insert("biker_earnings").
		Columns("order_id", "disbursement_id", "base_fee", "distance_fee", "tip", "bonus", "total").
		Values(earning.OrderID, earning.DisbursementID,
			earning.BaseFee, earning.DistanceFee, earning.Tip, earning.Bonus, earning.Total).
		Suffix("on conflict (order_id) do nothing returning id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&earning.ID, &earning.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// earning for this order was already recorded
			return earning, nil
		}
		return nil, err
	}
	return earning, nil
}

// querier lets the same scan helpers run on the pool or inside a pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
