package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var collectionColumns = []string{
	"id", "order_id", "external_id", "provider_ref",
	"amount", "currency", "status", "raw_payload",
	"created_at", "updated_at",
}

var disbursementColumns = []string{
	"id", "order_id", "role", "external_id", "provider_ref", "payee_msisdn",
	"amount", "commission", "status", "retry_count", "next_attempt_at",
	"failure_reason", "created_at", "updated_at",
}

func scanCollection(row pgx.Row) (*domain.PaymentTransaction, error) {
	tx := domain.PaymentTransaction{}
	err := row.Scan(
		&tx.ID, &tx.OrderID, &tx.ExternalID, &tx.ProviderRef,
		&tx.Amount, &tx.Currency, &tx.Status, &tx.RawPayload,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func scanDisbursement(row pgx.Row) (*domain.DisbursementTransaction, error) {
	d := domain.DisbursementTransaction{}
	err := row.Scan(
		&d.ID, &d.OrderID, &d.Role, &d.ExternalID, &d.ProviderRef, &d.PayeeMSISDN,
		&d.Amount, &d.Commission, &d.Status, &d.RetryCount, &d.NextAttemptAt,
		&d.FailureReason, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *Repository) CreateCollection(ctx context.Context, tx *domain.PaymentTransaction) (*domain.PaymentTransaction, error) {
	statement := r.db.QueryBuilder.Insert("payment_transactions").
		Columns("order_id", "external_id", "provider_ref", "amount", "currency", "status").
		Values(tx.OrderID, tx.ExternalID, tx.ProviderRef, tx.Amount, tx.Currency, tx.Status).
		Suffix("returning id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			// partial unique index keeps at most one PENDING collection per order
			if pgErr.ConstraintName == "payment_transactions_one_pending_idx" {
				return nil, domain.ErrCollectionInFlight
			}
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return tx, nil
}

func (r *Repository) readCollectionBy(ctx context.Context, pred any, forUpdate bool, q querier) (*domain.PaymentTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(collectionColumns...).
		From("payment_transactions").
		Where(pred)
	if forUpdate {
		statement = statement.Suffix("for update")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanCollection(q.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadCollectionByRef(ctx context.Context, providerRef string) (*domain.PaymentTransaction, error) {
	if providerRef == "" {
		return nil, domain.ErrDataNotFound
	}
	return r.readCollectionBy(ctx, sq.Eq{"provider_ref": providerRef}, false, r.db)
}

func (r *Repository) ReadSuccessfulCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error) {
	return r.readCollectionBy(ctx,
		sq.Eq{"order_id": orderID, "status": domain.TransactionStatusSuccessful}, false, r.db)
}

func (r *Repository) ReadActiveCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error) {
	return r.readCollectionBy(ctx,
		sq.Eq{"order_id": orderID, "status": domain.TransactionStatusPending}, false, r.db)
}

func (r *Repository) ReadRetryableCollection(ctx context.Context, orderID uint64) (*domain.PaymentTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(collectionColumns...).
		From("payment_transactions").
		Where(sq.Eq{
			"order_id":     orderID,
			"status":       domain.TransactionStatusFailed,
			"provider_ref": "",
		}).
		OrderBy("id desc").
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanCollection(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) UpdateCollection(ctx context.Context, txID uint64, fn port.CollectionUpdateFn) (*domain.PaymentTransaction, error) {
	var result *domain.PaymentTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		ptx, err := r.readCollectionBy(ctx, sq.Eq{"id": txID}, true, tx)
		if err != nil {
			return err
		}
		if err := fn(ptx); err != nil {
			return err
		}
		if err := r.persistCollection(ctx, tx, ptx); err != nil {
			return err
		}
		result = ptx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyCollectionResult is the serialization point shared by the webhook
// ingestion layer and the reconciliation job: the collection row and its
// order are locked for the duration of fn, and any payout rows fn returns
// are inserted before the same commit. The external id unique key makes the
// insert idempotent under replays.
func (r *Repository) ApplyCollectionResult(ctx context.Context, providerRef string, fn port.CollectionApplyFn) (*domain.PaymentTransaction, error) {
	if providerRef == "" {
		return nil, domain.ErrDataNotFound
	}

	var result *domain.PaymentTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		ptx, err := r.readCollectionBy(ctx, sq.Eq{"provider_ref": providerRef}, true, tx)
		if err != nil {
			return err
		}
		order, err := r.readOrderBy(ctx, sq.Eq{"id": ptx.OrderID}, true, tx)
		if err != nil {
			return err
		}

		disbursements, err := fn(ptx, order)
		if err != nil {
			return err
		}

		if err := r.persistCollection(ctx, tx, ptx); err != nil {
			return err
		}
		if err := r.persistOrderLocked(ctx, tx, order); err != nil {
			return err
		}
		if err := r.insertDisbursements(ctx, tx, disbursements); err != nil {
			return err
		}
		result = ptx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) ListPendingCollections(ctx context.Context, pendingSince time.Time) ([]*domain.PaymentTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(collectionColumns...).
		From("payment_transactions").
		Where(sq.Eq{"status": domain.TransactionStatusPending}).
		Where(sq.NotEq{"provider_ref": ""}).
		Where(sq.Lt{"updated_at": pendingSince})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.PaymentTransaction, 0)
	for rows.Next() {
		tx, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}

func (r *Repository) persistCollection(ctx context.Context, q executor, tx *domain.PaymentTransaction) error {
	statement := r.db.QueryBuilder.Update("payment_transactions").
		Set("provider_ref", tx.ProviderRef).
		Set("status", tx.Status).
		Set("raw_payload", tx.RawPayload).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": tx.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

// persistOrderLocked writes an order already held under a row lock, so the
// version bump needs no compare-and-swap.
func (r *Repository) persistOrderLocked(ctx context.Context, q executor, order *domain.Order) error {
	order.Version++
	order.UpdatedAt = time.Now()

	statement := r.db.QueryBuilder.Update("orders").
		Set("status", order.Status).
		Set("payment_status", order.PaymentStatus).
		Set("version", order.Version).
		Set("updated_at", order.UpdatedAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) CreateDisbursements(ctx context.Context, list []*domain.DisbursementTransaction) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return r.insertDisbursements(ctx, tx, list)
	})
}

func (r *Repository) insertDisbursements(ctx context.Context, q querier, list []*domain.DisbursementTransaction) error {
	for _, d := range list {
		statement := r.db.QueryBuilder.Insert("disbursement_transactions").
			Columns("order_id", "role", "external_id", "provider_ref", "payee_msisdn",
				"amount", "commission", "status", "retry_count", "next_attempt_at", "failure_reason").
			Values(d.OrderID, d.Role, d.ExternalID, d.ProviderRef, d.PayeeMSISDN,
				d.Amount, d.Commission, d.Status, d.RetryCount, d.NextAttemptAt, d.FailureReason).
			Suffix("on conflict (external_id) do nothing returning id, created_at, updated_at")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		err = q.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			// row already exists for this external id, leave ID zero
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) readDisbursementBy(ctx context.Context, pred any, forUpdate bool, q querier) (*domain.DisbursementTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(disbursementColumns...).
		From("disbursement_transactions").
		Where(pred)
	if forUpdate {
		statement = statement.Suffix("for update")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanDisbursement(q.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadDisbursement(ctx context.Context, id uint64) (*domain.DisbursementTransaction, error) {
	return r.readDisbursementBy(ctx, sq.Eq{"id": id}, false, r.db)
}

func (r *Repository) ListDisbursementsByOrder(ctx context.Context, orderID uint64) ([]*domain.DisbursementTransaction, error) {
	return r.listDisbursements(ctx, sq.Eq{"order_id": orderID})
}

func (r *Repository) UpdateDisbursement(ctx context.Context, id uint64, fn port.DisbursementUpdateFn) (*domain.DisbursementTransaction, error) {
	var result *domain.DisbursementTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		d, err := r.readDisbursementBy(ctx, sq.Eq{"id": id}, true, tx)
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
		if err := r.persistDisbursement(ctx, tx, d); err != nil {
			return err
		}
		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyDisbursementResult mirrors ApplyCollectionResult for payout callbacks.
func (r *Repository) ApplyDisbursementResult(ctx context.Context, providerRef string, fn port.DisbursementApplyFn) (*domain.DisbursementTransaction, error) {
	if providerRef == "" {
		return nil, domain.ErrDataNotFound
	}

	var result *domain.DisbursementTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		d, err := r.readDisbursementBy(ctx, sq.Eq{"provider_ref": providerRef}, true, tx)
		if err != nil {
			return err
		}
		order, err := r.readOrderBy(ctx, sq.Eq{"id": d.OrderID}, true, tx)
		if err != nil {
			return err
		}

		if err := fn(d, order); err != nil {
			return err
		}

		if err := r.persistDisbursement(ctx, tx, d); err != nil {
			return err
		}
		if err := r.persistOrderLocked(ctx, tx, order); err != nil {
			return err
		}
		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) persistDisbursement(ctx context.Context, q executor, d *domain.DisbursementTransaction) error {
	statement := r.db.QueryBuilder.Update("disbursement_transactions").
		Set("provider_ref", d.ProviderRef).
		Set("status", d.Status).
		Set("retry_count", d.RetryCount).
		Set("next_attempt_at", d.NextAttemptAt).
		Set("failure_reason", d.FailureReason).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": d.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListPendingDisbursements(ctx context.Context, pendingSince time.Time) ([]*domain.DisbursementTransaction, error) {
	return r.listDisbursements(ctx, sq.And{
		sq.Eq{"status": domain.TransactionStatusPending},
		sq.NotEq{"provider_ref": ""},
		sq.Lt{"updated_at": pendingSince},
	})
}

// ListDueDisbursementRetries selects the durable retry queue: payouts that
// failed at the provider, plus payouts that were never successfully issued.
func (r *Repository) ListDueDisbursementRetries(ctx context.Context, now time.Time) ([]*domain.DisbursementTransaction, error) {
	return r.listDisbursements(ctx, sq.And{
		sq.Or{
			sq.Eq{"status": domain.TransactionStatusFailed},
			sq.And{
				sq.Eq{"status": domain.TransactionStatusPending},
				sq.Eq{"provider_ref": ""},
			},
		},
		sq.LtOrEq{"next_attempt_at": now},
	})
}

func (r *Repository) ListManualReviewDisbursements(ctx context.Context) ([]*domain.DisbursementTransaction, error) {
	return r.listDisbursements(ctx, sq.Eq{"status": domain.TransactionStatusManualReview})
}

func (r *Repository) listDisbursements(ctx context.Context, pred any) ([]*domain.DisbursementTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(disbursementColumns...).
		From("disbursement_transactions").
		Where(pred).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.DisbursementTransaction, 0)
	for rows.Next() {
		d, err := scanDisbursement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// executor is satisfied by both the pool and pgx.Tx.
type executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
