package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending      TransactionStatus = "PENDING"
	TransactionStatusSuccessful   TransactionStatus = "SUCCESSFUL"
	TransactionStatusFailed       TransactionStatus = "FAILED"
	TransactionStatusExpired      TransactionStatus = "EXPIRED"
	TransactionStatusManualReview TransactionStatus = "MANUAL_REVIEW"
)

// Terminal reports whether no further provider result may change the status.
func (s TransactionStatus) Terminal() bool {
	return s != TransactionStatusPending
}

type RecipientRole string

const (
	RecipientRestaurant RecipientRole = "RESTAURANT"
	RecipientBiker      RecipientRole = "BIKER"
	RecipientCustomer   RecipientRole = "CUSTOMER"
)

// PaymentTransaction is one collection attempt against the customer.
// Retried collections are new rows; at most one row per order is PENDING.
type PaymentTransaction struct {
	ID          uint64
	OrderID     uint64
	ExternalID  string
	ProviderRef string
	Amount      decimal.Decimal
	Currency    string
	Status      TransactionStatus
	RawPayload  []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisbursementTransaction is one payout obligation created after a
// successful collection. Retry state is persisted on the row so a restart
// does not lose it.
type DisbursementTransaction struct {
	ID            uint64
	OrderID       uint64
	Role          RecipientRole
	ExternalID    string
	ProviderRef   string
	PayeeMSISDN   string
	Amount        decimal.Decimal
	Commission    decimal.Decimal
	Status        TransactionStatus
	RetryCount    int
	NextAttemptAt time.Time
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisbursementExternalID derives the deterministic idempotency key for a
// payout. Re-triggering the engine for the same order and role always
// produces the same key, so the provider can deduplicate.
func DisbursementExternalID(orderID uint64, role RecipientRole) string {
	return fmt.Sprintf("ORDER-%d-%s", orderID, role)
}
