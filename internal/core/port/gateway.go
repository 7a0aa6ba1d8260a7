package port

import (
	"context"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/govalues/decimal"
)

type CollectionRequest struct {
	Amount      decimal.Decimal
	Currency    string
	PayerMSISDN string
	ExternalID  string
	CallbackURL string
}

type DisbursementRequest struct {
	Amount      decimal.Decimal
	Currency    string
	PayeeMSISDN string
	ExternalID  string
	CallbackURL string
}

// ProviderResult is a provider-reported outcome for one transaction,
// whether it arrived by webhook or by an active status query.
type ProviderResult struct {
	ProviderRef   string
	Status        domain.TransactionStatus
	Amount        decimal.Decimal
	Currency      string
	FinancialTxID string
	FailureReason string
	RawPayload    []byte
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// RequestCollection asks the provider to pull funds from the payer.
	// A duplicate external id resolves to the already issued reference.
	RequestCollection(ctx context.Context, req CollectionRequest) (string, error)
	// RequestDisbursement asks the provider to push funds to the payee.
	// Same duplicate semantics as RequestCollection.
	RequestDisbursement(ctx context.Context, req DisbursementRequest) (string, error)
	// QueryStatus polls the provider for a reference. Only the reconciliation
	// job calls this; a webhook, when it arrives, wins.
	QueryStatus(ctx context.Context, providerRef string) (*ProviderResult, error)
}
