package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type WebhookHandler struct {
	Handler
	service port.Service
}

func NewWebhookHandler(service port.Service, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type callbackPayload struct {
	ReferenceID            string `json:"referenceId"`
	Status                 string `json:"status"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	FinancialTransactionID string `json:"financialTransactionId"`
	Reason                 string `json:"reason"`
}

// Callback is the single entry point for all provider callbacks: collection
// confirmations, disbursement confirmations and refund confirmations. Every
// authenticated, parseable payload gets a 2xx so the provider stops
// retrying, whatever the business outcome was.
func (wh *WebhookHandler) Callback(ctx *gin.Context) {
	raw := getRawBody(ctx)

	payload := callbackPayload{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		wh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	if payload.ReferenceID == "" || payload.Status == "" {
		wh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	amount := decimal.Zero
	if payload.Amount != "" {
		var err error
		amount, err = decimal.Parse(payload.Amount)
		if err != nil {
			wh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
	}

	result := &port.ProviderResult{
		ProviderRef:   payload.ReferenceID,
		Status:        callbackStatus(payload.Status),
		Amount:        amount,
		Currency:      payload.Currency,
		FinancialTxID: payload.FinancialTransactionID,
		FailureReason: payload.Reason,
		RawPayload:    raw,
	}

	err := wh.service.ApplyProviderResult(ctx, result)
	switch {
	case err == nil:
		wh.handleSuccess(ctx, nil)
	case errors.Is(err, domain.ErrDataNotFound):
		// a callback for a reference this system never issued: not an
		// error worth surfacing to the provider
		wh.logger.Warn("callback for unknown reference",
			zap.String("referenceId", payload.ReferenceID))
		wh.handleSuccess(ctx, nil)
	case errors.Is(err, domain.ErrConflictingTerminalStatus):
		// already escalated inside the service, still 2xx to stop retries
		wh.handleSuccess(ctx, nil)
	default:
		wh.logger.Error("callback processing failed",
			zap.String("referenceId", payload.ReferenceID), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
	}
}

func callbackStatus(status string) domain.TransactionStatus {
	switch status {
	case "SUCCESSFUL":
		return domain.TransactionStatusSuccessful
	case "FAILED", "REJECTED":
		return domain.TransactionStatusFailed
	case "EXPIRED", "TIMEOUT":
		return domain.TransactionStatusExpired
	default:
		return domain.TransactionStatusPending
	}
}
