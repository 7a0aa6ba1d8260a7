package http

import (
	"time"

	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type AdminHandler struct {
	Handler
	service port.Service
}

func NewAdminHandler(service port.Service, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type manualReviewResponse struct {
	OrderID       uint64          `json:"order_id"`
	Role          string          `json:"role"`
	ExternalID    string          `json:"external_id"`
	Amount        decimal.Decimal `json:"amount"`
	RetryCount    int             `json:"retry_count"`
	FailureReason string          `json:"failure_reason"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ManualReviewList surfaces payouts that exhausted their retries and now
// wait for an operator.
func (ah *AdminHandler) ManualReviewList(ctx *gin.Context) {
	list, err := ah.service.ListManualReviewDisbursements(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]manualReviewResponse, 0, len(list))
	for _, d := range list {
		result = append(result, manualReviewResponse{
			OrderID:       d.OrderID,
			Role:          string(d.Role),
			ExternalID:    d.ExternalID,
			Amount:        d.Amount,
			RetryCount:    d.RetryCount,
			FailureReason: d.FailureReason,
			UpdatedAt:     d.UpdatedAt,
		})
	}

	ah.handleSuccess(ctx, result)
}
