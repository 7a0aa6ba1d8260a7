package http

import (
	"net/http"
	"time"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutRequest struct {
	RestaurantID     uint64  `json:"restaurant_id" binding:"required"`
	BikerID          uint64  `json:"biker_id"`
	CustomerMSISDN   string  `json:"customer_msisdn" binding:"required"`
	RestaurantMSISDN string  `json:"restaurant_msisdn" binding:"required"`
	BikerMSISDN      string  `json:"biker_msisdn"`
	Subtotal         float64 `json:"subtotal" binding:"required"`
	DeliveryFee      float64 `json:"delivery_fee"`
	DiscountAmount   float64 `json:"discount_amount"`
	FinalAmount      float64 `json:"final_amount" binding:"required"`
	DeliveryKm       float64 `json:"delivery_km"`
	Tip              float64 `json:"tip"`
}

type orderResponse struct {
	Number         string          `json:"number"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"payment_status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func orderToResponse(o *domain.Order) orderResponse {
	return orderResponse{
		Number:         string(o.Number),
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		DiscountAmount: o.DiscountAmount,
		FinalAmount:    o.FinalAmount,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	req := checkoutRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := checkoutToOrder(&req)
	if err != nil {
		oh.handleError(ctx, domain.ErrValidation)
		return
	}

	created, err := oh.service.Checkout(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderToResponse(created), http.StatusAccepted)
}

func checkoutToOrder(req *checkoutRequest) (*domain.Order, error) {
	subtotal, err := decimal.NewFromFloat64(req.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := decimal.NewFromFloat64(req.DeliveryFee)
	if err != nil {
		return nil, err
	}
	discount, err := decimal.NewFromFloat64(req.DiscountAmount)
	if err != nil {
		return nil, err
	}
	finalAmount, err := decimal.NewFromFloat64(req.FinalAmount)
	if err != nil {
		return nil, err
	}
	tip, err := decimal.NewFromFloat64(req.Tip)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		RestaurantID:     req.RestaurantID,
		BikerID:          req.BikerID,
		CustomerMSISDN:   req.CustomerMSISDN,
		RestaurantMSISDN: req.RestaurantMSISDN,
		BikerMSISDN:      req.BikerMSISDN,
		Subtotal:         subtotal,
		DeliveryFee:      deliveryFee,
		DiscountAmount:   discount,
		FinalAmount:      finalAmount,
		DeliveryKm:       req.DeliveryKm,
		Tip:              tip,
	}, nil
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	number := domain.OrderNumber(ctx.Param("number"))

	order, err := oh.service.GetOrder(ctx, number)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResponse(order))
}

type orderEventRequest struct {
	Event string `json:"event" binding:"required"`
}

func (oh *OrderHandler) ApplyEvent(ctx *gin.Context) {
	number := domain.OrderNumber(ctx.Param("number"))

	req := orderEventRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.ApplyOrderEvent(ctx, number, domain.OrderEvent(req.Event))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResponse(order))
}

func (oh *OrderHandler) RetryPayment(ctx *gin.Context) {
	number := domain.OrderNumber(ctx.Param("number"))

	order, err := oh.service.RetryCollection(ctx, number)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderToResponse(order), http.StatusAccepted)
}
