package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusPickedUp       OrderStatus = "PICKED_UP"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusExpired  PaymentStatus = "EXPIRED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type OrderNumber string

type Order struct {
	ID               uint64
	Number           OrderNumber
	RestaurantID     uint64
	BikerID          uint64
	CustomerMSISDN   string
	RestaurantMSISDN string
	BikerMSISDN      string
	Status           OrderStatus
	PaymentStatus    PaymentStatus
	Subtotal         decimal.Decimal
	DeliveryFee      decimal.Decimal
	DiscountAmount   decimal.Decimal
	FinalAmount      decimal.Decimal
	DeliveryKm       float64
	Tip              decimal.Decimal
	Version          uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidateBreakdown checks the monetary invariant
// finalAmount = subtotal + deliveryFee - discountAmount, finalAmount >= 0.
func (o *Order) ValidateBreakdown() error {
	sum, err := o.Subtotal.Add(o.DeliveryFee)
	if err != nil {
		return ErrValidation
	}
	expected, err := sum.Sub(o.DiscountAmount)
	if err != nil {
		return ErrValidation
	}
	if o.FinalAmount.Cmp(expected) != 0 || o.FinalAmount.Sign() < 0 {
		return ErrValidation
	}
	return nil
}
