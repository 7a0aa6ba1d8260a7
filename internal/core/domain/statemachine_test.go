package domain_test

import (
	"testing"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Transition(t *testing.T) {
	type transitionTest struct {
		name      string
		from      domain.OrderStatus
		event     domain.OrderEvent
		expStatus domain.OrderStatus
		expChange bool
		expError  error
	}

	tests := []transitionTest{
		{
			name:      "confirm placed order",
			from:      domain.OrderStatusPlaced,
			event:     domain.OrderEventConfirm,
			expStatus: domain.OrderStatusConfirmed,
			expChange: true,
		},
		{
			name:      "full happy path step",
			from:      domain.OrderStatusPickedUp,
			event:     domain.OrderEventDeliver,
			expStatus: domain.OrderStatusDelivered,
			expChange: true,
		},
		{
			name:      "repeated event is a no-op",
			from:      domain.OrderStatusConfirmed,
			event:     domain.OrderEventConfirm,
			expStatus: domain.OrderStatusConfirmed,
			expChange: false,
		},
		{
			name:      "skipping a step is illegal",
			from:      domain.OrderStatusPlaced,
			event:     domain.OrderEventPickUp,
			expStatus: domain.OrderStatusPlaced,
			expError:  domain.ErrInvalidTransition,
		},
		{
			name:      "cancel before pickup",
			from:      domain.OrderStatusPreparing,
			event:     domain.OrderEventCancel,
			expStatus: domain.OrderStatusCancelled,
			expChange: true,
		},
		{
			name:      "cancel after pickup is illegal",
			from:      domain.OrderStatusPickedUp,
			event:     domain.OrderEventCancel,
			expStatus: domain.OrderStatusPickedUp,
			expError:  domain.ErrInvalidTransition,
		},
		{
			name:      "cancel a delivered order is illegal",
			from:      domain.OrderStatusDelivered,
			event:     domain.OrderEventCancel,
			expStatus: domain.OrderStatusDelivered,
			expError:  domain.ErrInvalidTransition,
		},
		{
			name:      "unknown event",
			from:      domain.OrderStatusPlaced,
			event:     domain.OrderEvent("TELEPORT"),
			expStatus: domain.OrderStatusPlaced,
			expError:  domain.ErrInvalidTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := domain.Order{Status: test.from}

			changed, err := order.Transition(test.event)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expChange, changed)
			assert.Equal(t, test.expStatus, order.Status)
		})
	}
}

func TestOrder_TransitionPayment(t *testing.T) {
	type paymentTest struct {
		name      string
		order     domain.Order
		target    domain.PaymentStatus
		expStatus domain.PaymentStatus
		expChange bool
		expError  error
	}

	tests := []paymentTest{
		{
			name:      "pending to paid",
			order:     domain.Order{Status: domain.OrderStatusPlaced, PaymentStatus: domain.PaymentStatusPending},
			target:    domain.PaymentStatusPaid,
			expStatus: domain.PaymentStatusPaid,
			expChange: true,
		},
		{
			name:      "pending to failed",
			order:     domain.Order{Status: domain.OrderStatusPlaced, PaymentStatus: domain.PaymentStatusPending},
			target:    domain.PaymentStatusFailed,
			expStatus: domain.PaymentStatusFailed,
			expChange: true,
		},
		{
			name:      "same status is a no-op",
			order:     domain.Order{Status: domain.OrderStatusPlaced, PaymentStatus: domain.PaymentStatusPaid},
			target:    domain.PaymentStatusPaid,
			expStatus: domain.PaymentStatusPaid,
			expChange: false,
		},
		{
			name:      "failed cannot become paid directly",
			order:     domain.Order{Status: domain.OrderStatusPlaced, PaymentStatus: domain.PaymentStatusFailed},
			target:    domain.PaymentStatusPaid,
			expStatus: domain.PaymentStatusFailed,
			expError:  domain.ErrInvalidTransition,
		},
		{
			name:      "refund requires cancelled order",
			order:     domain.Order{Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid},
			target:    domain.PaymentStatusRefunded,
			expStatus: domain.PaymentStatusPaid,
			expError:  domain.ErrInvalidTransition,
		},
		{
			name:      "refund on cancelled order",
			order:     domain.Order{Status: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusPaid},
			target:    domain.PaymentStatusRefunded,
			expStatus: domain.PaymentStatusRefunded,
			expChange: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			changed, err := test.order.TransitionPayment(test.target)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expChange, changed)
			assert.Equal(t, test.expStatus, test.order.PaymentStatus)
		})
	}
}

func TestOrder_ValidateBreakdown(t *testing.T) {
	type breakdownTest struct {
		name     string
		order    domain.Order
		expError error
	}

	tests := []breakdownTest{
		{
			name: "consistent breakdown",
			order: domain.Order{
				Subtotal:       decimal.MustParse("900"),
				DeliveryFee:    decimal.MustParse("150"),
				DiscountAmount: decimal.MustParse("50"),
				FinalAmount:    decimal.MustParse("1000"),
			},
		},
		{
			name: "fully discounted order",
			order: domain.Order{
				Subtotal:       decimal.MustParse("100"),
				DeliveryFee:    decimal.Zero,
				DiscountAmount: decimal.MustParse("100"),
				FinalAmount:    decimal.Zero,
			},
		},
		{
			name: "final amount off by one",
			order: domain.Order{
				Subtotal:       decimal.MustParse("900"),
				DeliveryFee:    decimal.MustParse("150"),
				DiscountAmount: decimal.MustParse("50"),
				FinalAmount:    decimal.MustParse("999"),
			},
			expError: domain.ErrValidation,
		},
		{
			name: "discount exceeds total",
			order: domain.Order{
				Subtotal:       decimal.MustParse("100"),
				DeliveryFee:    decimal.Zero,
				DiscountAmount: decimal.MustParse("150"),
				FinalAmount:    decimal.MustParse("-50"),
			},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expError, test.order.ValidateBreakdown())
		})
	}
}

func TestSanitizeMSISDN(t *testing.T) {
	type msisdnTest struct {
		name     string
		input    string
		expected string
		expError error
	}

	tests := []msisdnTest{
		{name: "local format", input: "0712345678", expected: "254712345678"},
		{name: "international format", input: "254712345678", expected: "254712345678"},
		{name: "plus prefix", input: "+254712345678", expected: "254712345678"},
		{name: "no leading zero", input: "712345678", expected: "254712345678"},
		{name: "spaces and dashes", input: "0712-345 678", expected: "254712345678"},
		{name: "airtel prefix", input: "0101234567", expected: "254101234567"},
		{name: "too short", input: "07123", expError: domain.ErrValidation},
		{name: "foreign number", input: "+15551234567", expError: domain.ErrValidation},
		{name: "empty", input: "", expError: domain.ErrValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := domain.SanitizeMSISDN(test.input)
			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestDisbursementExternalID(t *testing.T) {
	assert.Equal(t, "ORDER-42-RESTAURANT",
		domain.DisbursementExternalID(42, domain.RecipientRestaurant))
	assert.Equal(t, "ORDER-42-BIKER",
		domain.DisbursementExternalID(42, domain.RecipientBiker))
	// same inputs always derive the same key
	assert.Equal(t,
		domain.DisbursementExternalID(7, domain.RecipientCustomer),
		domain.DisbursementExternalID(7, domain.RecipientCustomer))
}
