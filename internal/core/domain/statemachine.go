package domain

type OrderEvent string

const (
	OrderEventConfirm OrderEvent = "CONFIRM"
	OrderEventPrepare OrderEvent = "PREPARE"
	OrderEventReady   OrderEvent = "READY"
	OrderEventPickUp  OrderEvent = "PICK_UP"
	OrderEventDeliver OrderEvent = "DELIVER"
	OrderEventCancel  OrderEvent = "CANCEL"
)

// orderTransitions is the fixed transition table for the order axis.
// CANCELLED is reachable from any state before PICKED_UP.
var orderTransitions = map[OrderStatus]map[OrderEvent]OrderStatus{
	OrderStatusPlaced: {
		OrderEventConfirm: OrderStatusConfirmed,
		OrderEventCancel:  OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderEventPrepare: OrderStatusPreparing,
		OrderEventCancel:  OrderStatusCancelled,
	},
	OrderStatusPreparing: {
		OrderEventReady:  OrderStatusReadyForPickup,
		OrderEventCancel: OrderStatusCancelled,
	},
	OrderStatusReadyForPickup: {
		OrderEventPickUp: OrderStatusPickedUp,
		OrderEventCancel: OrderStatusCancelled,
	},
	OrderStatusPickedUp: {
		OrderEventDeliver: OrderStatusDelivered,
	},
}

// eventTargets maps every event to its target state, used for the
// idempotency check: re-applying an event that already took effect is a no-op.
var eventTargets = map[OrderEvent]OrderStatus{
	OrderEventConfirm: OrderStatusConfirmed,
	OrderEventPrepare: OrderStatusPreparing,
	OrderEventReady:   OrderStatusReadyForPickup,
	OrderEventPickUp:  OrderStatusPickedUp,
	OrderEventDeliver: OrderStatusDelivered,
	OrderEventCancel:  OrderStatusCancelled,
}

var paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentStatusPending: {
		PaymentStatusPaid:    true,
		PaymentStatusFailed:  true,
		PaymentStatusExpired: true,
	},
	PaymentStatusPaid: {
		PaymentStatusRefunded: true,
	},
}

// Transition applies event to the order's status. Unknown or illegal events
// return ErrInvalidTransition and leave the order untouched. Re-applying an
// event whose target state is already current returns false with no error.
// The boolean reports whether the order actually changed.
func (o *Order) Transition(event OrderEvent) (bool, error) {
	target, ok := eventTargets[event]
	if !ok {
		return false, ErrInvalidTransition
	}
	if o.Status == target {
		return false, nil
	}
	next, ok := orderTransitions[o.Status][event]
	if !ok {
		return false, ErrInvalidTransition
	}
	o.Status = next
	return true, nil
}

// TransitionPayment moves the payment axis. REFUNDED is legal only for a
// cancelled order. Setting the current status again is an idempotent no-op.
func (o *Order) TransitionPayment(target PaymentStatus) (bool, error) {
	if o.PaymentStatus == target {
		return false, nil
	}
	if !paymentTransitions[o.PaymentStatus][target] {
		return false, ErrInvalidTransition
	}
	if target == PaymentStatusRefunded && o.Status != OrderStatusCancelled {
		return false, ErrInvalidTransition
	}
	o.PaymentStatus = target
	return true, nil
}
