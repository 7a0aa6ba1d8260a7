package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// buildPayouts computes the commission split for a freshly paid order. For a
// cancelled order the collected amount goes back to the customer instead.
// Rows carry deterministic external ids, so rebuilding them for the same
// order can never create a second payout at the provider.
func (s *Service) buildPayouts(ctx context.Context, order *domain.Order) ([]*domain.DisbursementTransaction, *domain.BikerEarning, error) {
	now := time.Now()

	if order.Status == domain.OrderStatusCancelled {
		refund := &domain.DisbursementTransaction{
			OrderID:       order.ID,
			Role:          domain.RecipientCustomer,
			ExternalID:    domain.DisbursementExternalID(order.ID, domain.RecipientCustomer),
			PayeeMSISDN:   order.CustomerMSISDN,
			Amount:        order.FinalAmount,
			Status:        domain.TransactionStatusPending,
			NextAttemptAt: now,
		}
		return []*domain.DisbursementTransaction{refund}, nil, nil
	}

	rate, err := s.rates.Rate(ctx, order.RestaurantID)
	if err != nil {
		return nil, nil, err
	}
	commission, err := order.FinalAmount.Mul(rate)
	if err != nil {
		return nil, nil, err
	}
	commission = commission.Round(2)

	afterCommission, err := order.FinalAmount.Sub(commission)
	if err != nil {
		return nil, nil, err
	}
	restaurantPayout, err := afterCommission.Sub(order.DeliveryFee)
	if err != nil {
		return nil, nil, err
	}
	if restaurantPayout.Sign() < 0 {
		return nil, nil, domain.ErrValidation
	}

	earning, err := s.computeEarning(ctx, order)
	if err != nil {
		return nil, nil, err
	}

	restaurant := &domain.DisbursementTransaction{
		OrderID:       order.ID,
		Role:          domain.RecipientRestaurant,
		ExternalID:    domain.DisbursementExternalID(order.ID, domain.RecipientRestaurant),
		PayeeMSISDN:   order.RestaurantMSISDN,
		Amount:        restaurantPayout,
		Commission:    commission,
		Status:        domain.TransactionStatusPending,
		NextAttemptAt: now,
	}
	biker := &domain.DisbursementTransaction{
		OrderID:       order.ID,
		Role:          domain.RecipientBiker,
		ExternalID:    domain.DisbursementExternalID(order.ID, domain.RecipientBiker),
		PayeeMSISDN:   order.BikerMSISDN,
		Amount:        earning.Total,
		Status:        domain.TransactionStatusPending,
		NextAttemptAt: now,
	}

	return []*domain.DisbursementTransaction{restaurant, biker}, earning, nil
}

// computeEarning derives the biker earning breakdown. The base and distance
// parts together never exceed the delivery fee; a tip rides on top because it
// is funded by the customer, not by the fee.
func (s *Service) computeEarning(ctx context.Context, order *domain.Order) (*domain.BikerEarning, error) {
	base, distance, err := s.fees.Fee(ctx, order.DeliveryKm)
	if err != nil {
		return nil, err
	}

	fromFee, err := base.Add(distance)
	if err != nil {
		return nil, err
	}
	if fromFee.Cmp(order.DeliveryFee) > 0 {
		fromFee = order.DeliveryFee
		if base.Cmp(order.DeliveryFee) > 0 {
			base = order.DeliveryFee
		}
		distance, err = fromFee.Sub(base)
		if err != nil {
			return nil, err
		}
	}

	total, err := fromFee.Add(order.Tip)
	if err != nil {
		return nil, err
	}

	return &domain.BikerEarning{
		OrderID:     order.ID,
		BaseFee:     base,
		DistanceFee: distance,
		Tip:         order.Tip,
		Bonus:       decimal.Zero,
		Total:       total,
	}, nil
}

// afterPaid runs once per order, right after the commit that flipped the
// payment status to PAID. The payouts go out concurrently; each one succeeds
// or fails on its own.
func (s *Service) afterPaid(ctx context.Context, order *domain.Order,
	created []*domain.DisbursementTransaction, earning *domain.BikerEarning) {
	// a collection that settles after cancellation goes straight to refund,
	// nobody should hear "paid" about that order
	if order.Status != domain.OrderStatusCancelled {
		s.notifier.OrderPaid(order.ID)
	}

	var wg sync.WaitGroup
	for _, d := range created {
		wg.Add(1)
		go func(d *domain.DisbursementTransaction) {
			defer wg.Done()
			if err := s.issueDisbursement(ctx, d.ID); err != nil {
				s.logger.Warn("disbursement initiation failed",
					zap.Uint64("order", d.OrderID),
					zap.String("role", string(d.Role)), zap.Error(err))
			}
		}(d)
	}
	wg.Wait()

	if earning != nil {
		for _, d := range created {
			if d.Role == domain.RecipientBiker {
				earning.DisbursementID = d.ID
			}
		}
		if _, err := s.repo.CreateBikerEarning(ctx, earning); err != nil {
			s.logger.Error("record biker earning",
				zap.Uint64("order", order.ID), zap.Error(err))
		}
	}
}

// refundOrder opens the refund path for a paid order that got cancelled.
// Modeled as one more disbursement, back to the customer, for the full
// collected amount.
func (s *Service) refundOrder(ctx context.Context, order *domain.Order) error {
	collection, err := s.repo.ReadSuccessfulCollection(ctx, order.ID)
	if err != nil {
		return err
	}

	refund := &domain.DisbursementTransaction{
		OrderID:       order.ID,
		Role:          domain.RecipientCustomer,
		ExternalID:    domain.DisbursementExternalID(order.ID, domain.RecipientCustomer),
		PayeeMSISDN:   order.CustomerMSISDN,
		Amount:        collection.Amount,
		Status:        domain.TransactionStatusPending,
		NextAttemptAt: time.Now(),
	}
	if err := s.repo.CreateDisbursements(ctx, []*domain.DisbursementTransaction{refund}); err != nil {
		return err
	}
	if refund.ID == 0 {
		// row existed already, refund is in flight
		return nil
	}
	return s.issueDisbursement(ctx, refund.ID)
}

// issueDisbursement submits one payout to the provider and records the
// issued reference. Transient gateway failures push the row back on the
// durable retry queue; validation failures go straight to manual review.
func (s *Service) issueDisbursement(ctx context.Context, id uint64) error {
	d, err := s.repo.ReadDisbursement(ctx, id)
	if err != nil {
		return err
	}
	if d.Status == domain.TransactionStatusSuccessful ||
		d.Status == domain.TransactionStatusManualReview {
		return nil
	}

	ref, err := s.gateway.RequestDisbursement(ctx, port.DisbursementRequest{
		Amount:      d.Amount,
		Currency:    s.opts.Currency,
		PayeeMSISDN: d.PayeeMSISDN,
		ExternalID:  d.ExternalID,
		CallbackURL: s.opts.CallbackURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.moveToManualReview(ctx, d.ID, err.Error())
			return err
		}
		s.scheduleRetry(ctx, d.ID, err.Error())
		return err
	}

	_, err = s.repo.UpdateDisbursement(ctx, d.ID, func(d *domain.DisbursementTransaction) error {
		d.ProviderRef = ref
		d.Status = domain.TransactionStatusPending
		return nil
	})
	return err
}

// RetryDisbursement re-issues a payout from the durable retry queue.
func (s *Service) RetryDisbursement(ctx context.Context, disbursementID uint64) error {
	return s.issueDisbursement(ctx, disbursementID)
}

func (s *Service) scheduleRetry(ctx context.Context, id uint64, reason string) {
	var review bool
	d, err := s.repo.UpdateDisbursement(ctx, id, func(d *domain.DisbursementTransaction) error {
		d.RetryCount++
		d.FailureReason = reason
		if d.RetryCount >= s.opts.MaxDisbursementRetries {
			d.Status = domain.TransactionStatusManualReview
			review = true
			return nil
		}
		d.NextAttemptAt = time.Now().Add(s.retryDelay(d.RetryCount))
		return nil
	})
	if err != nil {
		s.logger.Error("schedule disbursement retry", zap.Uint64("id", id), zap.Error(err))
		return
	}
	if review {
		s.logger.Error("ALERT: disbursement moved to manual review",
			zap.Uint64("order", d.OrderID), zap.String("role", string(d.Role)),
			zap.String("reason", reason))
		s.notifier.DisbursementFinal(d.OrderID, d.Role, domain.TransactionStatusManualReview)
	}
}

func (s *Service) moveToManualReview(ctx context.Context, id uint64, reason string) {
	d, err := s.repo.UpdateDisbursement(ctx, id, func(d *domain.DisbursementTransaction) error {
		d.Status = domain.TransactionStatusManualReview
		d.FailureReason = reason
		return nil
	})
	if err != nil {
		s.logger.Error("move disbursement to manual review", zap.Uint64("id", id), zap.Error(err))
		return
	}
	s.logger.Error("ALERT: disbursement moved to manual review",
		zap.Uint64("order", d.OrderID), zap.String("role", string(d.Role)),
		zap.String("reason", reason))
	s.notifier.DisbursementFinal(d.OrderID, d.Role, domain.TransactionStatusManualReview)
}

// retryDelay doubles per attempt: base, 2x base, 4x base.
func (s *Service) retryDelay(retryCount int) time.Duration {
	delay := s.opts.RetryBaseDelay
	for i := 1; i < retryCount; i++ {
		delay *= 2
	}
	return delay
}
