package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errAlreadyApplied marks a provider result that matches an already recorded
// terminal status. The repository rolls the apply back and the caller treats
// it as success.
var errAlreadyApplied = errors.New("provider result already applied")

type Options struct {
	Currency               string
	CallbackURL            string
	MaxDisbursementRetries int
	RetryBaseDelay         time.Duration
}

type Service struct {
	repo     port.Repository
	gateway  port.PaymentGateway
	rates    port.CommissionRates
	fees     port.CourierFees
	notifier port.Notifier
	opts     Options
	logger   *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	rates port.CommissionRates, fees port.CourierFees, notifier port.Notifier,
	opts Options, logger *zap.Logger) (*Service, error) {
	if opts.MaxDisbursementRetries == 0 {
		opts.MaxDisbursementRetries = 3
	}
	if opts.RetryBaseDelay == 0 {
		opts.RetryBaseDelay = 30 * time.Second
	}
	return &Service{
		repo:     repo,
		gateway:  gateway,
		rates:    rates,
		fees:     fees,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
	}, nil
}

// Checkout creates the order with its first collection attempt and asks the
// provider to pull the final amount from the customer. A gateway outage does
// not fail the checkout: the collection row is marked FAILED and the client
// retries through RetryCollection.
func (s *Service) Checkout(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := order.ValidateBreakdown(); err != nil {
		return nil, err
	}
	msisdn, err := domain.SanitizeMSISDN(order.CustomerMSISDN)
	if err != nil {
		return nil, err
	}
	order.CustomerMSISDN = msisdn

	order.Number = newOrderNumber()
	order.Status = domain.OrderStatusPlaced
	order.PaymentStatus = domain.PaymentStatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	if err := s.initiateCollection(ctx, newOrder); err != nil {
		s.logger.Warn("collection initiation failed on checkout",
			zap.String("order", string(newOrder.Number)), zap.Error(err))
	}

	return newOrder, nil
}

// RetryCollection opens a fresh collection attempt for an order whose
// previous attempt failed or expired. Historical attempts stay as rows.
func (s *Service) RetryCollection(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	order, err := s.repo.ReadOrderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == domain.PaymentStatusPaid {
		return order, nil
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, domain.ErrInvalidTransition
	}

	_, err = s.repo.ReadActiveCollection(ctx, order.ID)
	if err == nil {
		return nil, domain.ErrCollectionInFlight
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		return nil, err
	}

	if err := s.initiateCollection(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) initiateCollection(ctx context.Context, order *domain.Order) error {
	tx, err := s.openCollection(ctx, order)
	if err != nil {
		s.logger.Error("open collection attempt", zap.Error(err))
		return err
	}

	ref, err := s.gateway.RequestCollection(ctx, port.CollectionRequest{
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		PayerMSISDN: order.CustomerMSISDN,
		ExternalID:  tx.ExternalID,
		CallbackURL: s.opts.CallbackURL,
	})
	if err != nil {
		if _, uerr := s.repo.UpdateCollection(ctx, tx.ID, func(t *domain.PaymentTransaction) error {
			t.Status = domain.TransactionStatusFailed
			return nil
		}); uerr != nil {
			s.logger.Error("mark collection failed", zap.Error(uerr))
		}
		return err
	}

	_, err = s.repo.UpdateCollection(ctx, tx.ID, func(t *domain.PaymentTransaction) error {
		t.ProviderRef = ref
		return nil
	})
	return err
}

// openCollection reopens the latest attempt that failed before the provider
// issued a reference, keeping its external id. The provider may have accepted
// the original request even though the submit timed out on our side; reusing
// the id lets its duplicate detection hand back the existing reference
// instead of charging the customer a second time. Without such an attempt a
// fresh row with a fresh external id is created.
func (s *Service) openCollection(ctx context.Context, order *domain.Order) (*domain.PaymentTransaction, error) {
	prev, err := s.repo.ReadRetryableCollection(ctx, order.ID)
	switch {
	case err == nil:
		return s.repo.UpdateCollection(ctx, prev.ID, func(t *domain.PaymentTransaction) error {
			t.Status = domain.TransactionStatusPending
			return nil
		})
	case !errors.Is(err, domain.ErrDataNotFound):
		return nil, err
	}

	return s.repo.CreateCollection(ctx, &domain.PaymentTransaction{
		OrderID:    order.ID,
		ExternalID: uuid.NewString(),
		Amount:     order.FinalAmount,
		Currency:   s.opts.Currency,
		Status:     domain.TransactionStatusPending,
	})
}

func (s *Service) GetOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	return s.repo.ReadOrderByNumber(ctx, number)
}

// ApplyOrderEvent drives the order axis. A DELIVER that takes effect fires
// the delivered notification; a CANCEL on a paid order opens the refund path
// instead of failing.
func (s *Service) ApplyOrderEvent(ctx context.Context, number domain.OrderNumber, event domain.OrderEvent) (*domain.Order, error) {
	order, err := s.repo.ReadOrderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	var changed bool
	updated, err := s.repo.UpdateOrder(ctx, order.ID, func(o *domain.Order) error {
		var terr error
		changed, terr = o.Transition(event)
		return terr
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		return updated, nil
	}

	switch event {
	case domain.OrderEventDeliver:
		s.notifier.OrderDelivered(updated.ID)
	case domain.OrderEventCancel:
		if updated.PaymentStatus == domain.PaymentStatusPaid {
			if err := s.refundOrder(ctx, updated); err != nil {
				s.logger.Error("refund after cancellation",
					zap.String("order", string(updated.Number)), zap.Error(err))
			}
		}
	}

	return updated, nil
}

// ApplyProviderResult is the single apply path for provider outcomes, shared
// by the webhook handler and the reconciliation job. Results for references
// the system never issued return ErrDataNotFound; duplicated identical
// results are no-ops.
func (s *Service) ApplyProviderResult(ctx context.Context, result *port.ProviderResult) error {
	err := s.applyCollectionResult(ctx, result)
	if errors.Is(err, domain.ErrDataNotFound) {
		return s.applyDisbursementResult(ctx, result)
	}
	return err
}

func (s *Service) applyCollectionResult(ctx context.Context, result *port.ProviderResult) error {
	var (
		becamePaid bool
		created    []*domain.DisbursementTransaction
		earning    *domain.BikerEarning
		paidOrder  *domain.Order
	)

	_, err := s.repo.ApplyCollectionResult(ctx, result.ProviderRef,
		func(tx *domain.PaymentTransaction, order *domain.Order) ([]*domain.DisbursementTransaction, error) {
			if tx.Status.Terminal() {
				// a stale progress notification replayed after settlement
				// is not a conflict
				if tx.Status == result.Status || !result.Status.Terminal() {
					return nil, errAlreadyApplied
				}
				return nil, domain.ErrConflictingTerminalStatus
			}

			if result.Status == domain.TransactionStatusSuccessful &&
				result.Amount.Sign() > 0 && result.Amount.Cmp(tx.Amount) != 0 {
				return nil, domain.ErrConflictingTerminalStatus
			}

			tx.Status = result.Status
			tx.RawPayload = result.RawPayload

			target, ok := paymentTarget(result.Status)
			if !ok {
				return nil, nil
			}
			pchanged, terr := order.TransitionPayment(target)
			if terr != nil {
				return nil, terr
			}
			if !pchanged || target != domain.PaymentStatusPaid {
				return nil, nil
			}

			becamePaid = true
			paidOrder = order
			var derr error
			created, earning, derr = s.buildPayouts(ctx, order)
			if derr != nil {
				return nil, derr
			}
			return created, nil
		})

	switch {
	case errors.Is(err, errAlreadyApplied):
		s.logger.Info("duplicate collection result ignored",
			zap.String("providerRef", result.ProviderRef))
		return nil
	case errors.Is(err, domain.ErrConflictingTerminalStatus):
		s.logger.Error("ALERT: conflicting terminal status for collection",
			zap.String("providerRef", result.ProviderRef),
			zap.String("incoming", string(result.Status)))
		return err
	case err != nil:
		return err
	}

	if becamePaid {
		s.afterPaid(ctx, paidOrder, created, earning)
	}
	return nil
}

func (s *Service) applyDisbursementResult(ctx context.Context, result *port.ProviderResult) error {
	var (
		final       bool
		needsReview bool
		finalStatus domain.TransactionStatus
	)

	d, err := s.repo.ApplyDisbursementResult(ctx, result.ProviderRef,
		func(d *domain.DisbursementTransaction, order *domain.Order) error {
			if d.Status.Terminal() {
				if d.Status == result.Status || !result.Status.Terminal() {
					return errAlreadyApplied
				}
				// a FAILED payout may legally be retried and succeed
				if d.Status == domain.TransactionStatusFailed &&
					result.Status == domain.TransactionStatusSuccessful {
					d.Status = result.Status
					final = true
					finalStatus = d.Status
					return nil
				}
				return domain.ErrConflictingTerminalStatus
			}

			switch result.Status {
			case domain.TransactionStatusSuccessful:
				d.Status = domain.TransactionStatusSuccessful
				final = true
				finalStatus = d.Status
				if d.Role == domain.RecipientCustomer {
					if _, terr := order.TransitionPayment(domain.PaymentStatusRefunded); terr != nil {
						return terr
					}
				}
			case domain.TransactionStatusFailed, domain.TransactionStatusExpired:
				d.Status = domain.TransactionStatusFailed
				d.FailureReason = result.FailureReason
				d.RetryCount++
				if d.RetryCount >= s.opts.MaxDisbursementRetries {
					d.Status = domain.TransactionStatusManualReview
					needsReview = true
					final = true
					finalStatus = d.Status
				} else {
					d.NextAttemptAt = time.Now().Add(s.retryDelay(d.RetryCount))
				}
			}
			return nil
		})

	switch {
	case errors.Is(err, errAlreadyApplied):
		s.logger.Info("duplicate disbursement result ignored",
			zap.String("providerRef", result.ProviderRef))
		return nil
	case errors.Is(err, domain.ErrConflictingTerminalStatus):
		s.logger.Error("ALERT: conflicting terminal status for disbursement",
			zap.String("providerRef", result.ProviderRef),
			zap.String("incoming", string(result.Status)))
		return err
	case err != nil:
		return err
	}

	if needsReview {
		s.logger.Error("ALERT: disbursement moved to manual review",
			zap.Uint64("order", d.OrderID), zap.String("role", string(d.Role)),
			zap.String("reason", d.FailureReason))
	}
	if final {
		s.notifier.DisbursementFinal(d.OrderID, d.Role, finalStatus)
	}
	return nil
}

func (s *Service) ListManualReviewDisbursements(ctx context.Context) ([]*domain.DisbursementTransaction, error) {
	return s.repo.ListManualReviewDisbursements(ctx)
}

func paymentTarget(status domain.TransactionStatus) (domain.PaymentStatus, bool) {
	switch status {
	case domain.TransactionStatusSuccessful:
		return domain.PaymentStatusPaid, true
	case domain.TransactionStatusFailed:
		return domain.PaymentStatusFailed, true
	case domain.TransactionStatusExpired:
		return domain.PaymentStatusExpired, true
	}
	return "", false
}

func newOrderNumber() domain.OrderNumber {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.OrderNumber(fmt.Sprintf("ORD-%s", id[:12]))
}
