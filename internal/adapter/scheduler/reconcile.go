package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/core/domain"
	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reconciler is the safety net against lost provider callbacks. On every
// cron tick it polls the provider for transactions stuck in PENDING past the
// configured timeout and feeds each result through the same apply path the
// webhook handler uses, so the two can never disagree on a terminal status.
type Reconciler struct {
	repo    port.Repository
	gateway port.PaymentGateway
	applier port.ProviderResultApplier
	timeout time.Duration
	logger  *zap.Logger
}

func NewReconciler(repo port.Repository, gateway port.PaymentGateway,
	applier port.ProviderResultApplier, cfg *config.Jobs, log *zap.Logger) (*Reconciler, error) {
	return &Reconciler{
		repo:    repo,
		gateway: gateway,
		applier: applier,
		timeout: cfg.PendingTimeout,
		logger:  log,
	}, nil
}

// Schedule registers the sweep on the given cron runner.
func (r *Reconciler) Schedule(ctx context.Context, c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if err := r.Run(ctx); err != nil {
			r.logger.Error("reconciliation sweep", zap.Error(err))
		}
	})
	return err
}

func (r *Reconciler) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-r.timeout)

	collections, err := r.repo.ListPendingCollections(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, tx := range collections {
		r.poll(ctx, tx.ProviderRef)
	}

	disbursements, err := r.repo.ListPendingDisbursements(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, d := range disbursements {
		r.poll(ctx, d.ProviderRef)
	}

	return nil
}

func (r *Reconciler) poll(ctx context.Context, providerRef string) {
	result, err := r.gateway.QueryStatus(ctx, providerRef)
	if err != nil {
		r.logger.Warn("status query failed",
			zap.String("providerRef", providerRef), zap.Error(err))
		return
	}
	if !result.Status.Terminal() {
		return
	}

	// the row stays on the apply path's lock, a concurrent webhook for the
	// same reference is serialized behind it
	err = r.applier.ApplyProviderResult(ctx, result)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		r.logger.Error("apply polled result",
			zap.String("providerRef", providerRef), zap.Error(err))
		return
	}

	r.logger.Info("reconciled stuck transaction",
		zap.String("providerRef", providerRef),
		zap.String("status", string(result.Status)))
}
