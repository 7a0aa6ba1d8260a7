package scheduler

import (
	"context"
	"time"

	"github.com/duka-eats/payflow/internal/core/port"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// retryWorkers bounds concurrent payout re-issues per sweep.
const retryWorkers = 4

// RetryWorker drains the durable disbursement retry queue. The queue is the
// disbursement table itself, so a restart picks up exactly where the
// previous process stopped.
type RetryWorker struct {
	repo    port.Repository
	service port.Service
	logger  *zap.Logger
}

func NewRetryWorker(repo port.Repository, service port.Service, log *zap.Logger) (*RetryWorker, error) {
	return &RetryWorker{
		repo:    repo,
		service: service,
		logger:  log,
	}, nil
}

func (w *RetryWorker) Schedule(ctx context.Context, c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if err := w.Run(ctx); err != nil {
			w.logger.Error("disbursement retry sweep", zap.Error(err))
		}
	})
	return err
}

func (w *RetryWorker) Run(ctx context.Context) error {
	due, err := w.repo.ListDueDisbursementRetries(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	queue := make(chan uint64, len(due))
	for _, d := range due {
		queue <- d.ID
	}
	close(queue)

	done := make(chan struct{})
	for i := 0; i < retryWorkers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for id := range queue {
				if err := w.service.RetryDisbursement(ctx, id); err != nil {
					w.logger.Warn("payout retry failed",
						zap.Uint64("disbursement", id), zap.Error(err))
				}
			}
		}()
	}
	for i := 0; i < retryWorkers; i++ {
		<-done
	}

	return nil
}
