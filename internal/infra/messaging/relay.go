package messaging

import (
	"context"
	"log/slog"
	"time"

	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/config"
	"campfinder/internal/pkg/metrics"
	"campfinder/internal/usecase/shared"
)

const (
	resultSent     = "sent"
	resultRetry    = "retry"
	resultFailed   = "failed"
	retryBaseDelay = 10 * time.Second
	maxRetryDelay  = time.Hour
)

// Relay moves queued notification jobs from Postgres to the message broker.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	slog.Info("outbox relay started", "poll_interval", r.cfg.PollInterval.String())
	defer slog.Info("outbox relay stopped")

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
			slog.Error("outbox batch failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessBatch claims up to BatchSize due jobs and publishes them in one transaction.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	processed := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		processed = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := r.deliver(ctx, tx, job); err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	return processed, err
}

func (r *Relay) deliver(ctx context.Context, tx shared.Tx, job shared.NotificationJob) error {
	repo := tx.Notifications()

	pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload)
	if pubErr == nil {
		metrics.IncOutbox(resultSent)
		return repo.MarkSent(ctx, tx.DB(), job.ID)
	}

	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		slog.Error("notification job failed permanently",
			"job_id", job.ID.String(),
			"kind", job.Kind,
			"attempts", attempts,
			"error", pubErr.Error())
		metrics.IncOutbox(resultFailed)
		return repo.MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error())
	}

	runAt := r.clock.Now().Add(retryDelay(attempts))
	slog.Warn("notification publish failed, rescheduling",
		"job_id", job.ID.String(),
		"kind", job.Kind,
		"attempts", attempts,
		"run_at", runAt,
		"error", pubErr.Error())
	metrics.IncOutbox(resultRetry)
	return repo.Reschedule(ctx, tx.DB(), job.ID, pubErr.Error(), runAt)
}

func retryDelay(attempts int) time.Duration {
	if attempts > 12 {
		return maxRetryDelay
	}
	d := time.Duration(1<<(attempts-1)) * retryBaseDelay
	return min(d, maxRetryDelay)
}
