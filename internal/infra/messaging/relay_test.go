//go:build unit

package messaging_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campfinder/internal/infra/messaging"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/config"
	"campfinder/internal/usecase/shared"
	messagingmock "campfinder/tests/mock/messaging"
	sharedmock "campfinder/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	jobs      *sharedmock.MockNotificationRepository
	publisher *messagingmock.MockPublisher
	clock     *clock.MockClock
	relay     *messaging.Relay
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &relayFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		jobs:      sharedmock.NewMockNotificationRepository(ctrl),
		publisher: messagingmock.NewMockPublisher(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)),
	}
	cfg := config.OutboxConfig{PollInterval: time.Second, BatchSize: 10, MaxAttempts: 3}
	f.relay = messaging.NewRelay(f.uow, f.publisher, f.clock, cfg)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.jobs).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func job(attempts int) shared.NotificationJob {
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     "reservation.created",
		Topic:    "reservation.created",
		Payload:  []byte(`{"reservation_id":"x"}`),
		Attempts: attempts,
	}
}

// =============================================================================
// ProcessBatch
// =============================================================================

func TestRelay_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("published jobs are marked sent", func(t *testing.T) {
		f := newRelayFixture(t)
		j1, j2 := job(0), job(0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return([]shared.NotificationJob{j1, j2}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), j1.Topic, j1.Payload).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), j2.Topic, j2.Payload).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j1.ID).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j2.ID).Return(nil)

		n, err := f.relay.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("publish failure reschedules with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job(1)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return([]shared.NotificationJob{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), j.Topic, j.Payload).Return(errors.New("broker down"))
		f.jobs.EXPECT().Reschedule(gomock.Any(), gomock.Any(), j.ID, "broker down", f.clock.Now().Add(20*time.Second)).Return(nil)

		n, err := f.relay.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("last attempt marks the job failed", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job(2)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return([]shared.NotificationJob{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), j.Topic, j.Payload).Return(errors.New("broker down"))
		f.jobs.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), j.ID, "broker down").Return(nil)

		_, err := f.relay.ProcessBatch(ctx)
		require.NoError(t, err)
	})

	t.Run("claim error is returned", func(t *testing.T) {
		f := newRelayFixture(t)
		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return(nil, errors.New("db down"))

		n, err := f.relay.ProcessBatch(ctx)
		require.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestRelay_RunStopsOnCancel(t *testing.T) {
	f := newRelayFixture(t)
	f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.relay.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}
