package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/reservation"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/metrics"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	KindReservationCreated   = "reservation.created"
	KindReservationCancelled = "reservation.cancelled"
	KindReservationConfirmed = "reservation.confirmed"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, campsiteID, userID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*queries.ReservationView, error)
	// ConfirmReservation is the operator step that moves pending to confirmed.
	ConfirmReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	campsites shared.CampsiteDirectory
	factory   *reservation.Factory
	clock     clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	campsites shared.CampsiteDirectory,
	factory *reservation.Factory,
	clock clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		campsites: campsites,
		factory:   factory,
		clock:     clock,
	}
}

// CreateReservation books a campsite for the user. The availability check and
// the insert share a transaction but nothing locks the campsite between them,
// so two concurrent requests for the same dates can both succeed.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	campsiteID, userID uuid.UUID,
	req reqdto.CreateReservationRequest,
) (*queries.ReservationView, error) {
	site, err := r.loadCampsite(ctx, campsiteID)
	if err != nil {
		metrics.IncReservationAttempt(metrics.OutcomeFailed)
		return nil, err
	}

	rate, err := nightlyRate(site)
	if err != nil {
		metrics.IncReservationAttempt(metrics.OutcomeFailed)
		return nil, errs.Validation(err)
	}

	res, err := r.factory.CreateReservation(
		reservation.CampsiteSpec{ID: site.ID(), NightlyRate: rate},
		userID,
		req.StartDate.Time(),
		req.EndDate.Time(),
		req.NumberOfPeople,
	)
	if err != nil {
		metrics.IncReservationAttempt(metrics.OutcomeFailed)
		return nil, errs.Validation(err)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		available, txErr := tx.Reservations().CheckAvailability(ctx, tx.DB(), site.ID(), res.Period())
		if txErr != nil {
			return txErr
		}
		metrics.IncAvailabilityCheck(available)
		if !available {
			return ErrCampsiteUnavailable
		}

		if _, txErr = tx.Reservations().Create(ctx, tx.DB(), res); txErr != nil {
			return txErr
		}
		return r.enqueue(ctx, tx, KindReservationCreated, res)
	})
	if err != nil {
		if errors.Is(err, ErrCampsiteUnavailable) {
			metrics.IncReservationAttempt(metrics.OutcomeUnavailable)
		} else {
			metrics.IncReservationAttempt(metrics.OutcomeFailed)
		}
		return nil, err
	}

	metrics.IncReservationAttempt(metrics.OutcomeCreated)
	slog.Info("reservation created",
		"reservation_id", res.ID(),
		"campsite_id", site.ID(),
		"user_id", userID,
		"nights", res.Period().Nights(),
		"total_price", res.TotalPrice().Amount())

	return queries.ReservationViewOf(res, site), nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*queries.ReservationView, error) {
	var cancelled *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, txErr := findReservation(ctx, tx, id)
		if txErr != nil {
			return txErr
		}
		if !reservation.CanAccess(res.UserID(), actorID, actorRole == queries.RoleAdmin) {
			return ErrReservationAccess
		}

		if txErr = res.Cancel(r.clock.Now()); txErr != nil {
			if errors.Is(txErr, reservation.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			return errs.Validation(txErr)
		}

		if txErr = tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status(), res.UpdatedAt()); txErr != nil {
			return txErr
		}
		cancelled = res
		return r.enqueue(ctx, tx, KindReservationCancelled, res)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncReservationTransition(reservation.StatusCancelled.String())
	return r.view(ctx, cancelled), nil
}

func (r *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var confirmed *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, txErr := findReservation(ctx, tx, id)
		if txErr != nil {
			return txErr
		}
		if res.Status() != reservation.StatusPending {
			return ErrNotPending
		}
		if txErr = res.Confirm(r.clock.Now()); txErr != nil {
			return errs.Validation(txErr)
		}

		if txErr = tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status(), res.UpdatedAt()); txErr != nil {
			return txErr
		}
		confirmed = res
		return r.enqueue(ctx, tx, KindReservationConfirmed, res)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncReservationTransition(reservation.StatusConfirmed.String())
	slog.Info("reservation confirmed", "reservation_id", id)
	return r.view(ctx, confirmed), nil
}

func (r *reservationUseCaseImpl) loadCampsite(ctx context.Context, id uuid.UUID) (*campsite.Campsite, error) {
	site, err := r.campsites.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return site, nil
}

// view annotates res with its campsite. A missing listing is not an error here.
func (r *reservationUseCaseImpl) view(ctx context.Context, res *reservation.Reservation) *queries.ReservationView {
	site, err := r.campsites.FindByID(ctx, res.CampsiteID())
	if err != nil {
		slog.Debug("campsite lookup for reservation view failed", "campsite_id", res.CampsiteID(), "error", err)
		site = nil
	}
	return queries.ReservationViewOf(res, site)
}

type reservationEvent struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	CampsiteID     uuid.UUID `json:"campsite_id"`
	UserID         uuid.UUID `json:"user_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (r *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, res *reservation.Reservation) error {
	now := r.clock.Now()
	payload, err := json.Marshal(reservationEvent{
		ReservationID:  res.ID(),
		CampsiteID:     res.CampsiteID(),
		UserID:         res.UserID(),
		StartDate:      res.Period().Start(),
		EndDate:        res.Period().End(),
		NumberOfPeople: res.Guests().Value(),
		TotalPrice:     res.TotalPrice().Amount(),
		Status:         res.Status().String(),
		OccurredAt:     now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, kind, payload, now)
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

// nightlyRate is nil when the campsite has no average cost, leaving the
// default rate to the price calculator.
func nightlyRate(site *campsite.Campsite) (*reservation.Money, error) {
	cost := site.AverageCost()
	if cost == nil {
		return nil, nil
	}
	m, err := reservation.NewMoneyFromAmount(*cost)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
