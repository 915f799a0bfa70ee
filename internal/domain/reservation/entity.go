package reservation

import (
	"errors"
	"time"

	"campfinder/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod = errors.New("end date must be after start date")
	ErrInvalidGuests     = errors.New("number of people must be at least 1")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrPriceTooLarge     = errors.New("price is too large")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// CampsiteSpec is what pricing needs to know about a campsite.
type CampsiteSpec struct {
	ID          uuid.UUID
	NightlyRate *Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Reservation struct {
	id         uuid.UUID
	campsiteID uuid.UUID
	userID     uuid.UUID
	period     StayPeriod
	guests     Guests
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	services *Services,
	campsite CampsiteSpec,
	userID uuid.UUID,
	period StayPeriod,
	guests Guests,
) (*Reservation, error) {
	price, err := services.PriceCalculator.CalculatePrice(campsite.NightlyRate, period)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		campsiteID: campsite.ID,
		userID:     userID,
		period:     period,
		guests:     guests,
		totalPrice: price,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, campsiteID, userID uuid.UUID,
	period StayPeriod,
	guests Guests,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		campsiteID: campsiteID,
		userID:     userID,
		period:     period,
		guests:     guests,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return r.transition(StatusCancelled, now)
}

func (r *Reservation) Confirm(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// CanAccess is the single access rule for viewing or cancelling a reservation.
func CanAccess(ownerID, actorID uuid.UUID, actorIsAdmin bool) bool {
	return actorIsAdmin || ownerID == actorID
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CampsiteID() uuid.UUID { return r.campsiteID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) Period() StayPeriod    { return r.period }
func (r *Reservation) Guests() Guests        { return r.guests }
func (r *Reservation) TotalPrice() Money     { return r.totalPrice }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
