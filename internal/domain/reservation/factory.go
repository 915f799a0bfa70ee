package reservation

import (
	"time"

	"campfinder/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation validates raw input and builds a pending reservation.
func (f *Factory) CreateReservation(
	campsite CampsiteSpec,
	userID uuid.UUID,
	start, end time.Time,
	numberOfPeople int,
) (*Reservation, error) {
	period, err := NewStayPeriod(start, end)
	if err != nil {
		return nil, err
	}
	guests, err := NewGuests(numberOfPeople)
	if err != nil {
		return nil, err
	}

	return NewReservation(
		&Services{Clock: f.Clock, PriceCalculator: f.PriceCalculator},
		campsite,
		userID,
		period,
		guests,
	)
}
