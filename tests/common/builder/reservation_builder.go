//go:build unit || e2e

package builder

import (
	"time"

	"campfinder/internal/domain/reservation"
	reqdto "campfinder/internal/handler/dto/request"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	CampsiteID     uuid.UUID
	UserID         uuid.UUID
	Start          time.Time
	End            time.Time
	NumberOfPeople int
	NightlyRate    *float64
	Status         reservation.Status
	CreatedAt      time.Time
}

// NewReservationBuilder defaults to four nights, May 1 to May 5 2025, with no nightly rate.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		CampsiteID:     uuid.New(),
		UserID:         uuid.New(),
		Start:          time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 2,
		Status:         reservation.StatusPending,
		CreatedAt:      time.Date(2025, time.April, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	rate, err := b.nightlyRate()
	if err != nil {
		return nil, err
	}
	factory := reservation.NewFactory(clock.NewMockClock(b.CreatedAt), reservation.NewNightlyPriceCalculator())
	return factory.CreateReservation(
		reservation.CampsiteSpec{ID: b.CampsiteID, NightlyRate: rate},
		b.UserID,
		b.Start, b.End,
		b.NumberOfPeople,
	)
}

// BuildReconstructed skips validation so any status can be produced.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	guests, _ := reservation.NewGuests(b.NumberOfPeople)
	return reservation.ReconstructReservation(
		b.ID, b.CampsiteID, b.UserID,
		reservation.ReconstructStayPeriod(b.Start, b.End),
		guests,
		b.price(),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		CampsiteID:      b.CampsiteID,
		UserID:          b.UserID,
		StartDate:       pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndDate:         pgtype.Timestamptz{Time: b.End, Valid: true},
		NumberOfPeople:  int32(b.NumberOfPeople),
		TotalPriceCents: b.price().Cents(),
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	period := reservation.ReconstructStayPeriod(b.Start, b.End)
	return &queries.ReservationView{
		ID:             b.ID,
		CampsiteID:     b.CampsiteID,
		CampsiteName:   "Pine Hollow",
		UserID:         b.UserID,
		UserName:       "Test Camper",
		UserEmail:      "test@example.com",
		StartDate:      b.Start,
		EndDate:        b.End,
		Nights:         period.Nights(),
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.price().Amount(),
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		StartDate:      reqdto.NewDate(b.Start),
		EndDate:        reqdto.NewDate(b.End),
		NumberOfPeople: b.NumberOfPeople,
	}
}

func (b *ReservationBuilder) nightlyRate() (*reservation.Money, error) {
	if b.NightlyRate == nil {
		return nil, nil
	}
	m, err := reservation.NewMoneyFromAmount(*b.NightlyRate)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (b *ReservationBuilder) price() reservation.Money {
	rate, _ := b.nightlyRate()
	price, _ := reservation.NewNightlyPriceCalculator().
		CalculatePrice(rate, reservation.ReconstructStayPeriod(b.Start, b.End))
	return price
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithCampsiteID(campsiteID uuid.UUID) *ReservationBuilder {
	b.CampsiteID = campsiteID
	return b
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithPeriod(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithNumberOfPeople(n int) *ReservationBuilder {
	b.NumberOfPeople = n
	return b
}

func (b *ReservationBuilder) WithNightlyRate(amount float64) *ReservationBuilder {
	b.NightlyRate = &amount
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}
