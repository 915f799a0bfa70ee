package repository

import (
	"context"
	"time"

	"campfinder/internal/domain/reservation"
	"campfinder/internal/infra"
	"campfinder/internal/infra/repository/converter"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationLedgerQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Reservations, error)
	ListConfirmedReservationsByCampsite(ctx context.Context, db sqlc.DBTX, campsiteID uuid.UUID) ([]sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

// ReservationRepository is the Postgres-backed reservation ledger.
type ReservationRepository struct {
	queries ReservationLedgerQueries
}

func NewReservationRepository(queries ReservationLedgerQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if p := res.Period(); !p.End().After(p.Start()) {
		return uuid.Nil, errs.Validation(reservation.ErrInvalidStayPeriod)
	}

	params := converter.ReservationToCreateParams(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	res, err := converter.ReservationFromRow(sqlc.Reservations{
		ID:              row.ID,
		CampsiteID:      row.CampsiteID,
		UserID:          row.UserID,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		NumberOfPeople:  row.NumberOfPeople,
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UserReservations(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ReservationRepository) CampsiteReservations(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListConfirmedReservationsByCampsite(ctx, tx, campsiteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campsite reservations", err)
	}
	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, at time.Time) error {
	if !status.IsValid() {
		return infra.WrapRepoErr("invalid reservation status", reservation.ErrInvalidStatus, infra.KindCheckViolated)
	}

	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// CheckAvailability reports whether period is free of confirmed bookings.
// Pending and cancelled reservations never block.
func (r *ReservationRepository) CheckAvailability(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	confirmed, err := r.CampsiteReservations(ctx, tx, campsiteID)
	if err != nil {
		return false, err
	}

	periods := make([]reservation.StayPeriod, len(confirmed))
	for i, c := range confirmed {
		periods[i] = c.Period()
	}
	return reservation.IsAvailable(periods, period), nil
}
