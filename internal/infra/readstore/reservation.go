package readstore

import (
	"context"
	"time"

	"campfinder/internal/domain/reservation"
	"campfinder/internal/infra"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/pgconv"
	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Reservations, error)
	ListReservationsForExport(ctx context.Context, db sqlc.DBTX, campsiteID pgtype.UUID) ([]sqlc.ListReservationsForExportRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}

	view := reservationView(sqlc.Reservations{
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
	view.UserName = row.UserName
	view.UserEmail = row.UserEmail
	return view, nil
}

// FindByUserID lists newest first.
func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = reservationView(row)
	}
	return views, nil
}

func (r *ReservationReadStore) FindForExport(ctx context.Context, campsiteID *uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsForExport(ctx, r.db, pgconv.UUIDPtrToPgtype(campsiteID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for export", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		v := reservationView(sqlc.Reservations{
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
		v.UserName = row.UserName
		v.UserEmail = row.UserEmail
		views[i] = v
	}
	return views, nil
}

func reservationView(row sqlc.Reservations) *queries.ReservationView {
	start := pgconv.TimeFromPgtype(row.StartDate)
	end := pgconv.TimeFromPgtype(row.EndDate)
	return &queries.ReservationView{
		ID:             row.ID,
		CampsiteID:     row.CampsiteID,
		UserID:         row.UserID,
		StartDate:      start,
		EndDate:        end,
		Nights:         nights(start, end),
		NumberOfPeople: int(row.NumberOfPeople),
		TotalPrice:     float64(row.TotalPriceCents) / 100,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func nights(start, end time.Time) int64 {
	return reservation.ReconstructStayPeriod(start, end).Nights()
}
