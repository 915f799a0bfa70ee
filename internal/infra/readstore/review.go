package readstore

import (
	"context"
	"time"

	"campfinder/internal/infra"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/pgconv"
	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewByIDRow, error)
	ListReviewsByCampsiteFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByCampsiteFirstPageParams) ([]sqlc.ListReviewsByCampsiteFirstPageRow, error)
	ListReviewsByCampsiteKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByCampsiteKeysetParams) ([]sqlc.ListReviewsByCampsiteKeysetRow, error)
	GetCampsiteRatingStats(ctx context.Context, db sqlc.DBTX, campsiteID uuid.UUID) (sqlc.CampsiteRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:         row.ID,
		CampsiteID: row.CampsiteID,
		UserID:     row.UserID,
		UserName:   row.UserName,
		Title:      row.Title,
		Text:       row.Text,
		Rating:     int(row.Rating),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindByCampsiteFirstPage(ctx context.Context, campsiteID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByCampsiteFirstPageParams{
		CampsiteID: campsiteID,
		Limit:      limit,
	}

	rows, err := r.queries.ListReviewsByCampsiteFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by campsite", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:         row.ID,
			CampsiteID: row.CampsiteID,
			UserID:     row.UserID,
			UserName:   row.UserName,
			Title:      row.Title,
			Text:       row.Text,
			Rating:     int(row.Rating),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) FindByCampsiteKeyset(ctx context.Context, campsiteID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByCampsiteKeysetParams{
		CampsiteID: campsiteID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	}

	rows, err := r.queries.ListReviewsByCampsiteKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by campsite", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:         row.ID,
			CampsiteID: row.CampsiteID,
			UserID:     row.UserID,
			UserName:   row.UserName,
			Title:      row.Title,
			Text:       row.Text,
			Rating:     int(row.Rating),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) GetCampsiteRatingStats(ctx context.Context, campsiteID uuid.UUID) (*queries.CampsiteRatingStats, error) {
	row, err := r.queries.GetCampsiteRatingStats(ctx, r.db, campsiteID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// no review has been written yet
			return &queries.CampsiteRatingStats{CampsiteID: campsiteID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get campsite rating stats", err)
	}
	return &queries.CampsiteRatingStats{
		CampsiteID:    row.CampsiteID,
		TotalReviews:  int(row.TotalReviews),
		AverageRating: row.AverageRating,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
