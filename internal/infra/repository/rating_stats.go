package repository

import (
	"context"

	"campfinder/internal/infra"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcCampsiteRatingStats(ctx context.Context, db sqlc.DBTX, campsiteID uuid.UUID) (sqlc.RecalcCampsiteRatingStatsRow, error)
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
}

func NewRatingStatsRepository(queries RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries}
}

func (r *RatingStatsRepository) Recalc(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID) (*shared.RatingSummary, error) {
	row, err := r.queries.RecalcCampsiteRatingStats(ctx, tx, campsiteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to recalculate rating stats", err)
	}
	return &shared.RatingSummary{
		TotalReviews:  int(row.TotalReviews),
		AverageRating: row.AverageRating,
	}, nil
}
