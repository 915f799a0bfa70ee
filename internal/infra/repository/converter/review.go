package converter

import (
	"campfinder/internal/domain/review"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		CampsiteID: r.CampsiteID(),
		UserID:     r.UserID(),
		Title:      r.Title().String(),
		Text:       r.Text().String(),
		Rating:     int32(r.Rating().Value()), // #nosec G115 -- 1..5
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Title:     r.Title().String(),
		Text:      r.Text().String(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- 1..5
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
