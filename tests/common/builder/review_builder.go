//go:build unit || e2e

package builder

import (
	"time"

	domreview "campfinder/internal/domain/review"
	reqdto "campfinder/internal/handler/dto/request"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UserName   string
	CampsiteID uuid.UUID
	Title      string
	Text       string
	Rating     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		UserName:   "Test Camper",
		CampsiteID: uuid.New(),
		Title:      "Lovely lakeside pitch",
		Text:       "Quiet at night, clean showers and a great view of the lake.",
		Rating:     5,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.UserID, r.CampsiteID, r.Title, r.Text, r.Rating, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         r.ID,
		CampsiteID: r.CampsiteID,
		UserID:     r.UserID,
		Title:      r.Title,
		Text:       r.Text,
		Rating:     int32(r.Rating),
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Title:  r.Title,
		Text:   r.Text,
		Rating: r.Rating,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	title := r.Title
	text := r.Text
	rating := r.Rating
	return reqdto.UpdateReviewRequest{
		Title:  &title,
		Text:   &text,
		Rating: &rating,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         r.ID,
		CampsiteID: r.CampsiteID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		Title:      r.Title,
		Text:       r.Text,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:         r.ID,
		UserID:     r.UserID,
		CampsiteID: r.CampsiteID,
		Title:      r.Title,
		Text:       r.Text,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildRatingStats() *queries.CampsiteRatingStats {
	return &queries.CampsiteRatingStats{
		CampsiteID:    r.CampsiteID,
		TotalReviews:  10,
		AverageRating: 4.2,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithCampsiteID(campsiteID uuid.UUID) *ReviewBuilder {
	r.CampsiteID = campsiteID
	return r
}

func (r *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	r.Title = title
	return r
}

func (r *ReviewBuilder) WithText(text string) *ReviewBuilder {
	r.Text = text
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Title = "Muddy and loud"
	r.Text = "The pitch flooded overnight and the road noise never stopped."
	return r
}
