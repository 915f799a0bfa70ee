package response

import (
	"time"

	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	CampsiteID uuid.UUID `json:"campsiteId"`
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:         v.ID,
		CampsiteID: v.CampsiteID,
		UserID:     v.UserID,
		UserName:   v.UserName,
		Title:      v.Title,
		Text:       v.Text,
		Rating:     v.Rating,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type ReviewListResponse struct {
	Count      int               `json:"count"`
	Data       []*ReviewResponse `json:"data"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	data := make([]*ReviewResponse, len(items))
	for i, it := range items {
		data[i] = FromReviewView(it)
	}
	resp := &ReviewListResponse{Count: len(data), Data: data}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type RatingStatsResponse struct {
	CampsiteID    uuid.UUID `json:"campsiteId"`
	TotalReviews  int       `json:"totalReviews"`
	AverageRating float64   `json:"averageRating"`
}

func FromRatingStats(s *queries.CampsiteRatingStats) *RatingStatsResponse {
	return &RatingStatsResponse{
		CampsiteID:    s.CampsiteID,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
	}
}
