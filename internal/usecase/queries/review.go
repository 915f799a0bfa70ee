package queries

import (
	"context"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.NotFound(errs.New("review not found"))

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	CampsiteID uuid.UUID `json:"campsite_id"`
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CampsiteRatingStats struct {
	CampsiteID    uuid.UUID `json:"campsite_id"`
	TotalReviews  int       `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByCampsiteFirstPage(ctx context.Context, campsiteID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByCampsiteKeyset(ctx context.Context, campsiteID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	GetCampsiteRatingStats(ctx context.Context, campsiteID uuid.UUID) (*CampsiteRatingStats, error)
}

type CampsiteFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*campsite.Campsite, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByCampsite(ctx context.Context, campsiteID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	GetCampsiteRatingStats(ctx context.Context, campsiteID uuid.UUID) (*CampsiteRatingStats, error)
}

type reviewQueriesImpl struct {
	repo      ReviewReadStore
	campsites CampsiteFinder
}

func NewReviewQueries(repo ReviewReadStore, campsites CampsiteFinder) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, campsites: campsites}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByCampsite(ctx context.Context, campsiteID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	if _, err := q.campsites.FindByID(ctx, campsiteID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrCampsiteNotFound
		}
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by ValidateLimit

	var rows []*ReviewView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByCampsiteFirstPage(ctx, campsiteID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByCampsiteKeyset(ctx, campsiteID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetCampsiteRatingStats(ctx context.Context, campsiteID uuid.UUID) (*CampsiteRatingStats, error) {
	return q.repo.GetCampsiteRatingStats(ctx, campsiteID)
}
