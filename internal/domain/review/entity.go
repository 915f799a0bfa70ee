package review

import (
	"time"

	"campfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

// A user may review each campsite at most once.
var ErrReviewAlreadyExists = errs.Conflict(errs.New("user has already reviewed this campsite"))

type Review struct {
	id         uuid.UUID
	userID     uuid.UUID
	campsiteID uuid.UUID
	title      Title
	text       Text
	rating     Rating
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(userID, campsiteID uuid.UUID, title, text string, ratingValue int, now time.Time) (*Review, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	body, err := NewText(text)
	if err != nil {
		return nil, err
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		userID:     userID,
		campsiteID: campsiteID,
		title:      t,
		text:       body,
		rating:     rating,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(id, userID, campsiteID uuid.UUID, title Title, text Text, rating Rating, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		userID:     userID,
		campsiteID: campsiteID,
		title:      title,
		text:       text,
		rating:     rating,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Edit applies any non-nil field. Nothing changes if validation fails.
func (r *Review) Edit(title, text *string, rating *int, now time.Time) error {
	nextTitle, nextText, nextRating := r.title, r.text, r.rating
	var err error
	if title != nil {
		if nextTitle, err = NewTitle(*title); err != nil {
			return err
		}
	}
	if text != nil {
		if nextText, err = NewText(*text); err != nil {
			return err
		}
	}
	if rating != nil {
		if nextRating, err = NewRating(*rating); err != nil {
			return err
		}
	}
	r.title, r.text, r.rating = nextTitle, nextText, nextRating
	r.updatedAt = now
	return nil
}

func (r *Review) CanModify(actorID uuid.UUID, actorIsAdmin bool) bool {
	return actorIsAdmin || r.userID == actorID
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) UserID() uuid.UUID     { return r.userID }
func (r *Review) CampsiteID() uuid.UUID { return r.campsiteID }
func (r *Review) Title() Title          { return r.title }
func (r *Review) Text() Text            { return r.text }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
