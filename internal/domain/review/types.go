package review

import "errors"

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyTitle    = errors.New("please add a title for the review")
	ErrTitleTooLong  = errors.New("title can not be more than 100 characters")
	ErrEmptyText     = errors.New("please add some text")
	ErrTextTooLong   = errors.New("text exceeds maximum length")
)
