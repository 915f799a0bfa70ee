package commands

import (
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/queries"
)

var (
	ErrCampsiteNotFound    = errs.NotFound(errs.New("campsite not found"))
	ErrCampsiteUnavailable = errs.Conflict(errs.New("campsite is not available for the selected dates"))
	ErrCampsiteAccess      = errs.Forbidden(errs.New("not authorized to modify this campsite"))
	ErrCampsiteNameTaken   = errs.Conflict(errs.New("a campsite with this name already exists"))
)

var (
	// Shared with the read side so either layer's sentinel matches.
	ErrReservationNotFound = queries.ErrReservationNotFound
	ErrReservationAccess   = queries.ErrReservationAccess
	ErrAlreadyCancelled    = errs.Conflict(errs.New("reservation is already cancelled"))
	ErrNotPending          = errs.Conflict(errs.New("only pending reservations can be confirmed"))
)

var (
	ErrReviewNotFound = queries.ErrReviewNotFound
	ErrReviewAccess   = errs.Forbidden(errs.New("not authorized to modify this review"))
)

var (
	ErrUserNotFound = errs.NotFound(errs.New("user not found"))
	ErrUserInactive = errs.Forbidden(errs.New("user inactive"))
	ErrEmailTaken   = errs.Conflict(errs.New("email is already registered"))

	// Authentication failures carry no kind; the handler answers 401.
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenValidation    = errs.New("token validation failed")
	ErrTokenGeneration    = errs.New("token generation failed")
)
