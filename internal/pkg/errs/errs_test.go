//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"campfinder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errMissing  = errs.NotFound(errs.New("thing not found"))
	errTaken    = errs.Conflict(errs.New("thing already taken"))
	errCanceled = errs.Conflict(errs.New("thing already cancelled"))
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "not found sentinel", err: errMissing, want: errs.ErrNotFound},
		{name: "conflict sentinel", err: errTaken, want: errs.ErrConflict},
		{name: "wrapped sentinel keeps its kind", err: errs.Wrap(errTaken, "while booking"), want: errs.ErrConflict},
		{name: "validation around a plain error", err: errs.Validation(errors.New("bad input")), want: errs.ErrValidation},
		{name: "unclassified", err: errs.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Kind(tt.err))
		})
	}
}

func TestSentinelsOfTheSameKindStayDistinct(t *testing.T) {
	assert.True(t, errs.Is(errTaken, errTaken))
	assert.False(t, errs.Is(errTaken, errCanceled))
	assert.False(t, errors.Is(errCanceled, errTaken))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := errs.Wrap(errs.Wrap(errCanceled, "cancel reservation"), "handler")

	assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	assert.True(t, errors.Is(wrapped, errs.ErrConflict))
	assert.True(t, errs.Is(wrapped, errCanceled))
	assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.Equal(t, "handler: cancel reservation: thing already cancelled", wrapped.Error())
}

func TestKindKeepsCauseIdentityAndMessage(t *testing.T) {
	cause := errors.New("end date must be after start date")
	err := errs.Validation(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
	assert.Nil(t, errs.Validation(nil))
}

func TestMark(t *testing.T) {
	base := errs.New("db down")
	marked := errs.Mark(base, errMissing)

	assert.True(t, errs.Is(marked, errMissing))
	assert.False(t, errs.Is(marked, errTaken))
	assert.Equal(t, errMissing, errs.Mark(nil, errMissing))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
