package errs

import cr "github.com/cockroachdb/errors"

// Error kinds. Use-case errors carry exactly one of these so the HTTP
// boundary can pick a status without knowing every sentinel.
var (
	ErrNotFound   = cr.New("kind: not found")
	ErrConflict   = cr.New("kind: conflict")
	ErrForbidden  = cr.New("kind: forbidden")
	ErrValidation = cr.New("kind: validation")
)

// kindError tags err with a kind while keeping err's own identity and message,
// so two sentinels of the same kind still compare unequal.
type kindError struct {
	cause error
	kind  error
}

func (e *kindError) Error() string        { return e.cause.Error() }
func (e *kindError) Unwrap() error        { return e.cause }
func (e *kindError) Is(target error) bool { return target == e.kind }

func withKind(err, kind error) error {
	if err == nil {
		return nil
	}
	return &kindError{cause: err, kind: kind}
}

func NotFound(err error) error   { return withKind(err, ErrNotFound) }
func Conflict(err error) error   { return withKind(err, ErrConflict) }
func Forbidden(err error) error  { return withKind(err, ErrForbidden) }
func Validation(err error) error { return withKind(err, ErrValidation) }

// Kind reports which kind err carries, or nil for unclassified errors.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrValidation} {
		if cr.Is(err, k) {
			return k
		}
	}
	return nil
}
