package repositories

import (
	"github.com/pkg/errors"
)

// Error taxonomy for repository operations. Handlers map these onto HTTP
// status codes; the repository additionally records the message on its own
// error state so callers can read and clear it.
var (
	// ErrServiceNotFound is returned when an operation targets an id that is
	// not in the collection.
	ErrServiceNotFound = errors.New("service not found")

	// ErrReportExists is returned when a medical report is submitted for a
	// service that already has one.
	ErrReportExists = errors.New("medical report already exists")
)

// ValidationError marks a rejected payload or an illegal lifecycle request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
