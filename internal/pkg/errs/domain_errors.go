package errs

import "errors"

// Cross-layer markers. Domain packages mark their validation failures with
// ErrDomainValidation so handlers can map them to 400 without knowing every sentinel.
var (
	ErrDomainValidation = errors.New("domain validation error")
	ErrIntegrity        = errors.New("integrity violation")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Validation marks err as a domain validation failure.
func Validation(err error) error {
	return Mark(err, ErrDomainValidation)
}
