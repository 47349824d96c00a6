package apperrors

import "errors"

// Error kinds shared by the store, the core packages and the controllers.
// Wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrDataUnavailable = errors.New("data unavailable")
)
