package service

import "errors"

var (
	ErrDuplicateUsername = errors.New("username is already in use")
	ErrDuplicateEmail    = errors.New("email is already in use")
	ErrDuplicateRoomName = errors.New("room name is already in use")

	ErrAccountNotFound = errors.New("account not found")
	ErrRoomNotFound    = errors.New("room not found")

	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrInvalidBooking  = errors.New("invalid booking reference")

	ErrInvalidCredentials = errors.New("invalid username or password")
)

// FieldError attributes a recoverable validation failure to one named input
// field, so callers can re-present the form with the error attached. It wraps
// one of the sentinel errors above; errors.Is still matches.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// FieldOf returns the field name an error is attributed to, or "" when the
// error carries no field attribution.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
