package engine

import "errors"

// The failure taxonomy surfaced to the gateway. Every error here maps to a
// distinct user-displayable outcome; none are retried internally.
var (
	// ErrUnauthenticated means no verified identity accompanied the request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrProfileIncomplete means the tenant has no profile yet, which is a
	// precondition for booking and reporting.
	ErrProfileIncomplete = errors.New("user profile is incomplete")
	// ErrSlotTaken is the terminal outcome of losing the booking race.
	ErrSlotTaken = errors.New("slot already reserved by someone else")
	// ErrNotFound means the reservation or report does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the requester does not own the record or lacks the
	// required role.
	ErrForbidden = errors.New("operation not permitted")
	// ErrAlreadyFinalized means a finalized reservation cannot be cancelled.
	ErrAlreadyFinalized = errors.New("reservation already finalized")
)

// ValidationError reports a missing or malformed request field. It is
// always raised before any store access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
