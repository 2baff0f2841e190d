package booking

import (
	"errors"

	"studiobooking/internal/modules/schedule"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrConflict                = errors.New("reservation conflict")
	ErrBlocked                 = errors.New("interval is blocked")
	ErrNotFound                = errors.New("reservation not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrLockUnavailable         = errors.New("timeline lock unavailable")
)

// BlockedError carries the resolver's reason code so callers can tell a
// closed day from a manual block.
type BlockedError struct {
	Reason schedule.Reason
}

func (e *BlockedError) Error() string { return "interval is blocked: " + string(e.Reason) }
func (e *BlockedError) Unwrap() error { return ErrBlocked }
