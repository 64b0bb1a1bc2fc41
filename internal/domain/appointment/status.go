package appointment

import "github.com/atelierserenite/wellness-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition gates admin status updates. Cancelled and completed are
// terminal; pending may become anything; confirmed may not go back to
// pending.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return nil
	}

	switch from {
	case StatusPending:
		return nil
	case StatusConfirmed:
		if to == StatusPending {
			return httperr.ErrBusiness("invalid_state")
		}
		return nil
	default:
		return httperr.ErrBusiness("invalid_state")
	}
}

func InitialStatus() Status {
	return StatusPending
}
