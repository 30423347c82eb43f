package booking

type Status string

const (
	// StatusPending is a reservation awaiting payment confirmation.
	StatusPending Status = "pending"
	// StatusUpcoming is a confirmed, paid reservation.
	StatusUpcoming Status = "upcoming"
	// StatusCompleted is set by the stay-completion process after checkout.
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the booking state machine. pending→upcoming happens
// only on a confirmed payment, upcoming→completed only via the external
// stay-completion hook, and cancellation is reachable from pending/upcoming.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusUpcoming || next == StatusCancelled
	case StatusUpcoming:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
