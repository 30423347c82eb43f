package payment

// IntentStatus mirrors the processor-side lifecycle of an authorization
// attempt. Only StatusSucceeded may ever trigger a booking write.
type IntentStatus string

const (
	StatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	StatusRequiresAction        IntentStatus = "requires_action"
	StatusSucceeded             IntentStatus = "succeeded"
	StatusFailed                IntentStatus = "failed"
)

func (s IntentStatus) String() string {
	return string(s)
}

// IsTerminalFailure reports whether the processor has rejected the
// authorization outright, as opposed to asking for step-up verification.
func (s IntentStatus) IsTerminalFailure() bool {
	switch s {
	case StatusSucceeded, StatusRequiresAction, StatusRequiresPaymentMethod:
		return false
	default:
		return true
	}
}

// Intent is the processor's view of an authorization attempt. ClientSecret is
// handed to the caller solely to drive the processor's own challenge UI; it
// never authorizes anything on this side.
type Intent struct {
	ID           string
	Amount       int64
	Currency     string
	Status       IntentStatus
	ClientSecret string
}
