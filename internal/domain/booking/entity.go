package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrInvalidGuestCount      = errors.New("guest count must be positive")
	ErrNegativePrice          = errors.New("total price cannot be negative")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")
)

type Booking struct {
	id              uuid.UUID
	propertyID      uuid.UUID
	userID          uuid.UUID
	startDate       time.Time
	endDate         time.Time
	guests          int32
	totalPrice      int64
	status          Status
	paymentIntentID *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewConfirmed builds a booking that is already backed by a succeeded payment
// authorization. Bookings never start in a confirmed state any other way.
func NewConfirmed(
	propertyID, userID uuid.UUID,
	startDate, endDate time.Time,
	guests int32,
	totalPrice int64,
	paymentIntentID *string,
) (*Booking, error) {
	if !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}
	if guests <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:              uuid.New(),
		propertyID:      propertyID,
		userID:          userID,
		startDate:       startDate,
		endDate:         endDate,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          StatusUpcoming,
		paymentIntentID: paymentIntentID,
	}, nil
}

func Reconstruct(
	id, propertyID, userID uuid.UUID,
	startDate, endDate time.Time,
	guests int32,
	totalPrice int64,
	status Status,
	paymentIntentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		propertyID:      propertyID,
		userID:          userID,
		startDate:       startDate,
		endDate:         endDate,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          status,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStateTransition
	}
	b.status = next
	return nil
}

// Confirm moves a pending booking to upcoming. Callers must only invoke it
// after the payment has been independently confirmed as succeeded.
func (b *Booking) Confirm() error {
	return b.transition(StatusUpcoming)
}

// Complete is the stay-completion hook; the process that drives it lives
// outside this core.
func (b *Booking) Complete() error {
	return b.transition(StatusCompleted)
}

func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) PropertyID() uuid.UUID    { return b.propertyID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) StartDate() time.Time     { return b.startDate }
func (b *Booking) EndDate() time.Time       { return b.endDate }
func (b *Booking) Guests() int32            { return b.guests }
func (b *Booking) TotalPrice() int64        { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PaymentIntentID() *string { return b.paymentIntentID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
