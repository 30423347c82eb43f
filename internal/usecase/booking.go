package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gaya-booking/internal/domain/booking"
	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/clock"
	"gaya-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")
	ErrPersistenceFailed      = errors.New("booking persistence failed after payment success")
	ErrDomainValidationFailed = errors.New("domain validation failed")
)

// Bounded retry budget for the booking write after a confirmed payment.
// The charge is never retried; only the write is.
const (
	maxWriteAttempts  = 4
	writeRetryBackoff = 250 * time.Millisecond
)

type BookingRepository interface {
	// CreateIfAbsent inserts the booking unless one already exists for the
	// same (userID, paymentIntentID) pair, relying on the store's atomic
	// insert-if-absent semantics. It returns the stored booking either way.
	CreateIfAbsent(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type CreateConfirmedBookingParams struct {
	PropertyID      uuid.UUID
	UserID          uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Guests          int32
	TotalPrice      int64
	PaymentIntentID *string
}

type BookingUseCase interface {
	CreateConfirmedBooking(ctx context.Context, params CreateConfirmedBookingParams) (*booking.Booking, error)
	GetBooking(ctx context.Context, identity user.Identity, id uuid.UUID) (*booking.Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	CancelBooking(ctx context.Context, identity user.Identity, id uuid.UUID) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	clock       clock.Clock
	sleep       func(time.Duration)
}

func NewBookingUseCase(bookingRepo BookingRepository, clock clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		clock:       clock,
		sleep:       time.Sleep,
	}
}

// CreateConfirmedBooking is the single point where a successful payment
// becomes a durable reservation. Once the payment is confirmed the write must
// eventually succeed: transient storage failures are retried with the same
// idempotency key until the budget is exhausted, after which the gap between
// "processor says paid" and "no booking stored" is surfaced for
// reconciliation.
func (u *bookingUseCaseImpl) CreateConfirmedBooking(ctx context.Context, params CreateConfirmedBookingParams) (*booking.Booking, error) {
	entity, err := booking.NewConfirmed(
		params.PropertyID,
		params.UserID,
		params.StartDate,
		params.EndDate,
		params.Guests,
		params.TotalPrice,
		params.PaymentIntentID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		stored, err := u.bookingRepo.CreateIfAbsent(ctx, entity)
		if err == nil {
			// Stand-in for the confirmation notification hook.
			slog.Info("booking confirmed",
				"booking_id", stored.ID(),
				"user_id", stored.UserID(),
				"payment_intent_id", deref(stored.PaymentIntentID()),
			)
			return stored, nil
		}
		lastErr = err

		slog.Warn("booking write failed after confirmed payment, retrying",
			"attempt", attempt,
			"payment_intent_id", deref(params.PaymentIntentID),
			"error", err.Error(),
		)
		if attempt < maxWriteAttempts {
			u.sleep(writeRetryBackoff * time.Duration(attempt))
		}
	}

	// Operator-level signal: the payment stays succeeded at the processor but
	// no booking row exists. Background reconciliation picks these up.
	slog.Error("booking persistence exhausted retry budget after successful payment",
		"user_id", params.UserID,
		"property_id", params.PropertyID,
		"payment_intent_id", deref(params.PaymentIntentID),
		"total_price", params.TotalPrice,
		"error", lastErr.Error(),
	)
	return nil, errs.Mark(lastErr, ErrPersistenceFailed)
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, identity user.Identity, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.IsOwnedBy(identity.ID) && !identity.IsAdmin() {
		return nil, ErrBookingNotFound
	}

	return entity, nil
}

func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user bookings")
	}

	return bookings, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, identity user.Identity, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.IsOwnedBy(identity.ID) && !identity.IsAdmin() {
		return nil, ErrBookingNotFound
	}

	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Wrap(err, "failed to update booking status")
	}

	slog.Info("booking cancelled", "booking_id", id, "user_id", identity.ID)

	return entity, nil
}

// CompleteBooking is the stay-completion hook. The scheduler that decides when
// to fire it is outside this core, but the end-date guard stays here so a
// misbehaving caller cannot complete a stay that is still in progress.
func (u *bookingUseCaseImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.clock.Now().Before(entity.EndDate()) {
		return nil, errs.Mark(errs.New("stay has not ended yet"), ErrInvalidStateTransition)
	}

	if err := entity.Complete(); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Wrap(err, "failed to update booking status")
	}

	slog.Info("booking completed", "booking_id", id)

	return entity, nil
}

func (u *bookingUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return entity, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
