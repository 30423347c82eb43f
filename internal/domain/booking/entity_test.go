//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gaya-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDates() (time.Time, time.Time) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 3)
}

func TestNewConfirmed(t *testing.T) {
	start, end := validDates()
	intentID := "pi_test_123"

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewConfirmed(uuid.New(), uuid.New(), start, end, 2, 15760, &intentID)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusUpcoming, actual.Status())
		assert.Equal(t, int64(15760), actual.TotalPrice())
		require.NotNil(t, actual.PaymentIntentID())
		assert.Equal(t, intentID, *actual.PaymentIntentID())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			start  time.Time
			end    time.Time
			guests int32
			price  int64
			errIs  error
		}{
			{name: "end before start", start: end, end: start, guests: 2, price: 100, errIs: booking.ErrInvalidDateRange},
			{name: "end equals start", start: start, end: start, guests: 2, price: 100, errIs: booking.ErrInvalidDateRange},
			{name: "zero guests", start: start, end: end, guests: 0, price: 100, errIs: booking.ErrInvalidGuestCount},
			{name: "negative guests", start: start, end: end, guests: -1, price: 100, errIs: booking.ErrInvalidGuestCount},
			{name: "negative price", start: start, end: end, guests: 2, price: -1, errIs: booking.ErrNegativePrice},
			{name: "zero price is allowed", start: start, end: end, guests: 2, price: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := booking.NewConfirmed(uuid.New(), uuid.New(), tt.start, tt.end, tt.guests, tt.price, nil)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	all := []booking.Status{
		booking.StatusPending,
		booking.StatusUpcoming,
		booking.StatusCompleted,
		booking.StatusCancelled,
	}

	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:  {booking.StatusUpcoming, booking.StatusCancelled},
		booking.StatusUpcoming: {booking.StatusCompleted, booking.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, ok := range allowed[from] {
				if ok == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingLifecycle(t *testing.T) {
	start, end := validDates()

	newUpcoming := func(t *testing.T) *booking.Booking {
		b, err := booking.NewConfirmed(uuid.New(), uuid.New(), start, end, 2, 100, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("upcoming completes", func(t *testing.T) {
		b := newUpcoming(t)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("upcoming cancels", func(t *testing.T) {
		b := newUpcoming(t)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := newUpcoming(t)
		require.NoError(t, b.Complete())
		assert.ErrorIs(t, b.Cancel(), booking.ErrInvalidStateTransition)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := newUpcoming(t)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Complete(), booking.ErrInvalidStateTransition)
		assert.ErrorIs(t, b.Cancel(), booking.ErrInvalidStateTransition)
	})

	t.Run("pending confirms", func(t *testing.T) {
		b := booking.Reconstruct(
			uuid.New(), uuid.New(), uuid.New(),
			start, end, 2, 100,
			booking.StatusPending, nil,
			time.Now(), time.Now(),
		)
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusUpcoming, b.Status())
	})
}

func TestIsOwnedBy(t *testing.T) {
	start, end := validDates()
	owner := uuid.New()

	b, err := booking.NewConfirmed(uuid.New(), owner, start, end, 1, 100, nil)
	require.NoError(t, err)

	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}
