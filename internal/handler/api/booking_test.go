//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gaya-booking/internal/domain/booking"
	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/handler/api"
	"gaya-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingUseCase struct {
	booking  *booking.Booking
	bookings []*booking.Booking
	err      error
}

func (s *stubBookingUseCase) CreateConfirmedBooking(context.Context, usecase.CreateConfirmedBookingParams) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingUseCase) GetBooking(context.Context, user.Identity, uuid.UUID) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingUseCase) GetUserBookings(context.Context, uuid.UUID) ([]*booking.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingUseCase) CancelBooking(context.Context, user.Identity, uuid.UUID) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingUseCase) CompleteBooking(context.Context, uuid.UUID) (*booking.Booking, error) {
	return s.booking, s.err
}

func newBookingRouter(bookingStub *stubBookingUseCase, paymentStub *stubPaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withTestIdentity())

	handler := api.NewBookingHandler(bookingStub, paymentStub)
	router.POST("/bookings", handler.CreateBooking)
	router.GET("/bookings", handler.GetUserBookings)
	router.GET("/bookings/:id", handler.GetBooking)
	router.POST("/bookings/:id/cancel", handler.CancelBooking)
	return router
}

func testBooking(t *testing.T) *booking.Booking {
	t.Helper()
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	intentID := "pi_test"
	b, err := booking.NewConfirmed(uuid.New(), testIdentity.ID, start, start.AddDate(0, 0, 2), 2, 24960, &intentID)
	require.NoError(t, err)
	return b
}

func TestCreateBookingHandler(t *testing.T) {
	body := map[string]any{
		"property_id":       uuid.New().String(),
		"start_date":        "2026-07-10",
		"end_date":          "2026-07-12",
		"guests":            2,
		"total_price":       24960,
		"payment_intent_id": "pi_test",
	}

	t.Run("success returns 201", func(t *testing.T) {
		bookingID := uuid.New()
		paymentStub := &stubPaymentUseCase{confirmResult: &usecase.FinalizeResult{BookingID: bookingID}}
		router := newBookingRouter(&stubBookingUseCase{}, paymentStub)

		rec := performJSON(t, router, http.MethodPost, "/bookings", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, bookingID.String(), resp["booking_id"])
	})

	t.Run("missing intent id returns 400", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, &stubPaymentUseCase{})
		incomplete := map[string]any{
			"property_id": uuid.New().String(),
			"start_date":  "2026-07-10",
			"end_date":    "2026-07-12",
			"guests":      2,
			"total_price": 24960,
		}
		rec := performJSON(t, router, http.MethodPost, "/bookings", incomplete)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unpaid intent", err: usecase.ErrPaymentNotCompleted, expectCode: http.StatusBadRequest},
			{name: "tampered total", err: usecase.ErrAmountMismatch, expectCode: http.StatusUnprocessableEntity},
			{name: "processor down", err: usecase.ErrUpstreamUnavailable, expectCode: http.StatusBadGateway},
			{name: "persistence failed", err: usecase.ErrPersistenceFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				router := newBookingRouter(&stubBookingUseCase{}, &stubPaymentUseCase{confirmErr: tt.err})
				rec := performJSON(t, router, http.MethodPost, "/bookings", body)
				assert.Equal(t, tt.expectCode, rec.Code)
			})
		}
	})
}

func TestGetBookingHandler(t *testing.T) {
	t.Run("success returns the booking", func(t *testing.T) {
		b := testBooking(t)
		router := newBookingRouter(&stubBookingUseCase{booking: b}, &stubPaymentUseCase{})

		rec := performJSON(t, router, http.MethodGet, "/bookings/"+b.ID().String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, b.ID().String(), resp["id"])
		assert.Equal(t, "upcoming", resp["status"])
		assert.Equal(t, "2026-07-10", resp["start_date"])
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, &stubPaymentUseCase{})
		rec := performJSON(t, router, http.MethodGet, "/bookings/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found returns 404", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{err: usecase.ErrBookingNotFound}, &stubPaymentUseCase{})
		rec := performJSON(t, router, http.MethodGet, "/bookings/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetUserBookingsHandler(t *testing.T) {
	b := testBooking(t)
	router := newBookingRouter(&stubBookingUseCase{bookings: []*booking.Booking{b}}, &stubPaymentUseCase{})

	rec := performJSON(t, router, http.MethodGet, "/bookings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items := resp["bookings"].([]any)
	require.Len(t, items, 1)
}

func TestCancelBookingHandler(t *testing.T) {
	t.Run("cancelled booking comes back", func(t *testing.T) {
		b := testBooking(t)
		require.NoError(t, b.Cancel())
		router := newBookingRouter(&stubBookingUseCase{booking: b}, &stubPaymentUseCase{})

		rec := performJSON(t, router, http.MethodPost, "/bookings/"+b.ID().String()+"/cancel", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "cancelled", resp["status"])
	})

	t.Run("terminal state returns 409", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{err: usecase.ErrInvalidStateTransition}, &stubPaymentUseCase{})
		rec := performJSON(t, router, http.MethodPost, "/bookings/"+uuid.New().String()+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("someone else's booking returns 404", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{err: usecase.ErrBookingNotFound}, &stubPaymentUseCase{})
		rec := performJSON(t, router, http.MethodPost, "/bookings/"+uuid.New().String()+"/cancel", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
