package response

import (
	"time"

	"gaya-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	UserID          uuid.UUID `json:"user_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Guests          int32     `json:"guests"`
	TotalPrice      int64     `json:"total_price"`
	Status          string    `json:"status"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID(),
		PropertyID:      b.PropertyID(),
		UserID:          b.UserID(),
		StartDate:       b.StartDate().Format(dateLayout),
		EndDate:         b.EndDate().Format(dateLayout),
		Guests:          b.Guests(),
		TotalPrice:      b.TotalPrice(),
		Status:          b.Status().String(),
		PaymentIntentID: b.PaymentIntentID(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func NewBookingListResponse(bookings []*booking.Booking) BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, NewBookingResponse(b))
	}
	return BookingListResponse{Bookings: items}
}
