package request

import (
	"gaya-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	Guests          int32     `json:"guests" binding:"required,min=1"`
	TotalPrice      int64     `json:"total_price" binding:"required"`
	PaymentIntentID string    `json:"payment_intent_id" binding:"required"`
}

func (r CreateBookingRequest) ToParams() (usecase.ConfirmBookingParams, error) {
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return usecase.ConfirmBookingParams{}, err
	}

	return usecase.ConfirmBookingParams{
		PropertyID:      r.PropertyID,
		StartDate:       start,
		EndDate:         end,
		Guests:          r.Guests,
		TotalPrice:      r.TotalPrice,
		PaymentIntentID: r.PaymentIntentID,
	}, nil
}
