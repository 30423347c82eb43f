package request

import (
	"errors"
	"time"

	"gaya-booking/internal/usecase"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// CreatePaymentIntentRequest deliberately has no total field. The server
// recomputes the charge amount from stored data; a client cannot submit one.
type CreatePaymentIntentRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	Guests          int32     `json:"guests" binding:"required,min=1"`
	AddonIDs        []string  `json:"addon_ids"`
	Protection      bool      `json:"protection"`
	PaymentMethodID string    `json:"payment_method_id" binding:"required"`
}

func (r CreatePaymentIntentRequest) ToParams() (usecase.CreateIntentParams, error) {
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return usecase.CreateIntentParams{}, err
	}

	return usecase.CreateIntentParams{
		PropertyID:      r.PropertyID,
		StartDate:       start,
		EndDate:         end,
		Guests:          r.Guests,
		AddonIDs:        r.AddonIDs,
		Protection:      r.Protection,
		PaymentMethodID: r.PaymentMethodID,
	}, nil
}

type BookingDetails struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	Guests     int32     `json:"guests" binding:"required,min=1"`
	AddonIDs   []string  `json:"addon_ids"`
	Protection bool      `json:"protection"`
}

type FinalizePaymentRequest struct {
	BookingDetails BookingDetails `json:"booking_details" binding:"required"`
}

func (r FinalizePaymentRequest) ToDetails() (usecase.BookingDetails, error) {
	start, end, err := parseDateRange(r.BookingDetails.StartDate, r.BookingDetails.EndDate)
	if err != nil {
		return usecase.BookingDetails{}, err
	}

	return usecase.BookingDetails{
		PropertyID: r.BookingDetails.PropertyID,
		StartDate:  start,
		EndDate:    end,
		Guests:     r.BookingDetails.Guests,
		AddonIDs:   r.BookingDetails.AddonIDs,
		Protection: r.BookingDetails.Protection,
	}, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, end, nil
}
