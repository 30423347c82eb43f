package response

import (
	"gaya-booking/internal/domain/pricing"
	"gaya-booking/internal/usecase"

	"github.com/google/uuid"
)

type PaymentIntentResponse struct {
	IntentID     string            `json:"intent_id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	BookingID    *uuid.UUID        `json:"booking_id,omitempty"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}

type FinalizeResponse struct {
	Success   bool      `json:"success"`
	BookingID uuid.UUID `json:"booking_id"`
}

func NewPaymentIntentResponse(result *usecase.CreateIntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		IntentID:     result.IntentID,
		ClientSecret: result.ClientSecret,
		Status:       string(result.Status),
		BookingID:    result.BookingID,
		Breakdown:    result.Breakdown,
	}
}

func NewFinalizeResponse(result *usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		Success:   true,
		BookingID: result.BookingID,
	}
}
