package usecase

import (
	"context"
	"errors"
	"time"

	"gaya-booking/internal/domain/payment"
	"gaya-booking/internal/domain/pricing"
	"gaya-booking/internal/domain/property"
	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPaymentDeclined     = errors.New("payment declined by processor")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAmountMismatch      = errors.New("intent amount does not match computed total")
	ErrUpstreamUnavailable = errors.New("payment processor unavailable")
)

type CreateIntentParams struct {
	PropertyID      uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Guests          int32
	AddonIDs        []string
	Protection      bool
	PaymentMethodID string
}

type CreateIntentResult struct {
	IntentID     string
	ClientSecret string
	Status       payment.IntentStatus
	BookingID    *uuid.UUID
	Breakdown    pricing.Breakdown
}

// BookingDetails is what the client re-submits at finalize time. Only the
// stay parameters are taken from it; the price is recomputed from storage.
type BookingDetails struct {
	PropertyID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Guests     int32
	AddonIDs   []string
	Protection bool
}

type FinalizeResult struct {
	BookingID uuid.UUID
}

// ConfirmBookingParams backs the direct booking endpoint. TotalPrice is the
// client-displayed figure and is only cross-checked against the verified
// intent amount; the intent amount is what gets stored.
type ConfirmBookingParams struct {
	PropertyID      uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Guests          int32
	TotalPrice      int64
	PaymentIntentID string
}

type PaymentUseCase interface {
	CreateIntent(ctx context.Context, identity user.Identity, params CreateIntentParams) (*CreateIntentResult, error)
	Finalize(ctx context.Context, identity user.Identity, intentID string, details BookingDetails) (*FinalizeResult, error)
	ConfirmBooking(ctx context.Context, identity user.Identity, params ConfirmBookingParams) (*FinalizeResult, error)
}

type paymentUseCaseImpl struct {
	propertyRepo PropertyRepository
	addonRepo    AddonRepository
	gateway      PaymentGateway
	bookingUC    BookingUseCase
}

func NewPaymentUseCase(
	propertyRepo PropertyRepository,
	addonRepo AddonRepository,
	gateway PaymentGateway,
	bookingUC BookingUseCase,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		propertyRepo: propertyRepo,
		addonRepo:    addonRepo,
		gateway:      gateway,
		bookingUC:    bookingUC,
	}
}

// CreateIntent computes the authoritative charge amount from the stored
// property price, requests an authorization, and maps the processor's answer
// onto the booking state machine. A client-submitted total never reaches this
// path; the request DTO does not even carry one.
func (p *paymentUseCaseImpl) CreateIntent(ctx context.Context, identity user.Identity, params CreateIntentParams) (*CreateIntentResult, error) {
	breakdown, prop, err := p.computeBreakdown(ctx, params.PropertyID, params.StartDate, params.EndDate, params.AddonIDs, params.Protection)
	if err != nil {
		return nil, err
	}

	intent, err := p.gateway.CreateIntent(ctx, CreateIntentRequest{
		Amount:          breakdown.Total,
		Currency:        prop.Currency,
		PaymentMethodID: params.PaymentMethodID,
		IdempotencyKey:  uuid.New().String(),
		BookingRef:      params.PropertyID.String(),
	})
	if err != nil {
		return nil, p.mapGatewayErr(err)
	}

	result := &CreateIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		Breakdown:    breakdown,
	}

	switch {
	case intent.Status == payment.StatusSucceeded:
		bk, err := p.bookingUC.CreateConfirmedBooking(ctx, CreateConfirmedBookingParams{
			PropertyID:      params.PropertyID,
			UserID:          identity.ID,
			StartDate:       params.StartDate,
			EndDate:         params.EndDate,
			Guests:          params.Guests,
			TotalPrice:      intent.Amount,
			PaymentIntentID: &intent.ID,
		})
		if err != nil {
			return nil, err
		}
		id := bk.ID()
		result.BookingID = &id
		return result, nil

	case intent.Status.IsTerminalFailure():
		return nil, ErrPaymentDeclined

	default:
		// Step-up: the caller completes the processor's challenge with the
		// client secret, then calls Finalize. No booking exists yet.
		return result, nil
	}
}

// Finalize closes the step-up flow. The intent status is re-read from the
// processor; a client claim of success is worthless on its own. Calling it
// twice for the same intent returns the same booking thanks to the
// (userID, paymentIntentID) idempotency key.
func (p *paymentUseCaseImpl) Finalize(ctx context.Context, identity user.Identity, intentID string, details BookingDetails) (*FinalizeResult, error) {
	intent, err := p.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, p.mapGatewayErr(err)
	}

	if intent.Status != payment.StatusSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	breakdown, _, err := p.computeBreakdown(ctx, details.PropertyID, details.StartDate, details.EndDate, details.AddonIDs, details.Protection)
	if err != nil {
		return nil, err
	}

	if breakdown.Total != intent.Amount {
		return nil, ErrAmountMismatch
	}

	bk, err := p.bookingUC.CreateConfirmedBooking(ctx, CreateConfirmedBookingParams{
		PropertyID:      details.PropertyID,
		UserID:          identity.ID,
		StartDate:       details.StartDate,
		EndDate:         details.EndDate,
		Guests:          details.Guests,
		TotalPrice:      intent.Amount,
		PaymentIntentID: &intent.ID,
	})
	if err != nil {
		return nil, err
	}

	return &FinalizeResult{BookingID: bk.ID()}, nil
}

// ConfirmBooking persists a reservation for an already-authorized intent.
// The intent status and amount are verified against the processor first, so a
// forged or unpaid intent id can never produce an upcoming booking.
func (p *paymentUseCaseImpl) ConfirmBooking(ctx context.Context, identity user.Identity, params ConfirmBookingParams) (*FinalizeResult, error) {
	intent, err := p.gateway.RetrieveIntent(ctx, params.PaymentIntentID)
	if err != nil {
		return nil, p.mapGatewayErr(err)
	}

	if intent.Status != payment.StatusSucceeded {
		return nil, ErrPaymentNotCompleted
	}

	if params.TotalPrice != intent.Amount {
		return nil, ErrAmountMismatch
	}

	bk, err := p.bookingUC.CreateConfirmedBooking(ctx, CreateConfirmedBookingParams{
		PropertyID:      params.PropertyID,
		UserID:          identity.ID,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		Guests:          params.Guests,
		TotalPrice:      intent.Amount,
		PaymentIntentID: &intent.ID,
	})
	if err != nil {
		return nil, err
	}

	return &FinalizeResult{BookingID: bk.ID()}, nil
}

func (p *paymentUseCaseImpl) computeBreakdown(
	ctx context.Context,
	propertyID uuid.UUID,
	startDate, endDate time.Time,
	addonIDs []string,
	protection bool,
) (pricing.Breakdown, *property.Property, error) {
	prop, err := p.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if isNotFound(err) {
			return pricing.Breakdown{}, nil, ErrPropertyNotFound
		}
		return pricing.Breakdown{}, nil, errs.Wrap(err, "failed to find property")
	}

	catalog, err := p.addonRepo.Catalog(ctx)
	if err != nil {
		return pricing.Breakdown{}, nil, errs.Wrap(err, "failed to load addon catalog")
	}

	base := prop.PricePerNight * pricing.Nights(startDate, endDate)
	breakdown := pricing.Calculate(base, addonIDs, catalog, protection)

	return breakdown, prop, nil
}

func (p *paymentUseCaseImpl) mapGatewayErr(err error) error {
	switch {
	case isUpstreamDeclined(err):
		return errs.Mark(err, ErrPaymentDeclined)
	case isUpstreamUnavailable(err):
		return errs.Mark(err, ErrUpstreamUnavailable)
	default:
		return errs.Wrap(err, "payment gateway call failed")
	}
}
