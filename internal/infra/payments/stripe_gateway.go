package payments

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gaya-booking/internal/domain/payment"
	"gaya-booking/internal/infra"
	"gaya-booking/internal/pkg/config"
	"gaya-booking/internal/usecase"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway drives the external payment processor. Retries happen only at
// the transport level and always reuse the same idempotency key, so the
// processor deduplicates and a charge is never issued twice.
type StripeGateway struct {
	api         *client.API
	maxAttempts int
	backoff     time.Duration
	sleep       func(time.Duration)
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	attempts := cfg.MaxTransportRetries
	if attempts < 1 {
		attempts = 1
	}

	return &StripeGateway{
		api:         api,
		maxAttempts: attempts,
		backoff:     cfg.RetryBackoff,
		sleep:       time.Sleep,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req usecase.CreateIntentRequest) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	if req.BookingRef != "" {
		params.AddMetadata("booking_ref", req.BookingRef)
	}

	var pi *stripe.PaymentIntent
	err := g.withTransportRetry(ctx, "payment_intent.create", func() error {
		var callErr error
		pi, callErr = g.api.PaymentIntents.New(params)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	var pi *stripe.PaymentIntent
	err := g.withTransportRetry(ctx, "payment_intent.retrieve", func() error {
		var callErr error
		pi, callErr = g.api.PaymentIntents.Get(id, params)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) withTransportRetry(ctx context.Context, op string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		lastErr = call()
		if lastErr == nil {
			return nil
		}
		if !isTransportErr(lastErr) {
			return mapStripeErr(op, lastErr)
		}

		slog.Warn("payment processor transport error",
			"operation", op,
			"attempt", attempt,
			"error", lastErr.Error(),
		)
		if attempt < g.maxAttempts {
			select {
			case <-ctx.Done():
				return infra.WrapErr(infra.KindUpstreamUnavailable, op+" cancelled", ctx.Err())
			default:
			}
			g.sleep(g.backoff * time.Duration(attempt))
		}
	}

	return infra.WrapErr(infra.KindUpstreamUnavailable, op+" failed after transport retries", lastErr)
}

// isTransportErr separates "the processor never answered" from a business
// decision the processor made. Only the former is retried.
func isTransportErr(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		// Connection-level failure before an HTTP response existed.
		return true
	}
	return stripeErr.HTTPStatusCode >= http.StatusInternalServerError
}

// mapStripeErr classifies a processor rejection. Only card-level errors are a
// genuine decline; other client errors (bad parameters, bad credentials) are a
// fault in this integration and must not read as a decline to the cardholder.
func mapStripeErr(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return infra.WrapErr(infra.KindUpstreamDeclined, op+" declined", err)
	}
	return infra.WrapErr(infra.KindUpstreamFailure, op+" rejected by processor", err)
}

func fromStripeIntent(pi *stripe.PaymentIntent) *payment.Intent {
	return &payment.Intent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       mapIntentStatus(pi.Status),
		ClientSecret: pi.ClientSecret,
	}
}

func mapIntentStatus(s stripe.PaymentIntentStatus) payment.IntentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return payment.StatusSucceeded
	case stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusProcessing:
		return payment.StatusRequiresAction
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		return payment.StatusRequiresPaymentMethod
	default:
		return payment.StatusFailed
	}
}
