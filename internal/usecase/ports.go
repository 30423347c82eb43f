package usecase

import (
	"context"

	"gaya-booking/internal/domain/payment"
	"gaya-booking/internal/domain/property"
	"gaya-booking/internal/infra"

	"github.com/google/uuid"
)

// Outbound ports implemented by internal/infra adapters. Constructor-injected
// so tests can substitute fakes for the processor and storage boundaries.

type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
}

type AddonRepository interface {
	// Catalog returns the full addon price list keyed by addon id.
	Catalog(ctx context.Context) (map[string]int64, error)
}

// CreateIntentRequest carries everything the processor needs for one
// authorization attempt. IdempotencyKey makes transport-level retries of the
// create call safe: the processor deduplicates, so no double-authorization can
// occur.
type CreateIntentRequest struct {
	Amount          int64
	Currency        string
	PaymentMethodID string
	IdempotencyKey  string
	BookingRef      string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*payment.Intent, error)
	// RetrieveIntent re-reads the intent's current status from the processor.
	// Used at finalize time so a client claim of success is never trusted.
	RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error)
}

type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func isDuplicateKey(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}

func isUpstreamUnavailable(err error) bool {
	return infra.IsKind(err, infra.KindUpstreamUnavailable)
}

func isUpstreamDeclined(err error) bool {
	return infra.IsKind(err, infra.KindUpstreamDeclined)
}
