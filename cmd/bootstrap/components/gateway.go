package components

import (
	"context"

	"gaya-booking/internal/infra/objectstore"
	"gaya-booking/internal/infra/payments"
	"gaya-booking/internal/pkg/config"
	"gaya-booking/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			NewObjectStore,
			fx.As(new(usecase.ObjectStore)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payments.StripeGateway {
	return payments.NewStripeGateway(cfg.Payment)
}

func NewObjectStore(cfg config.Config) (*objectstore.S3Store, error) {
	return objectstore.NewS3Store(context.Background(), cfg.Storage)
}
