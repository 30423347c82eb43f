package components

import (
	repo_impl "gaya-booking/internal/infra/repository"
	"gaya-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(usecase.PropertyRepository)),
		),
		fx.Annotate(
			repo_impl.NewAddonRepository,
			fx.As(new(usecase.AddonRepository)),
		),
	),
)
