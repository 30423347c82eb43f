package components

import (
	"gaya-booking/internal/pkg/clock"
	"gaya-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewUploadUseCase,
	),
)
