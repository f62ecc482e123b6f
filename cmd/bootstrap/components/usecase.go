package components

import (
	"salon-booking/internal/infra/cache"
	"salon-booking/internal/infra/notify"
	"salon-booking/internal/infra/payment"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/timegrid"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUsecase,
		usecase.NewCommissionUsecase,
		NewAvailabilityUsecase,
		NewBookingUsecase,
		NewCatalogUsecase,
	),
)

func NewAvailabilityUsecase(
	occupancy usecase.OccupancyReader,
	shops usecase.BarbershopReader,
	c *cache.Cache,
	grid timegrid.Grid,
	cfg config.Config,
) usecase.AvailabilityUsecase {
	return usecase.NewAvailabilityUsecase(occupancy, shops, c, grid, cfg.Cache.AvailabilityTTL)
}

func NewBookingUsecase(
	bookings usecase.BookingRepository,
	customers usecase.CustomerWriter,
	services usecase.ServiceReader,
	refunds payment.RefundProvider,
	notifier notify.Notifier,
	c *cache.Cache,
	grid timegrid.Grid,
	clk clock.Clock,
) usecase.BookingUsecase {
	return usecase.NewBookingUsecase(bookings, customers, services, refunds, notifier, c, grid, clk)
}

func NewCatalogUsecase(repo usecase.CatalogRepository, c *cache.Cache, cfg config.Config) usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(repo, c, cfg.Cache.ServicesTTL, cfg.Cache.EmployeesTTL)
}
