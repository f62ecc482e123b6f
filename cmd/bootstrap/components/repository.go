package components

import (
	repo_impl "salon-booking/internal/infra/repository"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.OccupancyReader)),
		),
		fx.Annotate(
			repo_impl.NewBarbershopRepository,
			fx.As(new(usecase.BarbershopReader)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(usecase.CatalogRepository)),
			fx.As(new(usecase.ServiceReader)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(usecase.CustomerWriter)),
		),
		fx.Annotate(
			repo_impl.NewCommissionRepository,
			fx.As(new(usecase.CommissionReader)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserReader)),
		),
	),
)
