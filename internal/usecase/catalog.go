package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"
)

type CatalogRepository interface {
	FindAllServices(ctx context.Context) ([]*readmodel.ServiceView, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, name string, priceCents int64, durationMin int32, commissionRate float64) error
	FindAllEmployees(ctx context.Context) ([]*readmodel.EmployeeView, error)
}

type UpdateServiceInput struct {
	Name           string
	PriceCents     int64
	DurationMin    int32
	CommissionRate float64
}

type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]*readmodel.ServiceView, error)
	ListEmployees(ctx context.Context) ([]*readmodel.EmployeeView, error)
	UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) error
	ServicesMaxAge() time.Duration
	EmployeesMaxAge() time.Duration
}

type catalogInteractor struct {
	repo         CatalogRepository
	cache        *cache.Cache
	servicesTTL  time.Duration
	employeesTTL time.Duration
}

func NewCatalogUsecase(repo CatalogRepository, c *cache.Cache, servicesTTL, employeesTTL time.Duration) CatalogUsecase {
	return &catalogInteractor{
		repo:         repo,
		cache:        c,
		servicesTTL:  servicesTTL,
		employeesTTL: employeesTTL,
	}
}

func (u *catalogInteractor) ListServices(ctx context.Context) ([]*readmodel.ServiceView, error) {
	return cache.GetOrCompute(ctx, u.cache, servicesCacheKey, u.servicesTTL, func(ctx context.Context) ([]*readmodel.ServiceView, error) {
		return u.repo.FindAllServices(ctx)
	})
}

func (u *catalogInteractor) ListEmployees(ctx context.Context) ([]*readmodel.EmployeeView, error) {
	return cache.GetOrCompute(ctx, u.cache, employeesCacheKey, u.employeesTTL, func(ctx context.Context) ([]*readmodel.EmployeeView, error) {
		return u.repo.FindAllEmployees(ctx)
	})
}

// UpdateService writes through and drops the cached service list so the next
// read sees the new price and rate.
func (u *catalogInteractor) UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) error {
	err := u.repo.UpdateService(ctx, id, input.Name, input.PriceCents, input.DurationMin, input.CommissionRate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrServiceNotFound)
		}
		return err
	}

	u.cache.InvalidateMany(ctx, servicesCacheKey)
	return nil
}

// ServicesMaxAge is exposed so the HTTP layer can align Cache-Control with
// the server-side TTL.
func (u *catalogInteractor) ServicesMaxAge() time.Duration {
	return u.servicesTTL
}

func (u *catalogInteractor) EmployeesMaxAge() time.Duration {
	return u.employeesTTL
}
