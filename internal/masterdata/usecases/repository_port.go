package usecases

import (
	"context"
	"errors"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrSupplierNotFound = errors.New("supplier not found")
)

type Pagination struct {
	Limit  int
	Offset int
}

type CustomerRepository interface {
	Create(ctx context.Context, customer masterdataDomain.Customer) error
	GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Customer, error)
	FindAll(ctx context.Context, pagination Pagination) ([]masterdataDomain.Customer, int, error)
	Update(ctx context.Context, customer masterdataDomain.Customer) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type LocationRepository interface {
	Create(ctx context.Context, location masterdataDomain.Location) error
	GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Location, error)
	FindAllByCustomer(ctx context.Context, customerID shareddomain.ID, pagination Pagination) ([]masterdataDomain.Location, int, error)
	Update(ctx context.Context, location masterdataDomain.Location) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier masterdataDomain.Supplier) error
	GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Supplier, error)
	FindAll(ctx context.Context, pagination Pagination) ([]masterdataDomain.Supplier, int, error)
	Update(ctx context.Context, supplier masterdataDomain.Supplier) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
