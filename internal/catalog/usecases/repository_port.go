package usecases

import (
	"context"
	"errors"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

var (
	ErrCategoryNotFound = errors.New("service category not found")
	ErrTemplateNotFound = errors.New("service template not found")
	ErrVersionConflict  = errors.New("service template version conflict")
)

type Pagination struct {
	Limit  int
	Offset int
}

type CategoryRepository interface {
	Create(ctx context.Context, category catalogdomain.ServiceCategory) error
	GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceCategory, error)
	FindAll(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceCategory, int, error)
	Update(ctx context.Context, category catalogdomain.ServiceCategory) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type TemplateRepository interface {
	Create(ctx context.Context, template catalogdomain.ServiceTemplate) error
	GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceTemplate, error)
	FindAll(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error)
	FindAllByCategory(ctx context.Context, categoryID shareddomain.ID, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error)
	// Update persists the template only when the stored version still
	// matches expectedVersion, returning ErrVersionConflict otherwise.
	Update(ctx context.Context, template catalogdomain.ServiceTemplate, expectedVersion shareddomain.Version) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
