package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/cache"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const categoryCacheTTL = 5 * time.Minute

type CategoryService interface {
	CreateCategory(ctx context.Context, category catalogdomain.ServiceCategory) error
	GetCategory(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceCategory, error)
	ListCategories(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceCategory, int, error)
	UpdateCategory(ctx context.Context, category catalogdomain.ServiceCategory) error
	DeleteCategory(ctx context.Context, id shareddomain.ID) error
}

func NewCategoryService(repository CategoryRepository, cache cache.Cache) *SimpleCategoryService {
	return &SimpleCategoryService{
		repository: repository,
		cache:      cache,
	}
}

var _ CategoryService = (*SimpleCategoryService)(nil)

type SimpleCategoryService struct {
	repository CategoryRepository
	cache      cache.Cache
}

func (s *SimpleCategoryService) CreateCategory(ctx context.Context, category catalogdomain.ServiceCategory) error {
	err := s.repository.Create(ctx, category)
	if err != nil {
		slog.Error("creating service category", slog.String("error", err.Error()))
		return fmt.Errorf("creating service category: %w", err)
	}

	slog.Info("service category created successfully",
		slog.String("id", category.ID.String()),
		slog.String("name", string(category.Name)))

	return nil
}

func (s *SimpleCategoryService) GetCategory(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceCategory, error) {
	value, err := s.cache.GetOrSet(ctx, categoryCacheKey(id), categoryCacheTTL, func() (any, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return catalogdomain.ServiceCategory{}, ErrCategoryNotFound
		}
		slog.Error("getting service category", slog.String("error", err.Error()))
		return catalogdomain.ServiceCategory{}, fmt.Errorf("getting service category: %w", err)
	}

	category, ok := value.(catalogdomain.ServiceCategory)
	if !ok {
		return catalogdomain.ServiceCategory{}, fmt.Errorf("unexpected cached value type %T", value)
	}

	return category, nil
}

func (s *SimpleCategoryService) ListCategories(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceCategory, int, error) {
	categories, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing service categories", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing service categories: %w", err)
	}

	return categories, total, nil
}

func (s *SimpleCategoryService) UpdateCategory(ctx context.Context, category catalogdomain.ServiceCategory) error {
	_, err := s.repository.GetByID(ctx, category.ID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting service category: %w", err)
	}

	err = s.repository.Update(ctx, category)
	if err != nil {
		slog.Error("updating service category", slog.String("error", err.Error()))
		return fmt.Errorf("updating service category: %w", err)
	}

	s.cache.Delete(ctx, categoryCacheKey(category.ID))

	slog.Info("service category updated successfully",
		slog.String("id", category.ID.String()))

	return nil
}

func (s *SimpleCategoryService) DeleteCategory(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		slog.Error("deleting service category", slog.String("error", err.Error()))
		return fmt.Errorf("deleting service category: %w", err)
	}

	s.cache.Delete(ctx, categoryCacheKey(id))

	slog.Info("service category deleted successfully", slog.String("id", id.String()))

	return nil
}

func categoryCacheKey(id shareddomain.ID) string {
	return fmt.Sprintf("service_category:%s", id)
}
