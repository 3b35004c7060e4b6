package usecases_test

import (
	"context"
	"errors"
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CategoryService", func() {
	var service catalogUsecases.CategoryService
	var mockRepository *mockCategoryRepository
	var fakeCache *fakeCacheClient

	BeforeEach(func() {
		mockRepository = newMockCategoryRepository()
		fakeCache = newFakeCacheClient()
		service = catalogUsecases.NewCategoryService(mockRepository, fakeCache)
	})

	Context("GetCategory", func() {
		var category catalogdomain.ServiceCategory

		BeforeEach(func() {
			category, _ = catalogdomain.NewServiceCategoryBuilder().
				WithName("electrical").
				WithDisplayName("Electrical").
				WithColor("#f59e0b").
				Build()
			mockRepository.categories[category.ID.String()] = category
		})

		When("the category exists", func() {
			It("should return it and cache the lookup", func() {
				result, err := service.GetCategory(context.Background(), category.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(category.ID))

				_, err = service.GetCategory(context.Background(), category.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepository.getByIDCalls).To(Equal(1))
			})
		})

		When("the category does not exist", func() {
			It("should return ErrCategoryNotFound", func() {
				_, err := service.GetCategory(context.Background(), shareddomain.ID("missing"))
				Expect(err).To(MatchError(catalogUsecases.ErrCategoryNotFound))
			})
		})
	})

	Context("UpdateCategory", func() {
		var category catalogdomain.ServiceCategory

		BeforeEach(func() {
			category, _ = catalogdomain.NewServiceCategoryBuilder().
				WithName("electrical").
				WithDisplayName("Electrical").
				Build()
			mockRepository.categories[category.ID.String()] = category
		})

		It("should invalidate the cached entry", func() {
			_, err := service.GetCategory(context.Background(), category.ID)
			Expect(err).NotTo(HaveOccurred())

			category.DisplayName = "Electrical Systems"
			Expect(service.UpdateCategory(context.Background(), category)).To(Succeed())

			result, err := service.GetCategory(context.Background(), category.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.DisplayName).To(Equal(shareddomain.DisplayName("Electrical Systems")))
		})

		When("the category does not exist", func() {
			It("should return ErrCategoryNotFound", func() {
				missing := category
				missing.ID = "missing"
				err := service.UpdateCategory(context.Background(), missing)
				Expect(err).To(MatchError(catalogUsecases.ErrCategoryNotFound))
			})
		})
	})

	Context("DeleteCategory", func() {
		var category catalogdomain.ServiceCategory

		BeforeEach(func() {
			category, _ = catalogdomain.NewServiceCategoryBuilder().
				WithName("electrical").
				Build()
			mockRepository.categories[category.ID.String()] = category
		})

		It("should delete and drop the cached entry", func() {
			_, err := service.GetCategory(context.Background(), category.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteCategory(context.Background(), category.ID)).To(Succeed())
			Expect(fakeCache.entries).NotTo(HaveKey("service_category:" + category.ID.String()))
		})
	})

	Context("ListCategories", func() {
		When("the repository fails", func() {
			BeforeEach(func() {
				mockRepository.findAllError = errors.New("database error")
			})

			It("should return the error", func() {
				_, _, err := service.ListCategories(context.Background(), catalogUsecases.Pagination{Limit: 10})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("listing service categories"))
			})
		})
	})
})

type mockCategoryRepository struct {
	categories   map[string]catalogdomain.ServiceCategory
	getByIDCalls int
	findAllError error
	updateError  error
	deleteError  error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories: make(map[string]catalogdomain.ServiceCategory),
	}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category catalogdomain.ServiceCategory) error {
	m.categories[category.ID.String()] = category
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceCategory, error) {
	m.getByIDCalls++
	if category, ok := m.categories[id.String()]; ok {
		return category, nil
	}
	return catalogdomain.ServiceCategory{}, catalogUsecases.ErrCategoryNotFound
}

func (m *mockCategoryRepository) FindAll(ctx context.Context, pagination catalogUsecases.Pagination) ([]catalogdomain.ServiceCategory, int, error) {
	if m.findAllError != nil {
		return nil, 0, m.findAllError
	}
	result := make([]catalogdomain.ServiceCategory, 0, len(m.categories))
	for _, category := range m.categories {
		result = append(result, category)
	}
	return result, len(result), nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category catalogdomain.ServiceCategory) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.categories[category.ID.String()] = category
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.categories, id.String())
	return nil
}

type fakeCacheClient struct {
	entries map[string]any
}

func newFakeCacheClient() *fakeCacheClient {
	return &fakeCacheClient{entries: make(map[string]any)}
}

func (f *fakeCacheClient) Get(ctx context.Context, key string) (any, bool) {
	value, ok := f.entries[key]
	return value, ok
}

func (f *fakeCacheClient) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	f.entries[key] = value
	return true
}

func (f *fakeCacheClient) Delete(ctx context.Context, key string) {
	delete(f.entries, key)
}

func (f *fakeCacheClient) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, ok := f.entries[key]; ok {
		return value, nil
	}
	value, err := loader()
	if err != nil {
		return nil, err
	}
	f.entries[key] = value
	return value, nil
}

func (f *fakeCacheClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	return nil, nil
}
