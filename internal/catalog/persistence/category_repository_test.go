package persistence_test

import (
	"context"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogPersistence "facilityhub-server/internal/catalog/persistence"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("CategoryRepository", func() {
	var (
		orm  sql.ORM
		repo catalogUsecases.CategoryRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = catalogPersistence.NewCategoryRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	ginkgo.Context("Create and GetByID", func() {
		var category catalogdomain.ServiceCategory

		ginkgo.BeforeEach(func() {
			category, _ = catalogdomain.NewServiceCategoryBuilder().
				WithName("hvac").
				WithDisplayName("HVAC").
				WithColor("#2563eb").
				WithIcon("wind").
				Build()
		})

		ginkgo.It("should round-trip through the database", func() {
			gomega.Expect(repo.Create(ctx, category)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, category.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Name).To(gomega.Equal(category.Name))
			gomega.Expect(found.DisplayName).To(gomega.Equal(category.DisplayName))
			gomega.Expect(found.Color).To(gomega.Equal(category.Color))
		})

		ginkgo.When("category does not exist", func() {
			ginkgo.It("should return ErrCategoryNotFound", func() {
				_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
				gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrCategoryNotFound))
			})
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the category", func() {
			category, _ := catalogdomain.NewServiceCategoryBuilder().
				WithName("hvac").
				Build()
			gomega.Expect(repo.Create(ctx, category)).To(gomega.Succeed())
			gomega.Expect(repo.Delete(ctx, category.ID)).To(gomega.Succeed())

			_, err := repo.GetByID(ctx, category.ID)
			gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrCategoryNotFound))
		})
	})
})
