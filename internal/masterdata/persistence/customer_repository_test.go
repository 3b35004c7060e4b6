package persistence_test

import (
	"context"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	masterdataPersistence "facilityhub-server/internal/masterdata/persistence"
	masterdataUsecases "facilityhub-server/internal/masterdata/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("CustomerRepository", func() {
	var (
		orm  sql.ORM
		repo masterdataUsecases.CustomerRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = masterdataPersistence.NewCustomerRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	ginkgo.Context("Create and GetByID", func() {
		var customer masterdataDomain.Customer

		ginkgo.BeforeEach(func() {
			customer, _ = masterdataDomain.NewCustomerBuilder().
				WithName("Fjord Facilities AS").
				WithOrgNumber("912345678").
				WithContactEmail("drift@fjordfacilities.no").
				Build()
		})

		ginkgo.When("creating a valid customer", func() {
			ginkgo.It("should round-trip through the database", func() {
				err := repo.Create(ctx, customer)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				found, err := repo.GetByID(ctx, customer.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.Name).To(gomega.Equal(customer.Name))
				gomega.Expect(found.OrgNumber).To(gomega.Equal(customer.OrgNumber))
				gomega.Expect(found.IsActive).To(gomega.BeTrue())
			})
		})

		ginkgo.When("customer does not exist", func() {
			ginkgo.It("should return ErrCustomerNotFound", func() {
				_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
				gomega.Expect(err).To(gomega.MatchError(masterdataUsecases.ErrCustomerNotFound))
			})
		})
	})

	ginkgo.Context("Delete", func() {
		var customer masterdataDomain.Customer

		ginkgo.BeforeEach(func() {
			customer, _ = masterdataDomain.NewCustomerBuilder().
				WithName("Fjord Facilities AS").
				Build()
			gomega.Expect(repo.Create(ctx, customer)).To(gomega.Succeed())
		})

		ginkgo.It("should soft delete and keep the row readable by id", func() {
			err := repo.Delete(ctx, customer.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			found, err := repo.GetByID(ctx, customer.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.IsDeleted()).To(gomega.BeTrue())
		})

		ginkgo.It("should exclude soft deleted rows from FindAll", func() {
			gomega.Expect(repo.Delete(ctx, customer.ID)).To(gomega.Succeed())

			customers, total, err := repo.FindAll(ctx, masterdataUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(0))
			gomega.Expect(customers).To(gomega.BeEmpty())
		})
	})
})
