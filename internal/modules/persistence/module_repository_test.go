package persistence_test

import (
	"context"
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesPersistence "facilityhub-server/internal/modules/persistence"
	modulesUsecases "facilityhub-server/internal/modules/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ModuleRepository", func() {
	var (
		orm  sql.ORM
		repo modulesUsecases.ModuleRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = modulesPersistence.NewModuleRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	buildModule := func(customerID shareddomain.ID) modulesdomain.ServiceModule {
		module, err := modulesdomain.NewServiceModuleBuilder().
			WithCustomerID(customerID).
			WithLocationID("location-1").
			WithTemplateID("template-1").
			WithCategoryID("cat-hvac").
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return module
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.It("should round-trip the field values map", func() {
			module := buildModule("customer-1")
			module.ModuleCode = "SM-1"
			module.FieldValues = catalogdomain.FieldValues{
				"field-1": "Ada",
				"field-2": float64(4),
				"field-3": true,
			}

			gomega.Expect(repo.Create(ctx, module)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, module.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.ModuleCode).To(gomega.Equal("SM-1"))
			gomega.Expect(found.FieldValues[shareddomain.ID("field-1")]).To(gomega.Equal("Ada"))
			gomega.Expect(found.FieldValues[shareddomain.ID("field-2")]).To(gomega.Equal(float64(4)))
			gomega.Expect(found.FieldValues[shareddomain.ID("field-3")]).To(gomega.Equal(true))
		})

		ginkgo.When("module does not exist", func() {
			ginkgo.It("should return ErrModuleNotFound", func() {
				_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
				gomega.Expect(err).To(gomega.MatchError(modulesUsecases.ErrModuleNotFound))
			})
		})
	})

	ginkgo.Context("FindAll", func() {
		ginkgo.It("should filter by customer and skip soft deleted modules", func() {
			first := buildModule("customer-1")
			first.ModuleCode = "SM-1"
			gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())

			second := buildModule("customer-2")
			second.ModuleCode = "SM-2"
			gomega.Expect(repo.Create(ctx, second)).To(gomega.Succeed())

			modules, total, err := repo.FindAll(ctx, modulesUsecases.ModuleFilter{CustomerID: "customer-1"}, modulesUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(modules[0].ID).To(gomega.Equal(first.ID))

			gomega.Expect(repo.Delete(ctx, first.ID)).To(gomega.Succeed())

			_, total, err = repo.FindAll(ctx, modulesUsecases.ModuleFilter{CustomerID: "customer-1"}, modulesUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(0))
		})
	})

	ginkgo.Context("FindAllWithNextServiceBefore", func() {
		ginkgo.It("should return only modules due before the cutoff", func() {
			due, err := modulesdomain.NewServiceModuleBuilder().
				WithCustomerID("customer-1").
				WithLocationID("location-1").
				WithTemplateID("template-1").
				WithNextServiceDate(time.Now().Add(24 * time.Hour)).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			due.ModuleCode = "SM-1"
			gomega.Expect(repo.Create(ctx, due)).To(gomega.Succeed())

			later := buildModule("customer-1")
			later.ModuleCode = "SM-2"
			gomega.Expect(repo.Create(ctx, later)).To(gomega.Succeed())

			modules, err := repo.FindAllWithNextServiceBefore(ctx, time.Now().Add(48*time.Hour))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(modules).To(gomega.HaveLen(1))
			gomega.Expect(modules[0].ID).To(gomega.Equal(due.ID))
		})
	})

	ginkgo.Context("NextSequence", func() {
		ginkgo.It("should keep counting past deleted modules", func() {
			sequence, err := repo.NextSequence(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sequence).To(gomega.Equal(1))

			module := buildModule("customer-1")
			module.ModuleCode = modulesdomain.ModuleCodeFor(sequence)
			gomega.Expect(repo.Create(ctx, module)).To(gomega.Succeed())

			gomega.Expect(repo.Delete(ctx, module.ID)).To(gomega.Succeed())

			sequence, err = repo.NextSequence(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sequence).To(gomega.Equal(2))
		})
	})
})
