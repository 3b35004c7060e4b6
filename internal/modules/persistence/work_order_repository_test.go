package persistence_test

import (
	"context"
	"time"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesPersistence "facilityhub-server/internal/modules/persistence"
	modulesUsecases "facilityhub-server/internal/modules/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("WorkOrderRepository", func() {
	var (
		orm  sql.ORM
		repo modulesUsecases.WorkOrderRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = modulesPersistence.NewWorkOrderRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	buildOrder := func(moduleID shareddomain.ID) modulesdomain.WorkOrder {
		order, err := modulesdomain.NewWorkOrderBuilder().
			WithModuleID(moduleID).
			WithTitle("Replace ventilation filters").
			WithPriority(modulesdomain.WorkOrderPriorityHigh).
			WithDueDate(time.Now().Add(72 * time.Hour)).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return order
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.It("should round-trip the order", func() {
			order := buildOrder("module-1")
			gomega.Expect(repo.Create(ctx, order)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, order.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Title).To(gomega.Equal("Replace ventilation filters"))
			gomega.Expect(found.Priority).To(gomega.Equal(modulesdomain.WorkOrderPriorityHigh))
			gomega.Expect(found.Status).To(gomega.Equal(modulesdomain.WorkOrderStatusOpen))
			gomega.Expect(found.DueDate).NotTo(gomega.BeNil())
		})

		ginkgo.When("work order does not exist", func() {
			ginkgo.It("should return ErrWorkOrderNotFound", func() {
				_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
				gomega.Expect(err).To(gomega.MatchError(modulesUsecases.ErrWorkOrderNotFound))
			})
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should persist status transitions", func() {
			order := buildOrder("module-1")
			gomega.Expect(repo.Create(ctx, order)).To(gomega.Succeed())

			gomega.Expect(order.Start()).To(gomega.Succeed())
			gomega.Expect(order.Complete()).To(gomega.Succeed())
			gomega.Expect(repo.Update(ctx, order)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, order.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Status).To(gomega.Equal(modulesdomain.WorkOrderStatusCompleted))
			gomega.Expect(found.CompletedAt).NotTo(gomega.BeNil())
		})
	})

	ginkgo.Context("FindAllByModule", func() {
		ginkgo.It("should filter by module and skip soft deleted orders", func() {
			first := buildOrder("module-1")
			gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())

			second := buildOrder("module-2")
			gomega.Expect(repo.Create(ctx, second)).To(gomega.Succeed())

			orders, total, err := repo.FindAllByModule(ctx, "module-1", modulesUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(orders[0].ID).To(gomega.Equal(first.ID))

			gomega.Expect(repo.Delete(ctx, first.ID)).To(gomega.Succeed())

			_, total, err = repo.FindAllByModule(ctx, "module-1", modulesUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(0))
		})
	})
})
