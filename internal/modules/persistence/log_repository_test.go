package persistence_test

import (
	"context"
	"time"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesPersistence "facilityhub-server/internal/modules/persistence"
	modulesUsecases "facilityhub-server/internal/modules/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("LogRepository", func() {
	var (
		orm  sql.ORM
		repo modulesUsecases.LogRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = modulesPersistence.NewLogRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	buildLog := func(performedAt time.Time) modulesdomain.ServiceLog {
		log, err := modulesdomain.NewServiceLogBuilder().
			WithModuleID("module-1").
			WithPerformedBy("Ada").
			WithPerformedAt(performedAt).
			WithDescription("replaced filters").
			WithCost(450).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return log
	}

	ginkgo.Context("FindAllByModule", func() {
		ginkgo.It("should return the module's logs newest first", func() {
			older := buildLog(time.Now().Add(-48 * time.Hour))
			gomega.Expect(repo.Create(ctx, older)).To(gomega.Succeed())

			newer := buildLog(time.Now())
			gomega.Expect(repo.Create(ctx, newer)).To(gomega.Succeed())

			logs, total, err := repo.FindAllByModule(ctx, "module-1", modulesUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(2))
			gomega.Expect(logs[0].ID).To(gomega.Equal(newer.ID))
			gomega.Expect(logs[1].ID).To(gomega.Equal(older.ID))
			gomega.Expect(*logs[0].Cost).To(gomega.Equal(float64(450)))
		})

		ginkgo.When("another module logged services", func() {
			ginkgo.It("should not mix them in", func() {
				gomega.Expect(repo.Create(ctx, buildLog(time.Now()))).To(gomega.Succeed())

				other, err := modulesdomain.NewServiceLogBuilder().
					WithModuleID("module-2").
					WithPerformedBy("Grace").
					Build()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(repo.Create(ctx, other)).To(gomega.Succeed())

				logs, total, err := repo.FindAllByModule(ctx, "module-1", modulesUsecases.Pagination{Limit: 10})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(total).To(gomega.Equal(1))
				gomega.Expect(logs[0].PerformedBy).To(gomega.Equal("Ada"))
			})
		})
	})
})
