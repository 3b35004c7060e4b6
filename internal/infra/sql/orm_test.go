package sql_test

import (
	"context"
	"time"

	"facilityhub-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.When("using a timeout context with database operations", func() {
			type testModel struct {
				ID   uint `gorm:"primaryKey"`
				Name string
			}

			ginkgo.It("should complete operations within the timeout", func() {
				err := orm.AutoMigrate(&testModel{})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				timeoutORM := orm.WithTimeout(ctx, 5*time.Second)
				err = timeoutORM.Create(&testModel{Name: "probe"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var found testModel
				err = timeoutORM.First(&found, "name = ?", "probe").Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.Name).To(gomega.Equal("probe"))
			})
		})
	})

	ginkgo.Context("Error translation", func() {
		type testRecord struct {
			ID   uint `gorm:"primaryKey"`
			Name string
		}

		ginkgo.When("a record is missing", func() {
			ginkgo.It("should surface ErrRecordNotFound", func() {
				err := orm.AutoMigrate(&testRecord{})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var found testRecord
				err = orm.WithContext(ctx).First(&found, "name = ?", "missing").Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})
	})
})
