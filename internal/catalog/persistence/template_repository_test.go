package persistence_test

import (
	"context"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogPersistence "facilityhub-server/internal/catalog/persistence"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("TemplateRepository", func() {
	var (
		orm  sql.ORM
		repo catalogUsecases.TemplateRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = catalogPersistence.NewTemplateRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	buildTemplate := func() catalogdomain.ServiceTemplate {
		template, err := catalogdomain.NewServiceTemplateBuilder().
			WithName("HVAC Inspection").
			WithCategoryID("cat-hvac").
			WithDescription("Quarterly inspection checklist").
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return template
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.It("should round-trip the field list including conditions", func() {
			template := buildTemplate()
			access, err := template.AddField(catalogdomain.FieldDefinition{
				Label:   "Access type",
				Type:    catalogdomain.FieldTypeDropdown,
				Options: []string{"Key", "Code"},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = template.AddField(catalogdomain.FieldDefinition{
				Label:              "Access code",
				Type:               catalogdomain.FieldTypeText,
				Section:            "Access",
				DefaultValue:       utils.Pointer[any]("0000"),
				ConditionalDisplay: &catalogdomain.DisplayCondition{FieldID: access.ID, Value: "Code"},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(repo.Create(ctx, template)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, template.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Fields).To(gomega.HaveLen(2))
			gomega.Expect(found.Fields[0].ID).To(gomega.Equal(access.ID))
			gomega.Expect(found.Fields[0].Options).To(gomega.Equal([]string{"Key", "Code"}))
			gomega.Expect(found.Fields[1].Section).To(gomega.Equal("Access"))
			gomega.Expect(found.Fields[1].ConditionalDisplay).NotTo(gomega.BeNil())
			gomega.Expect(found.Fields[1].ConditionalDisplay.FieldID).To(gomega.Equal(access.ID))
			gomega.Expect(*found.Fields[1].DefaultValue).To(gomega.Equal(any("0000")))
		})

		ginkgo.When("template does not exist", func() {
			ginkgo.It("should return ErrTemplateNotFound", func() {
				_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
				gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTemplateNotFound))
			})
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should persist when the expected version matches", func() {
			template := buildTemplate()
			gomega.Expect(repo.Create(ctx, template)).To(gomega.Succeed())

			expectedVersion := template.Version
			_, err := template.AddField(catalogdomain.FieldDefinition{
				Label: "Technician",
				Type:  catalogdomain.FieldTypeText,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(repo.Update(ctx, template, expectedVersion)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, template.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Fields).To(gomega.HaveLen(1))
			gomega.Expect(found.Version).To(gomega.Equal(expectedVersion + 1))
		})

		ginkgo.It("should refuse a stale expected version", func() {
			template := buildTemplate()
			gomega.Expect(repo.Create(ctx, template)).To(gomega.Succeed())

			err := repo.Update(ctx, template, template.Version+3)
			gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrVersionConflict))
		})
	})

	ginkgo.Context("FindAllByCategory", func() {
		ginkgo.It("should filter by category and skip soft deleted templates", func() {
			hvac := buildTemplate()
			gomega.Expect(repo.Create(ctx, hvac)).To(gomega.Succeed())

			plumbing, err := catalogdomain.NewServiceTemplateBuilder().
				WithName("Plumbing Check").
				WithCategoryID("cat-plumbing").
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.Create(ctx, plumbing)).To(gomega.Succeed())

			templates, total, err := repo.FindAllByCategory(ctx, "cat-hvac", catalogUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(templates[0].ID).To(gomega.Equal(hvac.ID))

			gomega.Expect(repo.Delete(ctx, hvac.ID)).To(gomega.Succeed())

			_, total, err = repo.FindAllByCategory(ctx, "cat-hvac", catalogUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(0))
		})
	})
})
