package usecases_test

import (
	"context"
	"errors"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TemplateService", func() {
	var service catalogUsecases.TemplateService
	var mockRepository *mockTemplateRepository
	var mockCategories *mockCategoryRepository

	BeforeEach(func() {
		mockRepository = newMockTemplateRepository()
		mockCategories = newMockCategoryRepository()
		service = catalogUsecases.NewTemplateService(mockRepository, mockCategories)
	})

	Context("CreateTemplate", func() {
		var template catalogdomain.ServiceTemplate
		var category catalogdomain.ServiceCategory

		BeforeEach(func() {
			category, _ = catalogdomain.NewServiceCategoryBuilder().
				WithName("hvac").
				WithDisplayName("HVAC").
				Build()
			mockCategories.categories[category.ID.String()] = category

			template, _ = catalogdomain.NewServiceTemplateBuilder().
				WithName("HVAC Inspection").
				WithCategoryID(category.ID).
				Build()
		})

		When("the category exists", func() {
			It("should create the template", func() {
				err := service.CreateTemplate(context.Background(), template)
				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepository.createCalled).To(BeTrue())
			})
		})

		When("the category does not exist", func() {
			BeforeEach(func() {
				template.CategoryID = "missing"
			})

			It("should return ErrCategoryNotFound", func() {
				err := service.CreateTemplate(context.Background(), template)
				Expect(err).To(MatchError(catalogUsecases.ErrCategoryNotFound))
				Expect(mockRepository.createCalled).To(BeFalse())
			})
		})

		When("the template fails validation", func() {
			BeforeEach(func() {
				template.Fields = []catalogdomain.FieldDefinition{
					{ID: "choice", Label: "Choice", Type: catalogdomain.FieldTypeDropdown},
				}
			})

			It("should return the validation error without persisting", func() {
				err := service.CreateTemplate(context.Background(), template)

				var verr *catalogdomain.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(mockRepository.createCalled).To(BeFalse())
			})
		})
	})

	Context("AddTemplateField", func() {
		var template catalogdomain.ServiceTemplate

		BeforeEach(func() {
			template, _ = catalogdomain.NewServiceTemplateBuilder().
				WithName("Elevator Check").
				Build()
			mockRepository.templates[template.ID.String()] = template
		})

		When("the version matches", func() {
			It("should add the field and persist", func() {
				added, err := service.AddTemplateField(context.Background(), template.ID, template.Version, catalogdomain.FieldDefinition{
					Label: "Cabin number",
					Type:  catalogdomain.FieldTypeText,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(added.ID).NotTo(BeEmpty())

				stored := mockRepository.templates[template.ID.String()]
				Expect(stored.Fields).To(HaveLen(1))
				Expect(stored.Version).To(Equal(template.Version + 1))
			})
		})

		When("the version is stale", func() {
			It("should return ErrVersionConflict", func() {
				_, err := service.AddTemplateField(context.Background(), template.ID, template.Version+5, catalogdomain.FieldDefinition{
					Label: "Cabin number",
					Type:  catalogdomain.FieldTypeText,
				})

				Expect(err).To(MatchError(catalogUsecases.ErrVersionConflict))
			})
		})

		When("the template does not exist", func() {
			It("should return ErrTemplateNotFound", func() {
				_, err := service.AddTemplateField(context.Background(), shareddomain.ID("missing"), 1, catalogdomain.FieldDefinition{
					Label: "Cabin number",
					Type:  catalogdomain.FieldTypeText,
				})

				Expect(err).To(MatchError(catalogUsecases.ErrTemplateNotFound))
			})
		})

		When("the template is deleted", func() {
			BeforeEach(func() {
				template.SoftDelete()
				mockRepository.templates[template.ID.String()] = template
			})

			It("should return ErrTemplateNotFound", func() {
				_, err := service.AddTemplateField(context.Background(), template.ID, template.Version, catalogdomain.FieldDefinition{
					Label: "Cabin number",
					Type:  catalogdomain.FieldTypeText,
				})

				Expect(err).To(MatchError(catalogUsecases.ErrTemplateNotFound))
			})
		})
	})

	Context("UpdateTemplateField", func() {
		var template catalogdomain.ServiceTemplate
		var field catalogdomain.FieldDefinition

		BeforeEach(func() {
			template, _ = catalogdomain.NewServiceTemplateBuilder().
				WithName("Fire Safety").
				Build()
			field, _ = template.AddField(catalogdomain.FieldDefinition{
				Label: "Extinguisher count",
				Type:  catalogdomain.FieldTypeNumber,
			})
			mockRepository.templates[template.ID.String()] = template
		})

		When("the field exists", func() {
			It("should update the field in place", func() {
				field.Label = "Extinguisher count (per floor)"
				err := service.UpdateTemplateField(context.Background(), template.ID, template.Version, field)

				Expect(err).NotTo(HaveOccurred())
				stored := mockRepository.templates[template.ID.String()]
				Expect(stored.Fields[0].Label).To(Equal("Extinguisher count (per floor)"))
			})
		})

		When("the field does not exist", func() {
			It("should return ErrFieldNotFound", func() {
				err := service.UpdateTemplateField(context.Background(), template.ID, template.Version, catalogdomain.FieldDefinition{
					ID:    "missing",
					Label: "Ghost",
					Type:  catalogdomain.FieldTypeText,
				})

				Expect(err).To(MatchError(catalogdomain.ErrFieldNotFound))
			})
		})

		When("the update creates a conditional chain", func() {
			BeforeEach(func() {
				conditional, _ := template.AddField(catalogdomain.FieldDefinition{
					Label:              "Details",
					Type:               catalogdomain.FieldTypeText,
					ConditionalDisplay: &catalogdomain.DisplayCondition{FieldID: field.ID, Value: "0"},
				})
				_ = conditional
				mockRepository.templates[template.ID.String()] = template
			})

			It("should reject the save with a validation error", func() {
				field.ConditionalDisplay = &catalogdomain.DisplayCondition{
					FieldID: template.Fields[1].ID,
					Value:   "x",
				}
				err := service.UpdateTemplateField(context.Background(), template.ID, template.Version, field)

				var verr *catalogdomain.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
			})
		})
	})

	Context("RemoveTemplateField", func() {
		var template catalogdomain.ServiceTemplate
		var field catalogdomain.FieldDefinition

		BeforeEach(func() {
			template, _ = catalogdomain.NewServiceTemplateBuilder().
				WithName("Plumbing").
				Build()
			field, _ = template.AddField(catalogdomain.FieldDefinition{
				Label: "Pressure",
				Type:  catalogdomain.FieldTypeNumber,
			})
			mockRepository.templates[template.ID.String()] = template
		})

		It("should remove the field and persist", func() {
			err := service.RemoveTemplateField(context.Background(), template.ID, template.Version, field.ID)

			Expect(err).NotTo(HaveOccurred())
			stored := mockRepository.templates[template.ID.String()]
			Expect(stored.Fields).To(BeEmpty())
		})

		It("should return ErrFieldNotFound for unknown fields", func() {
			err := service.RemoveTemplateField(context.Background(), template.ID, template.Version, shareddomain.ID("missing"))
			Expect(err).To(MatchError(catalogdomain.ErrFieldNotFound))
		})
	})

	Context("UpdateTemplate", func() {
		var template catalogdomain.ServiceTemplate

		BeforeEach(func() {
			template, _ = catalogdomain.NewServiceTemplateBuilder().
				WithName("Plumbing").
				Build()
			mockRepository.templates[template.ID.String()] = template
		})

		When("the repository reports a conflict", func() {
			BeforeEach(func() {
				mockRepository.updateError = catalogUsecases.ErrVersionConflict
			})

			It("should return ErrVersionConflict", func() {
				err := service.UpdateTemplate(context.Background(), template)
				Expect(err).To(MatchError(catalogUsecases.ErrVersionConflict))
			})
		})
	})
})

type mockTemplateRepository struct {
	templates    map[string]catalogdomain.ServiceTemplate
	createCalled bool
	createError  error
	getByIDError error
	updateError  error
	deleteError  error
}

func newMockTemplateRepository() *mockTemplateRepository {
	return &mockTemplateRepository{
		templates: make(map[string]catalogdomain.ServiceTemplate),
	}
}

func (m *mockTemplateRepository) Create(ctx context.Context, template catalogdomain.ServiceTemplate) error {
	m.createCalled = true
	if m.createError != nil {
		return m.createError
	}
	m.templates[template.ID.String()] = template
	return nil
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceTemplate, error) {
	if m.getByIDError != nil {
		return catalogdomain.ServiceTemplate{}, m.getByIDError
	}
	if template, ok := m.templates[id.String()]; ok {
		return template, nil
	}
	return catalogdomain.ServiceTemplate{}, catalogUsecases.ErrTemplateNotFound
}

func (m *mockTemplateRepository) FindAll(ctx context.Context, pagination catalogUsecases.Pagination) ([]catalogdomain.ServiceTemplate, int, error) {
	result := make([]catalogdomain.ServiceTemplate, 0, len(m.templates))
	for _, template := range m.templates {
		result = append(result, template)
	}
	return result, len(result), nil
}

func (m *mockTemplateRepository) FindAllByCategory(ctx context.Context, categoryID shareddomain.ID, pagination catalogUsecases.Pagination) ([]catalogdomain.ServiceTemplate, int, error) {
	result := make([]catalogdomain.ServiceTemplate, 0)
	for _, template := range m.templates {
		if template.CategoryID == categoryID {
			result = append(result, template)
		}
	}
	return result, len(result), nil
}

func (m *mockTemplateRepository) Update(ctx context.Context, template catalogdomain.ServiceTemplate, expectedVersion shareddomain.Version) error {
	if m.updateError != nil {
		return m.updateError
	}
	stored, ok := m.templates[template.ID.String()]
	if !ok {
		return catalogUsecases.ErrTemplateNotFound
	}
	if stored.Version != expectedVersion {
		return catalogUsecases.ErrVersionConflict
	}
	m.templates[template.ID.String()] = template
	return nil
}

func (m *mockTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	template, ok := m.templates[id.String()]
	if !ok {
		return catalogUsecases.ErrTemplateNotFound
	}
	template.SoftDelete()
	m.templates[id.String()] = template
	return nil
}
