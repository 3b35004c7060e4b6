package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, template catalogdomain.ServiceTemplate) error
	GetTemplate(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceTemplate, error)
	ListTemplates(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error)
	ListTemplatesByCategory(ctx context.Context, categoryID shareddomain.ID, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error)
	UpdateTemplate(ctx context.Context, template catalogdomain.ServiceTemplate) error
	DeleteTemplate(ctx context.Context, id shareddomain.ID) error
	AddTemplateField(ctx context.Context, id shareddomain.ID, expectedVersion shareddomain.Version, field catalogdomain.FieldDefinition) (catalogdomain.FieldDefinition, error)
	UpdateTemplateField(ctx context.Context, id shareddomain.ID, expectedVersion shareddomain.Version, field catalogdomain.FieldDefinition) error
	RemoveTemplateField(ctx context.Context, id shareddomain.ID, expectedVersion shareddomain.Version, fieldID shareddomain.ID) error
}

func NewTemplateService(repository TemplateRepository, categoryRepository CategoryRepository) *SimpleTemplateService {
	return &SimpleTemplateService{
		repository:         repository,
		categoryRepository: categoryRepository,
	}
}

var _ TemplateService = (*SimpleTemplateService)(nil)

type SimpleTemplateService struct {
	repository         TemplateRepository
	categoryRepository CategoryRepository
}

func (s *SimpleTemplateService) CreateTemplate(ctx context.Context, template catalogdomain.ServiceTemplate) error {
	if template.CategoryID != "" {
		_, err := s.categoryRepository.GetByID(ctx, template.CategoryID)
		if err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("getting service category: %w", err)
		}
	}

	if err := template.Validate(); err != nil {
		return err
	}

	err := s.repository.Create(ctx, template)
	if err != nil {
		slog.Error("creating service template", slog.String("error", err.Error()))
		return fmt.Errorf("creating service template: %w", err)
	}

	slog.Info("service template created successfully",
		slog.String("id", template.ID.String()),
		slog.String("name", string(template.Name)))

	return nil
}

func (s *SimpleTemplateService) GetTemplate(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceTemplate, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return catalogdomain.ServiceTemplate{}, ErrTemplateNotFound
		}
		slog.Error("getting service template", slog.String("error", err.Error()))
		return catalogdomain.ServiceTemplate{}, fmt.Errorf("getting service template: %w", err)
	}

	return template, nil
}

func (s *SimpleTemplateService) ListTemplates(ctx context.Context, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error) {
	templates, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing service templates", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing service templates: %w", err)
	}

	return templates, total, nil
}

func (s *SimpleTemplateService) ListTemplatesByCategory(ctx context.Context, categoryID shareddomain.ID, pagination Pagination) ([]catalogdomain.ServiceTemplate, int, error) {
	templates, total, err := s.repository.FindAllByCategory(ctx, categoryID, pagination)
	if err != nil {
		slog.Error("listing service templates by category", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing service templates by category: %w", err)
	}

	return templates, total, nil
}

func (s *SimpleTemplateService) UpdateTemplate(ctx context.Context, template catalogdomain.ServiceTemplate) error {
	existing, err := s.repository.GetByID(ctx, template.ID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("getting service template: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("service template is deleted")
	}

	if err := template.Validate(); err != nil {
		return err
	}

	err = s.repository.Update(ctx, template, existing.Version)
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return ErrVersionConflict
		}
		slog.Error("updating service template", slog.String("error", err.Error()))
		return fmt.Errorf("updating service template: %w", err)
	}

	slog.Info("service template updated successfully",
		slog.String("id", template.ID.String()))

	return nil
}

func (s *SimpleTemplateService) DeleteTemplate(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		slog.Error("deleting service template", slog.String("error", err.Error()))
		return fmt.Errorf("deleting service template: %w", err)
	}

	slog.Info("service template deleted successfully", slog.String("id", id.String()))

	return nil
}

// AddTemplateField appends a field to the template identified by id. The
// caller supplies the version it last read; a stale version yields
// ErrVersionConflict so concurrent editors never silently overwrite each
// other.
func (s *SimpleTemplateService) AddTemplateField(
	ctx context.Context,
	id shareddomain.ID,
	expectedVersion shareddomain.Version,
	field catalogdomain.FieldDefinition,
) (catalogdomain.FieldDefinition, error) {
	template, err := s.editableTemplate(ctx, id, expectedVersion)
	if err != nil {
		return catalogdomain.FieldDefinition{}, err
	}

	added, err := template.AddField(field)
	if err != nil {
		return catalogdomain.FieldDefinition{}, err
	}

	if err := s.saveTemplate(ctx, template, expectedVersion); err != nil {
		return catalogdomain.FieldDefinition{}, err
	}

	slog.Info("template field added",
		slog.String("template_id", id.String()),
		slog.String("field_id", added.ID.String()))

	return added, nil
}

func (s *SimpleTemplateService) UpdateTemplateField(
	ctx context.Context,
	id shareddomain.ID,
	expectedVersion shareddomain.Version,
	field catalogdomain.FieldDefinition,
) error {
	template, err := s.editableTemplate(ctx, id, expectedVersion)
	if err != nil {
		return err
	}

	if err := template.EditField(field); err != nil {
		return err
	}

	if err := s.saveTemplate(ctx, template, expectedVersion); err != nil {
		return err
	}

	slog.Info("template field updated",
		slog.String("template_id", id.String()),
		slog.String("field_id", field.ID.String()))

	return nil
}

func (s *SimpleTemplateService) RemoveTemplateField(
	ctx context.Context,
	id shareddomain.ID,
	expectedVersion shareddomain.Version,
	fieldID shareddomain.ID,
) error {
	template, err := s.editableTemplate(ctx, id, expectedVersion)
	if err != nil {
		return err
	}

	if err := template.RemoveField(fieldID); err != nil {
		return err
	}

	if err := s.saveTemplate(ctx, template, expectedVersion); err != nil {
		return err
	}

	slog.Info("template field removed",
		slog.String("template_id", id.String()),
		slog.String("field_id", fieldID.String()))

	return nil
}

func (s *SimpleTemplateService) editableTemplate(
	ctx context.Context,
	id shareddomain.ID,
	expectedVersion shareddomain.Version,
) (catalogdomain.ServiceTemplate, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return catalogdomain.ServiceTemplate{}, ErrTemplateNotFound
		}
		slog.Error("getting service template", slog.String("error", err.Error()))
		return catalogdomain.ServiceTemplate{}, fmt.Errorf("getting service template: %w", err)
	}

	if template.IsDeleted() {
		return catalogdomain.ServiceTemplate{}, ErrTemplateNotFound
	}

	if template.Version != expectedVersion {
		return catalogdomain.ServiceTemplate{}, ErrVersionConflict
	}

	return template, nil
}

func (s *SimpleTemplateService) saveTemplate(
	ctx context.Context,
	template catalogdomain.ServiceTemplate,
	expectedVersion shareddomain.Version,
) error {
	if err := template.Validate(); err != nil {
		return err
	}

	err := s.repository.Update(ctx, template, expectedVersion)
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return ErrVersionConflict
		}
		slog.Error("updating service template", slog.String("error", err.Error()))
		return fmt.Errorf("updating service template: %w", err)
	}

	return nil
}
