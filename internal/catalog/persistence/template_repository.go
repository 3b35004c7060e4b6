package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/catalog/persistence/internal"
	"facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	"facilityhub-server/internal/infra/utils"
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

func NewTemplateRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleTemplateRepository, error) {
	publisher, err := publisherFactory.New(_serviceTemplatesTopic, &avro.AvroServiceTemplate{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.ServiceTemplate{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTemplateRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.TemplateRepository = (*SimpleTemplateRepository)(nil)

type SimpleTemplateRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleTemplateRepository) Create(ctx context.Context, template catalogdomain.ServiceTemplate) error {
	entity := internal.FromServiceTemplate(template)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating service template in database: %w", err)
	}

	slog.Debug("publishing service template to pubsub", slog.String("template_id", template.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(template.ID), convertToAvroServiceTemplate(template))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceTemplate, error) {
	var entity internal.ServiceTemplate
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return catalogdomain.ServiceTemplate{}, usecases.ErrTemplateNotFound
	}

	if err != nil {
		return catalogdomain.ServiceTemplate{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTemplateRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]catalogdomain.ServiceTemplate, int, error) {
	return r.findAll(ctx, pagination, "")
}

func (r *SimpleTemplateRepository) FindAllByCategory(
	ctx context.Context,
	categoryID shareddomain.ID,
	pagination usecases.Pagination,
) ([]catalogdomain.ServiceTemplate, int, error) {
	return r.findAll(ctx, pagination, categoryID)
}

func (r *SimpleTemplateRepository) findAll(
	ctx context.Context,
	pagination usecases.Pagination,
	categoryID shareddomain.ID,
) ([]catalogdomain.ServiceTemplate, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.ServiceTemplate{}).Where("deleted_at IS NULL")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID.String())
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.ServiceTemplate
	err = query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]catalogdomain.ServiceTemplate, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

// Update persists the template inside a transaction that re-reads the
// stored version first. A mismatch with expectedVersion means another
// editor saved in between, so the write is refused.
func (r *SimpleTemplateRepository) Update(
	ctx context.Context,
	template catalogdomain.ServiceTemplate,
	expectedVersion shareddomain.Version,
) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var current internal.ServiceTemplate
		err := tx.First(&current, "id = ?", template.ID.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrTemplateNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		if current.Version != int(expectedVersion) {
			return usecases.ErrVersionConflict
		}

		entity := internal.FromServiceTemplate(template)
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("updating service template in database: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	err = r.publisher.Publish(ctx, pubsub.Key(template.ID), convertToAvroServiceTemplate(template))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	template, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	expectedVersion := template.Version
	template.SoftDelete()
	return r.Update(ctx, template, expectedVersion)
}

func convertToAvroServiceTemplate(template catalogdomain.ServiceTemplate) *avro.AvroServiceTemplate {
	fields := make([]avro.AvroFieldDefinition, len(template.Fields))
	for i, field := range template.Fields {
		fields[i] = convertToAvroFieldDefinition(field)
	}

	result := &avro.AvroServiceTemplate{
		ID:          template.ID.String(),
		Version:     int(template.Version),
		Name:        string(template.Name),
		CategoryID:  template.CategoryID.String(),
		Description: string(template.Description),
		Fields:      fields,
		CreatedAt:   template.CreatedAt.Time,
		UpdatedAt:   template.UpdatedAt.Time,
	}

	if template.DeletedAt != nil {
		result.DeletedAt = &template.DeletedAt.Time
	}

	return result
}

func convertToAvroFieldDefinition(field catalogdomain.FieldDefinition) avro.AvroFieldDefinition {
	result := avro.AvroFieldDefinition{
		ID:       field.ID.String(),
		Label:    field.Label,
		Type:     string(field.Type),
		Required: field.Required,
		Options:  field.Options,
		Section:  utils.StringPtr(field.Section),
	}

	if field.DefaultValue != nil {
		result.DefaultValue = utils.Pointer(fmt.Sprintf("%v", *field.DefaultValue))
	}

	if field.ConditionalDisplay != nil {
		result.ConditionFieldID = utils.Pointer(field.ConditionalDisplay.FieldID.String())
		result.ConditionValue = utils.Pointer(field.ConditionalDisplay.Value)
	}

	return result
}
