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
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	_serviceCategoriesTopic = "service_categories"
	_serviceTemplatesTopic  = "service_templates"
)

func NewCategoryRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleCategoryRepository, error) {
	publisher, err := publisherFactory.New(_serviceCategoriesTopic, &avro.AvroServiceCategory{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.ServiceCategory{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCategoryRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.CategoryRepository = (*SimpleCategoryRepository)(nil)

type SimpleCategoryRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleCategoryRepository) Create(ctx context.Context, category catalogdomain.ServiceCategory) error {
	entity := internal.FromServiceCategory(category)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating service category in database: %w", err)
	}

	slog.Debug("publishing service category to pubsub", slog.String("category_id", category.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(category.ID), convertToAvroServiceCategory(category))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogdomain.ServiceCategory, error) {
	var entity internal.ServiceCategory
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return catalogdomain.ServiceCategory{}, usecases.ErrCategoryNotFound
	}

	if err != nil {
		return catalogdomain.ServiceCategory{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCategoryRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]catalogdomain.ServiceCategory, int, error) {
	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.ServiceCategory{})

	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.ServiceCategory
	err = query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]catalogdomain.ServiceCategory, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleCategoryRepository) Update(ctx context.Context, category catalogdomain.ServiceCategory) error {
	entity := internal.FromServiceCategory(category)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating service category in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(category.ID), convertToAvroServiceCategory(category))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	_, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Delete(&internal.ServiceCategory{}, "id = ?", id.String()).Error()
	if err != nil {
		return fmt.Errorf("deleting service category in database: %w", err)
	}

	return nil
}

func convertToAvroServiceCategory(category catalogdomain.ServiceCategory) *avro.AvroServiceCategory {
	return &avro.AvroServiceCategory{
		ID:          category.ID.String(),
		Version:     int(category.Version),
		Name:        string(category.Name),
		DisplayName: string(category.DisplayName),
		Color:       string(category.Color),
		Icon:        category.Icon,
		Description: string(category.Description),
		CreatedAt:   category.CreatedAt.Time,
		UpdatedAt:   category.UpdatedAt.Time,
	}
}
