package persistence

import (
	"context"
	"errors"
	"fmt"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	"facilityhub-server/internal/masterdata/persistence/internal"
	"facilityhub-server/internal/masterdata/usecases"
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

func NewLocationRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleLocationRepository, error) {
	publisher, err := publisherFactory.New(_locationsTopic, &avro.AvroLocation{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Location{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLocationRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.LocationRepository = (*SimpleLocationRepository)(nil)

type SimpleLocationRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleLocationRepository) Create(ctx context.Context, location masterdataDomain.Location) error {
	entity := internal.FromLocation(location)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating location in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(location.ID), convertToAvroLocation(location))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleLocationRepository) GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Location, error) {
	var entity internal.Location
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return masterdataDomain.Location{}, usecases.ErrLocationNotFound
	}

	if err != nil {
		return masterdataDomain.Location{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleLocationRepository) FindAllByCustomer(
	ctx context.Context,
	customerID shareddomain.ID,
	pagination usecases.Pagination,
) ([]masterdataDomain.Location, int, error) {
	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Location{})

	err := query.Where("customer_id = ? AND deleted_at IS NULL", customerID.String()).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Location
	err = query.
		Where("customer_id = ? AND deleted_at IS NULL", customerID.String()).
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]masterdataDomain.Location, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleLocationRepository) Update(ctx context.Context, location masterdataDomain.Location) error {
	entity := internal.FromLocation(location)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating location in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(location.ID), convertToAvroLocation(location))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleLocationRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	location, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	location.SoftDelete()
	return r.Update(ctx, location)
}

func convertToAvroLocation(location masterdataDomain.Location) *avro.AvroLocation {
	result := &avro.AvroLocation{
		ID:         location.ID.String(),
		Version:    int(location.Version),
		CustomerID: location.CustomerID.String(),
		Name:       string(location.Name),
		Address:    location.Address,
		City:       location.City,
		PostalCode: location.PostalCode,
		Country:    location.Country,
		CreatedAt:  location.CreatedAt.Time,
		UpdatedAt:  location.UpdatedAt.Time,
	}

	if location.DeletedAt != nil {
		result.DeletedAt = &location.DeletedAt.Time
	}

	return result
}
