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

func NewSupplierRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleSupplierRepository, error) {
	publisher, err := publisherFactory.New(_suppliersTopic, &avro.AvroSupplier{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Supplier{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSupplierRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.SupplierRepository = (*SimpleSupplierRepository)(nil)

type SimpleSupplierRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleSupplierRepository) Create(ctx context.Context, supplier masterdataDomain.Supplier) error {
	entity := internal.FromSupplier(supplier)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating supplier in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(supplier.ID), convertToAvroSupplier(supplier))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleSupplierRepository) GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Supplier, error) {
	var entity internal.Supplier
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return masterdataDomain.Supplier{}, usecases.ErrSupplierNotFound
	}

	if err != nil {
		return masterdataDomain.Supplier{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSupplierRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]masterdataDomain.Supplier, int, error) {
	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Supplier{})

	err := query.Where("deleted_at IS NULL").Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Supplier
	err = query.
		Where("deleted_at IS NULL").
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]masterdataDomain.Supplier, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleSupplierRepository) Update(ctx context.Context, supplier masterdataDomain.Supplier) error {
	entity := internal.FromSupplier(supplier)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating supplier in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(supplier.ID), convertToAvroSupplier(supplier))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleSupplierRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	supplier, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	supplier.SoftDelete()
	return r.Update(ctx, supplier)
}

func convertToAvroSupplier(supplier masterdataDomain.Supplier) *avro.AvroSupplier {
	result := &avro.AvroSupplier{
		ID:           supplier.ID.String(),
		Version:      int(supplier.Version),
		Name:         string(supplier.Name),
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		ServiceAreas: supplier.ServiceAreas,
		IsActive:     supplier.IsActive,
		CreatedAt:    supplier.CreatedAt.Time,
		UpdatedAt:    supplier.UpdatedAt.Time,
	}

	if supplier.DeletedAt != nil {
		result.DeletedAt = &supplier.DeletedAt.Time
	}

	return result
}
