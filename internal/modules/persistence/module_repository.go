package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	modulesdomain "facilityhub-server/internal/modules/domain"
	"facilityhub-server/internal/modules/persistence/internal"
	"facilityhub-server/internal/modules/usecases"
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	_serviceModulesTopic = "service_modules"
	_serviceLogsTopic    = "service_logs"
	_workOrdersTopic     = "work_orders"
)

func NewModuleRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleModuleRepository, error) {
	publisher, err := publisherFactory.New(_serviceModulesTopic, &avro.AvroServiceModule{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.ServiceModule{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleModuleRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ModuleRepository = (*SimpleModuleRepository)(nil)

type SimpleModuleRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleModuleRepository) Create(ctx context.Context, module modulesdomain.ServiceModule) error {
	entity := internal.FromServiceModule(module)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating service module in database: %w", err)
	}

	slog.Debug("publishing service module to pubsub", slog.String("module_id", module.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(module.ID), convertToAvroServiceModule(module))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleModuleRepository) GetByID(ctx context.Context, id shareddomain.ID) (modulesdomain.ServiceModule, error) {
	var entity internal.ServiceModule
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return modulesdomain.ServiceModule{}, usecases.ErrModuleNotFound
	}

	if err != nil {
		return modulesdomain.ServiceModule{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleModuleRepository) FindAll(
	ctx context.Context,
	filter usecases.ModuleFilter,
	pagination usecases.Pagination,
) ([]modulesdomain.ServiceModule, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.ServiceModule{}).Where("deleted_at IS NULL")
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID.String())
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID.String())
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID.String())
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.ServiceModule
	err = query.
		Order("module_code ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]modulesdomain.ServiceModule, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleModuleRepository) FindAllWithNextServiceBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]modulesdomain.ServiceModule, error) {
	var entities []internal.ServiceModule
	err := r.orm.
		WithContext(ctx).
		Where("next_service_date IS NOT NULL AND next_service_date < ? AND deleted_at IS NULL", cutoff).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]modulesdomain.ServiceModule, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleModuleRepository) Update(ctx context.Context, module modulesdomain.ServiceModule) error {
	entity := internal.FromServiceModule(module)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating service module in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(module.ID), convertToAvroServiceModule(module))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleModuleRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	module, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	module.SoftDelete()
	return r.Update(ctx, module)
}

// NextSequence counts every row ever written, deleted ones included, so
// module codes are never reused.
func (r *SimpleModuleRepository) NextSequence(ctx context.Context) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.ServiceModule{}).
		Count(&total).
		Error()

	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(total) + 1, nil
}

func convertToAvroServiceModule(module modulesdomain.ServiceModule) *avro.AvroServiceModule {
	values, err := json.Marshal(internal.FromServiceModule(module).FieldValues)
	if err != nil {
		values = []byte("{}")
	}

	result := &avro.AvroServiceModule{
		ID:          module.ID.String(),
		Version:     int(module.Version),
		ModuleCode:  module.ModuleCode,
		CustomerID:  module.CustomerID.String(),
		LocationID:  module.LocationID.String(),
		TemplateID:  module.TemplateID.String(),
		CategoryID:  module.CategoryID.String(),
		FieldValues: string(values),
		Status:      string(module.Status),
		Schedule:    module.Schedule,
		Notes:       module.Notes,
		CreatedAt:   module.CreatedAt.Time,
		UpdatedAt:   module.UpdatedAt.Time,
	}

	if module.SupplierID != nil {
		id := module.SupplierID.String()
		result.SupplierID = &id
	}
	if module.ResponsibleUserID != nil {
		id := module.ResponsibleUserID.String()
		result.ResponsibleUserID = &id
	}
	if module.NextServiceDate != nil {
		result.NextServiceDate = &module.NextServiceDate.Time
	}
	if module.LastServiceDate != nil {
		result.LastServiceDate = &module.LastServiceDate.Time
	}
	if module.DeletedAt != nil {
		result.DeletedAt = &module.DeletedAt.Time
	}

	return result
}
