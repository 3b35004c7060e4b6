package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	"facilityhub-server/internal/masterdata/persistence/internal"
	"facilityhub-server/internal/masterdata/usecases"
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	_customersTopic = "customers"
	_locationsTopic = "locations"
	_suppliersTopic = "suppliers"
)

func NewCustomerRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleCustomerRepository, error) {
	publisher, err := publisherFactory.New(_customersTopic, &avro.AvroCustomer{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Customer{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCustomerRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.CustomerRepository = (*SimpleCustomerRepository)(nil)

type SimpleCustomerRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleCustomerRepository) Create(ctx context.Context, customer masterdataDomain.Customer) error {
	entity := internal.FromCustomer(customer)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating customer in database: %w", err)
	}

	avroCustomer := convertToAvroCustomer(customer)

	slog.Debug("publishing customer to pubsub", slog.String("customer_id", customer.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(customer.ID), avroCustomer)
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleCustomerRepository) GetByID(ctx context.Context, id shareddomain.ID) (masterdataDomain.Customer, error) {
	var entity internal.Customer
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return masterdataDomain.Customer{}, usecases.ErrCustomerNotFound
	}

	if err != nil {
		return masterdataDomain.Customer{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCustomerRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]masterdataDomain.Customer, int, error) {
	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Customer{})

	err := query.Where("deleted_at IS NULL").Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Customer
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

	result := make([]masterdataDomain.Customer, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleCustomerRepository) Update(ctx context.Context, customer masterdataDomain.Customer) error {
	entity := internal.FromCustomer(customer)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating customer in database: %w", err)
	}

	avroCustomer := convertToAvroCustomer(customer)

	err = r.publisher.Publish(ctx, pubsub.Key(customer.ID), avroCustomer)
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleCustomerRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	customer.SoftDelete()
	return r.Update(ctx, customer)
}

func convertToAvroCustomer(customer masterdataDomain.Customer) *avro.AvroCustomer {
	result := &avro.AvroCustomer{
		ID:           customer.ID.String(),
		Version:      int(customer.Version),
		Name:         string(customer.Name),
		OrgNumber:    customer.OrgNumber,
		ContactEmail: customer.ContactEmail,
		Phone:        customer.Phone,
		IsActive:     customer.IsActive,
		CreatedAt:    customer.CreatedAt.Time,
		UpdatedAt:    customer.UpdatedAt.Time,
	}

	if customer.DeletedAt != nil {
		result.DeletedAt = &customer.DeletedAt.Time
	}

	return result
}
