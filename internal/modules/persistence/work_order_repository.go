package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
	modulesdomain "facilityhub-server/internal/modules/domain"
	"facilityhub-server/internal/modules/persistence/internal"
	"facilityhub-server/internal/modules/usecases"
	"facilityhub-server/internal/shared_kernel/avro"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

func NewWorkOrderRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleWorkOrderRepository, error) {
	publisher, err := publisherFactory.New(_workOrdersTopic, &avro.AvroWorkOrder{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.WorkOrder{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleWorkOrderRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.WorkOrderRepository = (*SimpleWorkOrderRepository)(nil)

type SimpleWorkOrderRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleWorkOrderRepository) Create(ctx context.Context, order modulesdomain.WorkOrder) error {
	entity := internal.FromWorkOrder(order)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating work order in database: %w", err)
	}

	slog.Debug("publishing work order to pubsub", slog.String("work_order_id", order.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(order.ID), convertToAvroWorkOrder(order))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleWorkOrderRepository) GetByID(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error) {
	var entity internal.WorkOrder
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return modulesdomain.WorkOrder{}, usecases.ErrWorkOrderNotFound
	}

	if err != nil {
		return modulesdomain.WorkOrder{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleWorkOrderRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]modulesdomain.WorkOrder, int, error) {
	return r.findAll(ctx, pagination, "")
}

func (r *SimpleWorkOrderRepository) FindAllByModule(
	ctx context.Context,
	moduleID shareddomain.ID,
	pagination usecases.Pagination,
) ([]modulesdomain.WorkOrder, int, error) {
	return r.findAll(ctx, pagination, moduleID)
}

func (r *SimpleWorkOrderRepository) findAll(
	ctx context.Context,
	pagination usecases.Pagination,
	moduleID shareddomain.ID,
) ([]modulesdomain.WorkOrder, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.WorkOrder{}).Where("deleted_at IS NULL")
	if moduleID != "" {
		query = query.Where("module_id = ?", moduleID.String())
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.WorkOrder
	err = query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]modulesdomain.WorkOrder, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleWorkOrderRepository) Update(ctx context.Context, order modulesdomain.WorkOrder) error {
	entity := internal.FromWorkOrder(order)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating work order in database: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(order.ID), convertToAvroWorkOrder(order))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleWorkOrderRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	order.SoftDelete()
	return r.Update(ctx, order)
}

func convertToAvroWorkOrder(order modulesdomain.WorkOrder) *avro.AvroWorkOrder {
	result := &avro.AvroWorkOrder{
		ID:          order.ID.String(),
		Version:     int(order.Version),
		ModuleID:    order.ModuleID.String(),
		Title:       order.Title,
		Description: order.Description,
		Priority:    string(order.Priority),
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt.Time,
		UpdatedAt:   order.UpdatedAt.Time,
	}

	if order.AssigneeID != nil {
		id := order.AssigneeID.String()
		result.AssigneeID = &id
	}
	if order.DueDate != nil {
		result.DueDate = &order.DueDate.Time
	}
	if order.CompletedAt != nil {
		result.CompletedAt = &order.CompletedAt.Time
	}
	if order.DeletedAt != nil {
		result.DeletedAt = &order.DeletedAt.Time
	}

	return result
}
