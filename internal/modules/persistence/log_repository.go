package persistence

import (
	"context"
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

func NewLogRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleLogRepository, error) {
	publisher, err := publisherFactory.New(_serviceLogsTopic, &avro.AvroServiceLog{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.ServiceLog{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLogRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.LogRepository = (*SimpleLogRepository)(nil)

type SimpleLogRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleLogRepository) Create(ctx context.Context, log modulesdomain.ServiceLog) error {
	entity := internal.FromServiceLog(log)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating service log in database: %w", err)
	}

	slog.Debug("publishing service log to pubsub", slog.String("log_id", log.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(log.ID), convertToAvroServiceLog(log))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleLogRepository) FindAllByModule(
	ctx context.Context,
	moduleID shareddomain.ID,
	pagination usecases.Pagination,
) ([]modulesdomain.ServiceLog, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.ServiceLog{}).
		Where("module_id = ?", moduleID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.ServiceLog
	err = query.
		Order("performed_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]modulesdomain.ServiceLog, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func convertToAvroServiceLog(log modulesdomain.ServiceLog) *avro.AvroServiceLog {
	return &avro.AvroServiceLog{
		ID:          log.ID.String(),
		Version:     int(log.Version),
		ModuleID:    log.ModuleID.String(),
		PerformedAt: log.PerformedAt.Time,
		PerformedBy: log.PerformedBy,
		Description: log.Description,
		Cost:        log.Cost,
		CreatedAt:   log.CreatedAt.Time,
	}
}
