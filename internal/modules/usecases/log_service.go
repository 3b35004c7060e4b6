package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"facilityhub-server/internal/infra/async"
	"facilityhub-server/internal/infra/utils"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"

	"github.com/robfig/cron/v3"
)

type LogService interface {
	CreateLog(ctx context.Context, log modulesdomain.ServiceLog) error
	ListLogsByModule(ctx context.Context, moduleID shareddomain.ID, pagination Pagination) ([]modulesdomain.ServiceLog, int, error)
}

func NewLogService(
	repository LogRepository,
	moduleRepository ModuleRepository,
	broker async.InternalBroker,
) *SimpleLogService {
	return &SimpleLogService{
		repository:       repository,
		moduleRepository: moduleRepository,
		broker:           broker,
		cronParser:       cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

var _ LogService = (*SimpleLogService)(nil)

type SimpleLogService struct {
	repository       LogRepository
	moduleRepository ModuleRepository
	broker           async.InternalBroker
	cronParser       cron.Parser
}

// CreateLog records a performed service and moves the module's service
// dates: lastServiceDate becomes the log's performedAt, and when the module
// carries a schedule the next occurrence after performedAt becomes the new
// nextServiceDate.
func (s *SimpleLogService) CreateLog(ctx context.Context, log modulesdomain.ServiceLog) error {
	module, err := s.moduleRepository.GetByID(ctx, log.ModuleID)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("getting service module: %w", err)
	}

	if module.IsDeleted() {
		return ErrModuleNotFound
	}

	err = s.repository.Create(ctx, log)
	if err != nil {
		slog.Error("creating service log", slog.String("error", err.Error()))
		return fmt.Errorf("creating service log: %w", err)
	}

	module.LastServiceDate = &log.PerformedAt
	if module.Schedule != nil {
		next, err := s.nextOccurrence(*module.Schedule, log.PerformedAt.Time)
		if err != nil {
			slog.Warn("parsing module schedule",
				slog.String("module_id", module.ID.String()),
				slog.String("schedule", *module.Schedule),
				slog.String("error", err.Error()))
		} else {
			module.NextServiceDate = &utils.Time{Time: next}
		}
	}

	module.Version++
	module.UpdatedAt = utils.Time{Time: time.Now()}

	err = s.moduleRepository.Update(ctx, module)
	if err != nil {
		slog.Error("updating module service dates", slog.String("error", err.Error()))
		return fmt.Errorf("updating module service dates: %w", err)
	}

	slog.Info("service log created successfully",
		slog.String("id", log.ID.String()),
		slog.String("module_id", log.ModuleID.String()))

	err = s.broker.Publish(ctx, ModuleEventsTopic, async.BrokerMessage{
		Event: _serviceLoggedEvent,
		Value: module,
	})
	if err != nil {
		slog.Warn("publishing service logged event", slog.String("error", err.Error()))
	}

	return nil
}

func (s *SimpleLogService) ListLogsByModule(
	ctx context.Context,
	moduleID shareddomain.ID,
	pagination Pagination,
) ([]modulesdomain.ServiceLog, int, error) {
	_, err := s.moduleRepository.GetByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return nil, 0, ErrModuleNotFound
		}
		return nil, 0, fmt.Errorf("getting service module: %w", err)
	}

	logs, total, err := s.repository.FindAllByModule(ctx, moduleID, pagination)
	if err != nil {
		slog.Error("listing service logs", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing service logs: %w", err)
	}

	return logs, total, nil
}

func (s *SimpleLogService) nextOccurrence(schedule string, after time.Time) (time.Time, error) {
	parsed, err := s.cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.Next(after), nil
}
