package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"facilityhub-server/internal/infra/utils"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

// WorkOrderDetails carries the mutable details of a work order. Nil means
// "leave unchanged".
type WorkOrderDetails struct {
	Title       *string
	Description *string
	Priority    *modulesdomain.WorkOrderPriority
	AssigneeID  *shareddomain.ID
	DueDate     *time.Time
}

// CompleteOptions controls work order completion. LogService appends a
// service log against the module when set.
type CompleteOptions struct {
	LogService  bool
	PerformedBy string
	Description string
}

type WorkOrderService interface {
	CreateWorkOrder(ctx context.Context, order modulesdomain.WorkOrder) error
	GetWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error)
	ListWorkOrders(ctx context.Context, pagination Pagination) ([]modulesdomain.WorkOrder, int, error)
	ListWorkOrdersByModule(ctx context.Context, moduleID shareddomain.ID, pagination Pagination) ([]modulesdomain.WorkOrder, int, error)
	UpdateWorkOrder(ctx context.Context, id shareddomain.ID, details WorkOrderDetails) (modulesdomain.WorkOrder, error)
	StartWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error)
	CompleteWorkOrder(ctx context.Context, id shareddomain.ID, options CompleteOptions) (modulesdomain.WorkOrder, error)
	CancelWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id shareddomain.ID) error
}

func NewWorkOrderService(
	repository WorkOrderRepository,
	moduleRepository ModuleRepository,
	logService LogService,
) *SimpleWorkOrderService {
	return &SimpleWorkOrderService{
		repository:       repository,
		moduleRepository: moduleRepository,
		logService:       logService,
	}
}

var _ WorkOrderService = (*SimpleWorkOrderService)(nil)

type SimpleWorkOrderService struct {
	repository       WorkOrderRepository
	moduleRepository ModuleRepository
	logService       LogService
}

func (s *SimpleWorkOrderService) CreateWorkOrder(ctx context.Context, order modulesdomain.WorkOrder) error {
	module, err := s.moduleRepository.GetByID(ctx, order.ModuleID)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("getting service module: %w", err)
	}

	if module.IsDeleted() {
		return ErrModuleNotFound
	}

	err = s.repository.Create(ctx, order)
	if err != nil {
		slog.Error("creating work order", slog.String("error", err.Error()))
		return fmt.Errorf("creating work order: %w", err)
	}

	slog.Info("work order created successfully",
		slog.String("id", order.ID.String()),
		slog.String("module_id", order.ModuleID.String()))

	return nil
}

func (s *SimpleWorkOrderService) GetWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkOrderNotFound) {
			return modulesdomain.WorkOrder{}, ErrWorkOrderNotFound
		}
		slog.Error("getting work order", slog.String("error", err.Error()))
		return modulesdomain.WorkOrder{}, fmt.Errorf("getting work order: %w", err)
	}

	return order, nil
}

func (s *SimpleWorkOrderService) ListWorkOrders(ctx context.Context, pagination Pagination) ([]modulesdomain.WorkOrder, int, error) {
	orders, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing work orders", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing work orders: %w", err)
	}

	return orders, total, nil
}

func (s *SimpleWorkOrderService) ListWorkOrdersByModule(
	ctx context.Context,
	moduleID shareddomain.ID,
	pagination Pagination,
) ([]modulesdomain.WorkOrder, int, error) {
	orders, total, err := s.repository.FindAllByModule(ctx, moduleID, pagination)
	if err != nil {
		slog.Error("listing work orders by module", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing work orders by module: %w", err)
	}

	return orders, total, nil
}

func (s *SimpleWorkOrderService) UpdateWorkOrder(ctx context.Context, id shareddomain.ID, details WorkOrderDetails) (modulesdomain.WorkOrder, error) {
	order, err := s.editableWorkOrder(ctx, id)
	if err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	if details.Title != nil {
		order.Title = *details.Title
	}
	if details.Description != nil {
		order.Description = *details.Description
	}
	if details.Priority != nil {
		if !details.Priority.IsValid() {
			return modulesdomain.WorkOrder{}, errors.New("invalid work order priority")
		}
		order.Priority = *details.Priority
	}
	if details.AssigneeID != nil {
		order.AssigneeID = details.AssigneeID
	}
	if details.DueDate != nil {
		order.DueDate = &utils.Time{Time: *details.DueDate}
	}

	order.Version++
	order.UpdatedAt = utils.Time{Time: time.Now()}

	err = s.repository.Update(ctx, order)
	if err != nil {
		slog.Error("updating work order", slog.String("error", err.Error()))
		return modulesdomain.WorkOrder{}, fmt.Errorf("updating work order: %w", err)
	}

	return order, nil
}

func (s *SimpleWorkOrderService) StartWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error) {
	order, err := s.editableWorkOrder(ctx, id)
	if err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	if err := order.Start(); err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	err = s.repository.Update(ctx, order)
	if err != nil {
		slog.Error("starting work order", slog.String("error", err.Error()))
		return modulesdomain.WorkOrder{}, fmt.Errorf("starting work order: %w", err)
	}

	slog.Info("work order started", slog.String("id", id.String()))
	return order, nil
}

func (s *SimpleWorkOrderService) CompleteWorkOrder(ctx context.Context, id shareddomain.ID, options CompleteOptions) (modulesdomain.WorkOrder, error) {
	order, err := s.editableWorkOrder(ctx, id)
	if err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	if err := order.Complete(); err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	err = s.repository.Update(ctx, order)
	if err != nil {
		slog.Error("completing work order", slog.String("error", err.Error()))
		return modulesdomain.WorkOrder{}, fmt.Errorf("completing work order: %w", err)
	}

	slog.Info("work order completed", slog.String("id", id.String()))

	if options.LogService {
		description := options.Description
		if description == "" {
			description = fmt.Sprintf("work order completed: %s", order.Title)
		}

		log, err := modulesdomain.NewServiceLogBuilder().
			WithModuleID(order.ModuleID).
			WithPerformedAt(order.CompletedAt.Time).
			WithPerformedBy(options.PerformedBy).
			WithDescription(description).
			Build()
		if err != nil {
			return modulesdomain.WorkOrder{}, fmt.Errorf("building service log: %w", err)
		}

		if err := s.logService.CreateLog(ctx, log); err != nil {
			return modulesdomain.WorkOrder{}, fmt.Errorf("logging completed service: %w", err)
		}
	}

	return order, nil
}

func (s *SimpleWorkOrderService) CancelWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error) {
	order, err := s.editableWorkOrder(ctx, id)
	if err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	if err := order.Cancel(); err != nil {
		return modulesdomain.WorkOrder{}, err
	}

	err = s.repository.Update(ctx, order)
	if err != nil {
		slog.Error("cancelling work order", slog.String("error", err.Error()))
		return modulesdomain.WorkOrder{}, fmt.Errorf("cancelling work order: %w", err)
	}

	slog.Info("work order cancelled", slog.String("id", id.String()))
	return order, nil
}

func (s *SimpleWorkOrderService) DeleteWorkOrder(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkOrderNotFound) {
			return ErrWorkOrderNotFound
		}
		slog.Error("deleting work order", slog.String("error", err.Error()))
		return fmt.Errorf("deleting work order: %w", err)
	}

	slog.Info("work order deleted successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleWorkOrderService) editableWorkOrder(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkOrderNotFound) {
			return modulesdomain.WorkOrder{}, ErrWorkOrderNotFound
		}
		return modulesdomain.WorkOrder{}, fmt.Errorf("getting work order: %w", err)
	}

	if order.IsDeleted() {
		return modulesdomain.WorkOrder{}, ErrWorkOrderNotFound
	}

	return order, nil
}
