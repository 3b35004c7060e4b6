package domain

import (
	"errors"
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type WorkOrderPriority string

const (
	WorkOrderPriorityLow    WorkOrderPriority = "low"
	WorkOrderPriorityMedium WorkOrderPriority = "medium"
	WorkOrderPriorityHigh   WorkOrderPriority = "high"
	WorkOrderPriorityUrgent WorkOrderPriority = "urgent"
)

func (p WorkOrderPriority) IsValid() bool {
	switch p {
	case WorkOrderPriorityLow, WorkOrderPriorityMedium, WorkOrderPriorityHigh, WorkOrderPriorityUrgent:
		return true
	}
	return false
}

type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

var ErrInvalidWorkOrderTransition = errors.New("invalid work order status transition")

type WorkOrder struct {
	ID          shareddomain.ID
	Version     shareddomain.Version
	ModuleID    shareddomain.ID
	Title       string
	Description string
	Priority    WorkOrderPriority
	Status      WorkOrderStatus
	AssigneeID  *shareddomain.ID
	DueDate     *utils.Time
	CompletedAt *utils.Time
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
	DeletedAt   *utils.Time
}

func (w *WorkOrder) IsDeleted() bool {
	return w.DeletedAt != nil
}

func (w *WorkOrder) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	w.DeletedAt = &now
	w.UpdatedAt = now
}

func (w *WorkOrder) Start() error {
	if w.Status != WorkOrderStatusOpen {
		return ErrInvalidWorkOrderTransition
	}

	w.Status = WorkOrderStatusInProgress
	w.touch()
	return nil
}

func (w *WorkOrder) Complete() error {
	if w.Status != WorkOrderStatusOpen && w.Status != WorkOrderStatusInProgress {
		return ErrInvalidWorkOrderTransition
	}

	now := utils.Time{Time: time.Now()}
	w.Status = WorkOrderStatusCompleted
	w.CompletedAt = &now
	w.touch()
	return nil
}

func (w *WorkOrder) Cancel() error {
	if w.Status == WorkOrderStatusCompleted || w.Status == WorkOrderStatusCancelled {
		return ErrInvalidWorkOrderTransition
	}

	w.Status = WorkOrderStatusCancelled
	w.touch()
	return nil
}

func (w *WorkOrder) touch() {
	w.Version++
	w.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewWorkOrderBuilder() *workOrderBuilder {
	return &workOrderBuilder{}
}

type workOrderBuilder struct {
	actions []workOrderHandler
}

type workOrderHandler func(w *WorkOrder) error

func (b *workOrderBuilder) WithModuleID(value shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.ModuleID = value
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithTitle(value string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.Title = value
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithDescription(value string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.Description = value
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithPriority(value WorkOrderPriority) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if !value.IsValid() {
			return errors.New("invalid work order priority")
		}
		w.Priority = value
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithAssigneeID(value shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.AssigneeID = &value
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithDueDate(value time.Time) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.DueDate = &utils.Time{Time: value}
		return nil
	})
	return b
}

func (b *workOrderBuilder) Build() (WorkOrder, error) {
	now := utils.Time{Time: time.Now()}
	result := WorkOrder{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Priority:  WorkOrderPriorityMedium,
		Status:    WorkOrderStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return WorkOrder{}, err
		}
	}

	if result.ModuleID == "" {
		return WorkOrder{}, errors.New("module id is required")
	}
	if result.Title == "" {
		return WorkOrder{}, errors.New("title is required")
	}

	return result, nil
}
