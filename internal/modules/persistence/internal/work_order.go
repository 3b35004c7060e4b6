package internal

import (
	"facilityhub-server/internal/infra/utils"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type WorkOrder struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Version     int         `json:"version"`
	ModuleID    string      `json:"module_id" gorm:"index"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status" gorm:"index"`
	AssigneeID  *string     `json:"assignee_id,omitempty"`
	DueDate     *utils.Time `json:"due_date,omitempty" gorm:"index"`
	CompletedAt *utils.Time `json:"completed_at,omitempty"`
	CreatedAt   utils.Time  `json:"created_at"`
	UpdatedAt   utils.Time  `json:"updated_at"`
	DeletedAt   *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

func (w WorkOrder) ToDomain() modulesdomain.WorkOrder {
	result := modulesdomain.WorkOrder{
		ID:          shareddomain.ID(w.ID),
		Version:     shareddomain.Version(w.Version),
		ModuleID:    shareddomain.ID(w.ModuleID),
		Title:       w.Title,
		Description: w.Description,
		Priority:    modulesdomain.WorkOrderPriority(w.Priority),
		Status:      modulesdomain.WorkOrderStatus(w.Status),
		DueDate:     w.DueDate,
		CompletedAt: w.CompletedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		DeletedAt:   w.DeletedAt,
	}

	if w.AssigneeID != nil {
		id := shareddomain.ID(*w.AssigneeID)
		result.AssigneeID = &id
	}

	return result
}

func FromWorkOrder(value modulesdomain.WorkOrder) WorkOrder {
	result := WorkOrder{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		ModuleID:    value.ModuleID.String(),
		Title:       value.Title,
		Description: value.Description,
		Priority:    string(value.Priority),
		Status:      string(value.Status),
		DueDate:     value.DueDate,
		CompletedAt: value.CompletedAt,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		DeletedAt:   value.DeletedAt,
	}

	if value.AssigneeID != nil {
		result.AssigneeID = utils.Pointer(value.AssigneeID.String())
	}

	return result
}
