package internal

import (
	"time"

	modulesdomain "facilityhub-server/internal/modules/domain"
)

type WorkOrderResponse struct {
	ID          string     `json:"id"`
	Version     int        `json:"version"`
	ModuleID    string     `json:"module_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type WorkOrderCreateRequest struct {
	ModuleID    string     `json:"module_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type WorkOrderUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type WorkOrderCompleteRequest struct {
	LogService  bool   `json:"log_service"`
	PerformedBy string `json:"performed_by"`
	Description string `json:"description"`
}

func ToWorkOrderResponse(order modulesdomain.WorkOrder) WorkOrderResponse {
	result := WorkOrderResponse{
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

	return result
}
