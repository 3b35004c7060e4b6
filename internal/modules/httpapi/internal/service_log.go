package internal

import (
	"time"

	modulesdomain "facilityhub-server/internal/modules/domain"
)

type ServiceLogResponse struct {
	ID          string    `json:"id"`
	ModuleID    string    `json:"module_id"`
	PerformedAt time.Time `json:"performed_at"`
	PerformedBy string    `json:"performed_by"`
	Description string    `json:"description"`
	Cost        *float64  `json:"cost,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceLogCreateRequest struct {
	PerformedAt *time.Time `json:"performed_at"`
	PerformedBy string     `json:"performed_by"`
	Description string     `json:"description"`
	Cost        *float64   `json:"cost"`
}

func ToServiceLogResponse(log modulesdomain.ServiceLog) ServiceLogResponse {
	return ServiceLogResponse{
		ID:          log.ID.String(),
		ModuleID:    log.ModuleID.String(),
		PerformedAt: log.PerformedAt.Time,
		PerformedBy: log.PerformedBy,
		Description: log.Description,
		Cost:        log.Cost,
		CreatedAt:   log.CreatedAt.Time,
	}
}
