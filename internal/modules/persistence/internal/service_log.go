package internal

import (
	"facilityhub-server/internal/infra/utils"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceLog struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Version     int        `json:"version"`
	ModuleID    string     `json:"module_id" gorm:"index"`
	PerformedAt utils.Time `json:"performed_at" gorm:"index"`
	PerformedBy string     `json:"performed_by"`
	Description string     `json:"description"`
	Cost        *float64   `json:"cost,omitempty"`
	CreatedAt   utils.Time `json:"created_at"`
}

func (ServiceLog) TableName() string {
	return "service_logs"
}

func (l ServiceLog) ToDomain() modulesdomain.ServiceLog {
	return modulesdomain.ServiceLog{
		ID:          shareddomain.ID(l.ID),
		Version:     shareddomain.Version(l.Version),
		ModuleID:    shareddomain.ID(l.ModuleID),
		PerformedAt: l.PerformedAt,
		PerformedBy: l.PerformedBy,
		Description: l.Description,
		Cost:        l.Cost,
		CreatedAt:   l.CreatedAt,
	}
}

func FromServiceLog(value modulesdomain.ServiceLog) ServiceLog {
	return ServiceLog{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		ModuleID:    value.ModuleID.String(),
		PerformedAt: value.PerformedAt,
		PerformedBy: value.PerformedBy,
		Description: value.Description,
		Cost:        value.Cost,
		CreatedAt:   value.CreatedAt,
	}
}
