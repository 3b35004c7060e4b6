package internal

import (
	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceCategory struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Version     int        `json:"version"`
	Name        string     `json:"name" gorm:"not null;uniqueIndex"`
	DisplayName string     `json:"display_name"`
	Color       string     `json:"color"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	CreatedAt   utils.Time `json:"created_at"`
	UpdatedAt   utils.Time `json:"updated_at"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

func (c ServiceCategory) ToDomain() catalogdomain.ServiceCategory {
	return catalogdomain.ServiceCategory{
		ID:          shareddomain.ID(c.ID),
		Version:     shareddomain.Version(c.Version),
		Name:        shareddomain.Name(c.Name),
		DisplayName: shareddomain.DisplayName(c.DisplayName),
		Color:       shareddomain.Color(c.Color),
		Icon:        c.Icon,
		Description: shareddomain.Description(c.Description),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromServiceCategory(value catalogdomain.ServiceCategory) ServiceCategory {
	return ServiceCategory{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		Name:        string(value.Name),
		DisplayName: string(value.DisplayName),
		Color:       string(value.Color),
		Icon:        value.Icon,
		Description: string(value.Description),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}
