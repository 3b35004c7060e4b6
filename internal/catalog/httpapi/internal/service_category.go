package internal

import (
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
)

type ServiceCategoryResponse struct {
	ID          string    `json:"id"`
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceCategoryCreateRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type ServiceCategoryUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

func ToServiceCategoryResponse(category catalogdomain.ServiceCategory) ServiceCategoryResponse {
	return ServiceCategoryResponse{
		ID:          category.ID.String(),
		Version:     int(category.Version),
		Name:        string(category.Name),
		DisplayName: string(category.DisplayName),
		Color:       string(category.Color),
		Icon:        category.Icon,
		Description: string(category.Description),
		CreatedAt:   category.CreatedAt.Time,
		UpdatedAt:   category.UpdatedAt.Time,
	}
}
