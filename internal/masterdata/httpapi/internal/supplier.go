package internal

import (
	"time"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
)

type SupplierResponse struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	ServiceAreas []string  `json:"service_areas"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SupplierCreateRequest struct {
	Name         string   `json:"name"`
	ContactEmail string   `json:"contact_email"`
	Phone        string   `json:"phone"`
	ServiceAreas []string `json:"service_areas"`
}

type SupplierUpdateRequest struct {
	Name         *string   `json:"name,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	ServiceAreas *[]string `json:"service_areas,omitempty"`
}

func ToSupplierResponse(supplier masterdataDomain.Supplier) SupplierResponse {
	response := SupplierResponse{
		ID:           supplier.ID.String(),
		Version:      int(supplier.Version),
		Name:         string(supplier.Name),
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		ServiceAreas: supplier.ServiceAreas,
		IsActive:     supplier.IsActive,
		CreatedAt:    supplier.CreatedAt.Time,
		UpdatedAt:    supplier.UpdatedAt.Time,
	}

	if response.ServiceAreas == nil {
		response.ServiceAreas = []string{}
	}

	return response
}
