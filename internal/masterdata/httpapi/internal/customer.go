package internal

import (
	"time"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
)

type CustomerResponse struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	Name         string    `json:"name"`
	OrgNumber    string    `json:"org_number"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomerCreateRequest struct {
	Name         string `json:"name"`
	OrgNumber    string `json:"org_number"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

type CustomerUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	OrgNumber    *string `json:"org_number,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

func ToCustomerResponse(customer masterdataDomain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           customer.ID.String(),
		Version:      int(customer.Version),
		Name:         string(customer.Name),
		OrgNumber:    customer.OrgNumber,
		ContactEmail: customer.ContactEmail,
		Phone:        customer.Phone,
		IsActive:     customer.IsActive,
		CreatedAt:    customer.CreatedAt.Time,
		UpdatedAt:    customer.UpdatedAt.Time,
	}
}
