package internal

import (
	"facilityhub-server/internal/infra/utils"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Customer struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	Version      int         `json:"version"`
	Name         string      `json:"name" gorm:"not null"`
	OrgNumber    string      `json:"org_number"`
	ContactEmail string      `json:"contact_email"`
	Phone        string      `json:"phone"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	CreatedAt    utils.Time  `json:"created_at"`
	UpdatedAt    utils.Time  `json:"updated_at"`
	DeletedAt    *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c Customer) ToDomain() masterdataDomain.Customer {
	result := masterdataDomain.Customer{
		ID:           shareddomain.ID(c.ID),
		Version:      shareddomain.Version(c.Version),
		Name:         shareddomain.Name(c.Name),
		OrgNumber:    c.OrgNumber,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.DeletedAt != nil {
		result.DeletedAt = c.DeletedAt
	}

	return result
}

func FromCustomer(value masterdataDomain.Customer) Customer {
	result := Customer{
		ID:           value.ID.String(),
		Version:      int(value.Version),
		Name:         string(value.Name),
		OrgNumber:    value.OrgNumber,
		ContactEmail: value.ContactEmail,
		Phone:        value.Phone,
		IsActive:     value.IsActive,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}

	if value.DeletedAt != nil {
		result.DeletedAt = value.DeletedAt
	}

	return result
}
