package internal

import (
	"facilityhub-server/internal/infra/utils"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Location struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Version    int         `json:"version"`
	CustomerID string      `json:"customer_id" gorm:"index;not null"`
	Name       string      `json:"name" gorm:"not null"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	PostalCode string      `json:"postal_code"`
	Country    string      `json:"country"`
	CreatedAt  utils.Time  `json:"created_at"`
	UpdatedAt  utils.Time  `json:"updated_at"`
	DeletedAt  *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Location) TableName() string {
	return "locations"
}

func (l Location) ToDomain() masterdataDomain.Location {
	result := masterdataDomain.Location{
		ID:         shareddomain.ID(l.ID),
		Version:    shareddomain.Version(l.Version),
		CustomerID: shareddomain.ID(l.CustomerID),
		Name:       shareddomain.Name(l.Name),
		Address:    l.Address,
		City:       l.City,
		PostalCode: l.PostalCode,
		Country:    l.Country,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}

	if l.DeletedAt != nil {
		result.DeletedAt = l.DeletedAt
	}

	return result
}

func FromLocation(value masterdataDomain.Location) Location {
	result := Location{
		ID:         value.ID.String(),
		Version:    int(value.Version),
		CustomerID: value.CustomerID.String(),
		Name:       string(value.Name),
		Address:    value.Address,
		City:       value.City,
		PostalCode: value.PostalCode,
		Country:    value.Country,
		CreatedAt:  value.CreatedAt,
		UpdatedAt:  value.UpdatedAt,
	}

	if value.DeletedAt != nil {
		result.DeletedAt = value.DeletedAt
	}

	return result
}
