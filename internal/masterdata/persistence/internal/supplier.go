package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"facilityhub-server/internal/infra/utils"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Supplier struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	Version      int          `json:"version"`
	Name         string       `json:"name" gorm:"not null"`
	ContactEmail string       `json:"contact_email"`
	Phone        string       `json:"phone"`
	ServiceAreas ServiceAreas `json:"service_areas"`
	IsActive     bool         `json:"is_active" gorm:"default:true"`
	CreatedAt    utils.Time   `json:"created_at"`
	UpdatedAt    utils.Time   `json:"updated_at"`
	DeletedAt    *utils.Time  `json:"deleted_at,omitempty" gorm:"index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

type ServiceAreas []string

func (s ServiceAreas) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *ServiceAreas) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*s = ServiceAreas{}
		return nil
	default:
		return errors.New("invalid type for service areas")
	}

	return json.Unmarshal(data, s)
}

func (s Supplier) ToDomain() masterdataDomain.Supplier {
	result := masterdataDomain.Supplier{
		ID:           shareddomain.ID(s.ID),
		Version:      shareddomain.Version(s.Version),
		Name:         shareddomain.Name(s.Name),
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		ServiceAreas: []string(s.ServiceAreas),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	if s.DeletedAt != nil {
		result.DeletedAt = s.DeletedAt
	}

	return result
}

func FromSupplier(value masterdataDomain.Supplier) Supplier {
	result := Supplier{
		ID:           value.ID.String(),
		Version:      int(value.Version),
		Name:         string(value.Name),
		ContactEmail: value.ContactEmail,
		Phone:        value.Phone,
		ServiceAreas: ServiceAreas(value.ServiceAreas),
		IsActive:     value.IsActive,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}

	if value.DeletedAt != nil {
		result.DeletedAt = value.DeletedAt
	}

	return result
}
