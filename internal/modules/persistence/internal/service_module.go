package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/utils"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceModule struct {
	ID                string      `json:"id" gorm:"primaryKey"`
	Version           int         `json:"version"`
	ModuleCode        string      `json:"module_code" gorm:"uniqueIndex"`
	CustomerID        string      `json:"customer_id" gorm:"index"`
	LocationID        string      `json:"location_id" gorm:"index"`
	TemplateID        string      `json:"template_id" gorm:"index"`
	CategoryID        string      `json:"category_id" gorm:"index"`
	SupplierID        *string     `json:"supplier_id,omitempty"`
	ResponsibleUserID *string     `json:"responsible_user_id,omitempty"`
	FieldValues       FieldValues `json:"field_values"`
	Status            string      `json:"status"`
	Schedule          *string     `json:"schedule,omitempty"`
	NextServiceDate   *utils.Time `json:"next_service_date,omitempty" gorm:"index"`
	LastServiceDate   *utils.Time `json:"last_service_date,omitempty"`
	Notes             string      `json:"notes"`
	CreatedAt         utils.Time  `json:"created_at"`
	UpdatedAt         utils.Time  `json:"updated_at"`
	DeletedAt         *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (ServiceModule) TableName() string {
	return "service_modules"
}

// FieldValues serializes the module's value map as a JSON column.
type FieldValues map[string]any

func (f FieldValues) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "{}", nil
	}
	return json.Marshal(f)
}

func (f *FieldValues) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*f = FieldValues{}
		return nil
	default:
		return errors.New("invalid type for field values")
	}

	return json.Unmarshal(data, f)
}

func (m ServiceModule) ToDomain() modulesdomain.ServiceModule {
	values := make(catalogdomain.FieldValues, len(m.FieldValues))
	for key, value := range m.FieldValues {
		values[shareddomain.ID(key)] = value
	}

	result := modulesdomain.ServiceModule{
		ID:              shareddomain.ID(m.ID),
		Version:         shareddomain.Version(m.Version),
		ModuleCode:      m.ModuleCode,
		CustomerID:      shareddomain.ID(m.CustomerID),
		LocationID:      shareddomain.ID(m.LocationID),
		TemplateID:      shareddomain.ID(m.TemplateID),
		CategoryID:      shareddomain.ID(m.CategoryID),
		FieldValues:     values,
		Status:          modulesdomain.ModuleStatus(m.Status),
		Schedule:        m.Schedule,
		NextServiceDate: m.NextServiceDate,
		LastServiceDate: m.LastServiceDate,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       m.DeletedAt,
	}

	if m.SupplierID != nil {
		id := shareddomain.ID(*m.SupplierID)
		result.SupplierID = &id
	}
	if m.ResponsibleUserID != nil {
		id := shareddomain.ID(*m.ResponsibleUserID)
		result.ResponsibleUserID = &id
	}

	return result
}

func FromServiceModule(value modulesdomain.ServiceModule) ServiceModule {
	values := make(FieldValues, len(value.FieldValues))
	for key, v := range value.FieldValues {
		values[key.String()] = v
	}

	result := ServiceModule{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		ModuleCode:      value.ModuleCode,
		CustomerID:      value.CustomerID.String(),
		LocationID:      value.LocationID.String(),
		TemplateID:      value.TemplateID.String(),
		CategoryID:      value.CategoryID.String(),
		FieldValues:     values,
		Status:          string(value.Status),
		Schedule:        value.Schedule,
		NextServiceDate: value.NextServiceDate,
		LastServiceDate: value.LastServiceDate,
		Notes:           value.Notes,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
		DeletedAt:       value.DeletedAt,
	}

	if value.SupplierID != nil {
		result.SupplierID = utils.Pointer(value.SupplierID.String())
	}
	if value.ResponsibleUserID != nil {
		result.ResponsibleUserID = utils.Pointer(value.ResponsibleUserID.String())
	}

	return result
}
