package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceTemplate struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	Version     int              `json:"version"`
	Name        string           `json:"name" gorm:"not null"`
	CategoryID  string           `json:"category_id" gorm:"index"`
	Description string           `json:"description"`
	Fields      FieldDefinitions `json:"fields"`
	CreatedAt   utils.Time       `json:"created_at"`
	UpdatedAt   utils.Time       `json:"updated_at"`
	DeletedAt   *utils.Time      `json:"deleted_at,omitempty" gorm:"index"`
}

func (ServiceTemplate) TableName() string {
	return "service_templates"
}

type FieldDefinition struct {
	ID                 string            `json:"id"`
	Label              string            `json:"label"`
	Type               string            `json:"type"`
	Required           bool              `json:"required"`
	DefaultValue       *any              `json:"default_value,omitempty"`
	Options            []string          `json:"options,omitempty"`
	Section            string            `json:"section,omitempty"`
	ConditionalDisplay *DisplayCondition `json:"conditional_display,omitempty"`
}

type DisplayCondition struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

// FieldDefinitions serializes the ordered field list as a JSON column so
// the whole template stays a single row.
type FieldDefinitions []FieldDefinition

func (f FieldDefinitions) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return json.Marshal(f)
}

func (f *FieldDefinitions) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*f = FieldDefinitions{}
		return nil
	default:
		return errors.New("invalid type for field definitions")
	}

	return json.Unmarshal(data, f)
}

func (t ServiceTemplate) ToDomain() catalogdomain.ServiceTemplate {
	fields := make([]catalogdomain.FieldDefinition, len(t.Fields))
	for i, field := range t.Fields {
		fields[i] = field.toDomain()
	}

	result := catalogdomain.ServiceTemplate{
		ID:          shareddomain.ID(t.ID),
		Version:     shareddomain.Version(t.Version),
		Name:        shareddomain.Name(t.Name),
		CategoryID:  shareddomain.ID(t.CategoryID),
		Description: shareddomain.Description(t.Description),
		Fields:      fields,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.DeletedAt != nil {
		result.DeletedAt = t.DeletedAt
	}

	return result
}

func (f FieldDefinition) toDomain() catalogdomain.FieldDefinition {
	result := catalogdomain.FieldDefinition{
		ID:           shareddomain.ID(f.ID),
		Label:        f.Label,
		Type:         catalogdomain.FieldType(f.Type),
		Required:     f.Required,
		DefaultValue: f.DefaultValue,
		Options:      f.Options,
		Section:      f.Section,
	}

	if f.ConditionalDisplay != nil {
		result.ConditionalDisplay = &catalogdomain.DisplayCondition{
			FieldID: shareddomain.ID(f.ConditionalDisplay.FieldID),
			Value:   f.ConditionalDisplay.Value,
		}
	}

	return result
}

func FromServiceTemplate(value catalogdomain.ServiceTemplate) ServiceTemplate {
	fields := make(FieldDefinitions, len(value.Fields))
	for i, field := range value.Fields {
		fields[i] = fromFieldDefinition(field)
	}

	result := ServiceTemplate{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		Name:        string(value.Name),
		CategoryID:  value.CategoryID.String(),
		Description: string(value.Description),
		Fields:      fields,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}

	if value.DeletedAt != nil {
		result.DeletedAt = value.DeletedAt
	}

	return result
}

func fromFieldDefinition(value catalogdomain.FieldDefinition) FieldDefinition {
	result := FieldDefinition{
		ID:           value.ID.String(),
		Label:        value.Label,
		Type:         string(value.Type),
		Required:     value.Required,
		DefaultValue: value.DefaultValue,
		Options:      value.Options,
		Section:      value.Section,
	}

	if value.ConditionalDisplay != nil {
		result.ConditionalDisplay = &DisplayCondition{
			FieldID: value.ConditionalDisplay.FieldID.String(),
			Value:   value.ConditionalDisplay.Value,
		}
	}

	return result
}
