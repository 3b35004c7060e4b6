package internal

import (
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesUsecases "facilityhub-server/internal/modules/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceModuleResponse struct {
	ID                string         `json:"id"`
	Version           int            `json:"version"`
	ModuleCode        string         `json:"module_code"`
	CustomerID        string         `json:"customer_id"`
	LocationID        string         `json:"location_id"`
	TemplateID        string         `json:"template_id"`
	CategoryID        string         `json:"category_id"`
	SupplierID        *string        `json:"supplier_id,omitempty"`
	ResponsibleUserID *string        `json:"responsible_user_id,omitempty"`
	FieldValues       map[string]any `json:"field_values"`
	Status            string         `json:"status"`
	DerivedStatus     string         `json:"derived_status"`
	Schedule          *string        `json:"schedule,omitempty"`
	NextServiceDate   *time.Time     `json:"next_service_date,omitempty"`
	LastServiceDate   *time.Time     `json:"last_service_date,omitempty"`
	Notes             string         `json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type ServiceModuleCreateRequest struct {
	CustomerID        string     `json:"customer_id"`
	LocationID        string     `json:"location_id"`
	TemplateID        string     `json:"template_id"`
	SupplierID        *string    `json:"supplier_id"`
	ResponsibleUserID *string    `json:"responsible_user_id"`
	Schedule          *string    `json:"schedule"`
	NextServiceDate   *time.Time `json:"next_service_date"`
	Notes             string     `json:"notes"`
}

type ServiceModuleUpdateRequest struct {
	Notes             *string    `json:"notes"`
	Status            *string    `json:"status"`
	Schedule          *string    `json:"schedule"`
	NextServiceDate   *time.Time `json:"next_service_date"`
	SupplierID        *string    `json:"supplier_id"`
	ResponsibleUserID *string    `json:"responsible_user_id"`
}

type RenderedModuleResponse struct {
	Module   ServiceModuleResponse     `json:"module"`
	Template string                    `json:"template_id"`
	Sections []RenderedSectionResponse `json:"sections"`
}

type RenderedSectionResponse struct {
	Name   string                  `json:"name"`
	Fields []RenderedFieldResponse `json:"fields"`
}

type RenderedFieldResponse struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	Required     bool     `json:"required"`
	Options      []string `json:"options"`
	Section      string   `json:"section"`
	Value        any      `json:"value"`
	DisplayValue string   `json:"display_value"`
	Visible      bool     `json:"visible"`
}

func ToServiceModuleResponse(module modulesdomain.ServiceModule) ServiceModuleResponse {
	values := make(map[string]any, len(module.FieldValues))
	for key, value := range module.FieldValues {
		values[key.String()] = value
	}

	result := ServiceModuleResponse{
		ID:          module.ID.String(),
		Version:     int(module.Version),
		ModuleCode:  module.ModuleCode,
		CustomerID:  module.CustomerID.String(),
		LocationID:  module.LocationID.String(),
		TemplateID:  module.TemplateID.String(),
		CategoryID:  module.CategoryID.String(),
		FieldValues: values,
		Status:      string(module.Status),
		Schedule:    module.Schedule,
		Notes:       module.Notes,
		CreatedAt:   module.CreatedAt.Time,
		UpdatedAt:   module.UpdatedAt.Time,
	}

	var nextServiceDate *time.Time
	if module.NextServiceDate != nil {
		nextServiceDate = &module.NextServiceDate.Time
		result.NextServiceDate = nextServiceDate
	}
	result.DerivedStatus = string(modulesdomain.DeriveStatus(module.Status, nextServiceDate, time.Now()))

	if module.LastServiceDate != nil {
		result.LastServiceDate = &module.LastServiceDate.Time
	}
	if module.SupplierID != nil {
		id := module.SupplierID.String()
		result.SupplierID = &id
	}
	if module.ResponsibleUserID != nil {
		id := module.ResponsibleUserID.String()
		result.ResponsibleUserID = &id
	}

	return result
}

func ToRenderedModuleResponse(render modulesUsecases.ModuleRender) RenderedModuleResponse {
	sections := make([]RenderedSectionResponse, len(render.Sections))
	for i, section := range render.Sections {
		fields := make([]RenderedFieldResponse, len(section.Fields))
		for j, field := range section.Fields {
			fields[j] = toRenderedFieldResponse(field)
		}
		sections[i] = RenderedSectionResponse{
			Name:   section.Name,
			Fields: fields,
		}
	}

	return RenderedModuleResponse{
		Module:   ToServiceModuleResponse(render.Module),
		Template: render.Template.ID.String(),
		Sections: sections,
	}
}

func toRenderedFieldResponse(field modulesUsecases.RenderedField) RenderedFieldResponse {
	result := RenderedFieldResponse{
		ID:           field.Field.ID.String(),
		Label:        field.Field.Label,
		Type:         string(field.Field.Type),
		Required:     field.Field.Required,
		Options:      field.Field.Options,
		Section:      field.Field.SectionOrDefault(),
		Value:        field.Value,
		DisplayValue: field.DisplayValue,
		Visible:      field.Visible,
	}

	if result.Options == nil {
		result.Options = []string{}
	}

	return result
}

func ToFieldValues(values map[string]any) catalogdomain.FieldValues {
	result := make(catalogdomain.FieldValues, len(values))
	for key, value := range values {
		result[shareddomain.ID(key)] = value
	}
	return result
}

type FieldErrorResponse struct {
	FieldID string `json:"field_id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ToFieldErrorResponses(verr *catalogdomain.ValidationError) []any {
	result := make([]any, len(verr.Fields))
	for i, fieldError := range verr.Fields {
		result[i] = FieldErrorResponse{
			FieldID: fieldError.FieldID.String(),
			Code:    fieldError.Code,
			Message: fieldError.Message,
		}
	}
	return result
}
