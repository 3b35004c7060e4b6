package internal

import (
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceTemplateResponse struct {
	ID          string                    `json:"id"`
	Version     int                       `json:"version"`
	Name        string                    `json:"name"`
	CategoryID  string                    `json:"category_id"`
	Description string                    `json:"description"`
	Fields      []FieldDefinitionResponse `json:"fields"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

type FieldDefinitionResponse struct {
	ID                 string                   `json:"id"`
	Label              string                   `json:"label"`
	Type               string                   `json:"type"`
	Required           bool                     `json:"required"`
	DefaultValue       any                      `json:"default_value,omitempty"`
	Options            []string                 `json:"options"`
	Section            string                   `json:"section"`
	ConditionalDisplay *DisplayConditionPayload `json:"conditional_display,omitempty"`
}

type DisplayConditionPayload struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

type ServiceTemplateCreateRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
}

type ServiceTemplateUpdateRequest struct {
	Name        *string `json:"name"`
	CategoryID  *string `json:"category_id"`
	Description *string `json:"description"`
}

type FieldDefinitionRequest struct {
	Label              string                   `json:"label"`
	Type               string                   `json:"type"`
	Required           bool                     `json:"required"`
	DefaultValue       any                      `json:"default_value"`
	Options            []string                 `json:"options"`
	Section            string                   `json:"section"`
	ConditionalDisplay *DisplayConditionPayload `json:"conditional_display"`
	TemplateVersion    int                      `json:"template_version"`
}

type FieldErrorResponse struct {
	FieldID string `json:"field_id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ToServiceTemplateResponse(template catalogdomain.ServiceTemplate) ServiceTemplateResponse {
	fields := make([]FieldDefinitionResponse, len(template.Fields))
	for i, field := range template.Fields {
		fields[i] = ToFieldDefinitionResponse(field)
	}

	return ServiceTemplateResponse{
		ID:          template.ID.String(),
		Version:     int(template.Version),
		Name:        string(template.Name),
		CategoryID:  template.CategoryID.String(),
		Description: string(template.Description),
		Fields:      fields,
		CreatedAt:   template.CreatedAt.Time,
		UpdatedAt:   template.UpdatedAt.Time,
	}
}

func ToFieldDefinitionResponse(field catalogdomain.FieldDefinition) FieldDefinitionResponse {
	result := FieldDefinitionResponse{
		ID:       field.ID.String(),
		Label:    field.Label,
		Type:     string(field.Type),
		Required: field.Required,
		Options:  field.Options,
		Section:  field.SectionOrDefault(),
	}

	if result.Options == nil {
		result.Options = []string{}
	}

	if field.DefaultValue != nil {
		result.DefaultValue = *field.DefaultValue
	}

	if field.ConditionalDisplay != nil {
		result.ConditionalDisplay = &DisplayConditionPayload{
			FieldID: field.ConditionalDisplay.FieldID.String(),
			Value:   field.ConditionalDisplay.Value,
		}
	}

	return result
}

func (r FieldDefinitionRequest) ToDomain(id shareddomain.ID) catalogdomain.FieldDefinition {
	result := catalogdomain.FieldDefinition{
		ID:       id,
		Label:    r.Label,
		Type:     catalogdomain.FieldType(r.Type),
		Required: r.Required,
		Options:  r.Options,
		Section:  r.Section,
	}

	if r.DefaultValue != nil {
		value := r.DefaultValue
		result.DefaultValue = &value
	}

	if r.ConditionalDisplay != nil {
		result.ConditionalDisplay = &catalogdomain.DisplayCondition{
			FieldID: shareddomain.ID(r.ConditionalDisplay.FieldID),
			Value:   r.ConditionalDisplay.Value,
		}
	}

	return result
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
