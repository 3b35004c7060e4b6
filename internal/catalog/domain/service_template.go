package domain

import (
	"fmt"
	"slices"
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

// ServiceTemplate owns an ordered field list. Field order is the render
// order and survives every field operation.
type ServiceTemplate struct {
	ID          shareddomain.ID
	Version     shareddomain.Version
	Name        shareddomain.Name
	CategoryID  shareddomain.ID
	Description shareddomain.Description
	Fields      []FieldDefinition
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
	DeletedAt   *utils.Time
}

func (t *ServiceTemplate) IsDeleted() bool {
	return t.DeletedAt != nil
}

func (t *ServiceTemplate) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	t.DeletedAt = &now
	t.UpdatedAt = now
}

func (t *ServiceTemplate) FieldByID(id shareddomain.ID) (FieldDefinition, bool) {
	for _, field := range t.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

// AddField assigns a fresh id, appends the field and bumps the version.
// An id collision with an existing field is rejected rather than retried
// so the operation stays deterministic.
func (t *ServiceTemplate) AddField(field FieldDefinition) (FieldDefinition, error) {
	if !field.Type.IsValid() {
		return FieldDefinition{}, ErrInvalidFieldType
	}

	field.ID = shareddomain.ID(utils.GenerateUUID())
	if _, exists := t.FieldByID(field.ID); exists {
		return FieldDefinition{}, ErrFieldIDCollision
	}

	if field.Section == "" {
		field.Section = DefaultSection
	}

	t.Fields = append(t.Fields, field)
	t.touch()

	return field, nil
}

// EditField replaces the field with the same id in place, preserving its
// position in the render order.
func (t *ServiceTemplate) EditField(field FieldDefinition) error {
	if !field.Type.IsValid() {
		return ErrInvalidFieldType
	}

	if field.Section == "" {
		field.Section = DefaultSection
	}

	for i, existing := range t.Fields {
		if existing.ID == field.ID {
			t.Fields[i] = field
			t.touch()
			return nil
		}
	}

	return ErrFieldNotFound
}

// RemoveField drops the field from the sequence. Values stored under the
// removed id elsewhere are left alone.
func (t *ServiceTemplate) RemoveField(id shareddomain.ID) error {
	for i, existing := range t.Fields {
		if existing.ID == id {
			t.Fields = slices.Delete(t.Fields, i, i+1)
			t.touch()
			return nil
		}
	}

	return ErrFieldNotFound
}

func (t *ServiceTemplate) touch() {
	t.Version++
	t.UpdatedAt = utils.Time{Time: time.Now()}
}

type Section struct {
	Name   string
	Fields []FieldDefinition
}

// Sections groups fields by section in first-seen order. Fields without a
// section fall under "General".
func (t *ServiceTemplate) Sections() []Section {
	var sections []Section
	index := make(map[string]int)

	for _, field := range t.Fields {
		name := field.SectionOrDefault()
		i, seen := index[name]
		if !seen {
			i = len(sections)
			index[name] = i
			sections = append(sections, Section{Name: name})
		}
		sections[i].Fields = append(sections[i].Fields, field)
	}

	return sections
}

// Validate checks the structural rules every template must satisfy before
// it is saved: unique field ids, options on dropdowns, and conditional
// display references that point at exactly one unconditional field.
func (t *ServiceTemplate) Validate() error {
	verr := &ValidationError{}

	seen := make(map[shareddomain.ID]bool)
	for _, field := range t.Fields {
		if seen[field.ID] {
			verr.Append(field.ID, ErrCodeDuplicateID, fmt.Sprintf("duplicate field id %q", field.ID))
		}
		seen[field.ID] = true
	}

	for _, field := range t.Fields {
		if !field.Type.IsValid() {
			verr.Append(field.ID, ErrCodeInvalidType, fmt.Sprintf("unknown field type %q", field.Type))
		}

		if field.Type == FieldTypeDropdown && len(field.Options) == 0 {
			verr.Append(field.ID, ErrCodeEmptyOptions, "dropdown field has no options")
		}

		if field.ConditionalDisplay == nil {
			continue
		}

		ref := field.ConditionalDisplay.FieldID
		if ref == field.ID {
			verr.Append(field.ID, ErrCodeSelfCondition, "field is conditional on itself")
			continue
		}

		target, found := t.FieldByID(ref)
		if !found {
			verr.Append(field.ID, ErrCodeUnknownCondition, fmt.Sprintf("condition references missing field %q", ref))
			continue
		}

		if target.ConditionalDisplay != nil {
			verr.Append(field.ID, ErrCodeChainedCondition, fmt.Sprintf("condition references conditional field %q", ref))
		}
	}

	return verr.AsError()
}

func NewServiceTemplateBuilder() *serviceTemplateBuilder {
	return &serviceTemplateBuilder{}
}

type serviceTemplateBuilder struct {
	actions []serviceTemplateHandler
}

type serviceTemplateHandler func(t *ServiceTemplate) error

func (b *serviceTemplateBuilder) WithName(value string) *serviceTemplateBuilder {
	b.actions = append(b.actions, func(t *ServiceTemplate) error {
		t.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *serviceTemplateBuilder) WithCategoryID(value shareddomain.ID) *serviceTemplateBuilder {
	b.actions = append(b.actions, func(t *ServiceTemplate) error {
		t.CategoryID = value
		return nil
	})
	return b
}

func (b *serviceTemplateBuilder) WithDescription(value string) *serviceTemplateBuilder {
	b.actions = append(b.actions, func(t *ServiceTemplate) error {
		t.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *serviceTemplateBuilder) WithFields(value []FieldDefinition) *serviceTemplateBuilder {
	b.actions = append(b.actions, func(t *ServiceTemplate) error {
		t.Fields = value
		return nil
	})
	return b
}

func (b *serviceTemplateBuilder) Build() (ServiceTemplate, error) {
	now := utils.Time{Time: time.Now()}
	result := ServiceTemplate{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Fields:    make([]FieldDefinition, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ServiceTemplate{}, err
		}
	}

	if err := result.Validate(); err != nil {
		return ServiceTemplate{}, err
	}

	return result, nil
}
