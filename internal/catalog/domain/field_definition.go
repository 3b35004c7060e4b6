package domain

import (
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const DefaultSection = "General"

type FieldDefinition struct {
	ID                 shareddomain.ID
	Label              string
	Type               FieldType
	Required           bool
	DefaultValue       *any
	Options            []string
	Section            string
	ConditionalDisplay *DisplayCondition
}

// DisplayCondition shows a field only when another field's resolved
// value equals Value.
type DisplayCondition struct {
	FieldID shareddomain.ID
	Value   string
}

func (f FieldDefinition) SectionOrDefault() string {
	if f.Section == "" {
		return DefaultSection
	}
	return f.Section
}

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeDate     FieldType = "date"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeFile     FieldType = "file"
	FieldTypeTextarea FieldType = "textarea"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDropdown, FieldTypeDate,
		FieldTypeCheckbox, FieldTypeFile, FieldTypeTextarea:
		return true
	}
	return false
}
