package domain

import (
	"fmt"
	"slices"
	"strconv"

	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

// FieldValues maps field id to the stored value for one service module.
type FieldValues map[shareddomain.ID]any

// ResolveValue returns the effective value of a field: the stored value
// when one is present, otherwise the field's default, otherwise the type's
// empty value. Number and checkbox have no meaningful empty string, so
// their empty value is nil.
func ResolveValue(field FieldDefinition, values FieldValues) any {
	if stored, ok := values[field.ID]; ok && stored != nil {
		return stored
	}
	if field.DefaultValue != nil {
		return *field.DefaultValue
	}

	switch field.Type {
	case FieldTypeNumber, FieldTypeCheckbox:
		return nil
	default:
		return ""
	}
}

// IsVisible reports whether a field should be shown given the current
// values. Unconditional fields are always visible. A conditional field is
// visible when the referenced field's resolved value equals the condition
// value, compared in string form.
func (t *ServiceTemplate) IsVisible(field FieldDefinition, values FieldValues) bool {
	if field.ConditionalDisplay == nil {
		return true
	}

	target, found := t.FieldByID(field.ConditionalDisplay.FieldID)
	if !found {
		return false
	}

	resolved := ResolveValue(target, values)
	return stringForm(resolved) == field.ConditionalDisplay.Value
}

// ValidateValues checks a submission against the template. Only visible
// fields are validated: a required field hidden by its condition is not an
// error. All problems are collected before returning.
func (t *ServiceTemplate) ValidateValues(values FieldValues) error {
	verr := &ValidationError{}

	for _, field := range t.Fields {
		if !t.IsVisible(field, values) {
			continue
		}

		value, ok := values[field.ID]
		present := ok && value != nil && stringForm(value) != ""

		if field.Required && !present {
			verr.Append(field.ID, ErrCodeRequired, fmt.Sprintf("%s is required", field.Label))
			continue
		}
		if !present {
			continue
		}

		switch field.Type {
		case FieldTypeNumber:
			if _, ok := coerceNumber(value); !ok {
				verr.Append(field.ID, ErrCodeInvalidNumber, fmt.Sprintf("%s must be a number", field.Label))
			}
		case FieldTypeDropdown:
			if !slices.Contains(field.Options, stringForm(value)) {
				verr.Append(field.ID, ErrCodeInvalidOption, fmt.Sprintf("%s must be one of the configured options", field.Label))
			}
		case FieldTypeCheckbox:
			if _, ok := coerceBool(value); !ok {
				verr.Append(field.ID, ErrCodeInvalidCheckbox, fmt.Sprintf("%s must be true or false", field.Label))
			}
		}
	}

	return verr.AsError()
}

// NormalizeValues coerces a validated submission into canonical stored
// form. Keys that do not match a declared field are dropped, numbers
// become float64, checkboxes become bool, and empty submissions unset the
// value entirely.
func (t *ServiceTemplate) NormalizeValues(values FieldValues) FieldValues {
	normalized := make(FieldValues)

	for _, field := range t.Fields {
		value, ok := values[field.ID]
		if !ok || value == nil {
			continue
		}

		switch field.Type {
		case FieldTypeNumber:
			if n, ok := coerceNumber(value); ok {
				normalized[field.ID] = n
			}
		case FieldTypeCheckbox:
			if b, ok := coerceBool(value); ok {
				normalized[field.ID] = b
			}
		default:
			if s := stringForm(value); s != "" {
				normalized[field.ID] = s
			}
		}
	}

	return normalized
}

const notSpecified = "Not specified"

// DisplayValue renders the resolved value for read views. Checkboxes are
// tri-state: Yes, No, or Not specified when never set.
func DisplayValue(field FieldDefinition, values FieldValues) string {
	resolved := ResolveValue(field, values)

	if field.Type == FieldTypeCheckbox {
		b, ok := coerceBool(resolved)
		switch {
		case !ok:
			return notSpecified
		case b:
			return "Yes"
		default:
			return "No"
		}
	}

	if resolved == nil {
		return notSpecified
	}
	if s := stringForm(resolved); s != "" {
		return s
	}
	return notSpecified
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if v == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func stringForm(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
