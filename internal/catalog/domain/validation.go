package domain

import (
	"fmt"
	"strings"

	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	ErrCodeRequired         = "required"
	ErrCodeInvalidNumber    = "invalid_number"
	ErrCodeInvalidOption    = "invalid_option"
	ErrCodeInvalidCheckbox  = "invalid_checkbox"
	ErrCodeInvalidType      = "invalid_type"
	ErrCodeDuplicateID      = "duplicate_id"
	ErrCodeEmptyOptions     = "empty_options"
	ErrCodeUnknownCondition = "unknown_condition_field"
	ErrCodeSelfCondition    = "self_condition"
	ErrCodeChainedCondition = "chained_condition"
	ErrCodeFieldIDCollision = "field_id_collision"
)

type FieldError struct {
	FieldID shareddomain.ID `json:"field_id"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldID, e.Message)
}

// ValidationError aggregates per-field failures so callers can surface
// every offending field id in one response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		messages[i] = field.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

func (e *ValidationError) Append(fieldID shareddomain.ID, code, message string) {
	e.Fields = append(e.Fields, FieldError{FieldID: fieldID, Code: code, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsError returns nil when no field failed so callers can return it directly.
func (e *ValidationError) AsError() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
