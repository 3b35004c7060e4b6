package avro

import (
	"fmt"
	"reflect"

	hamba "github.com/hamba/avro/v2"
)

// Static Avro schemas for every entity change topic. The structs in
// avro_messages.go must stay in lockstep with these definitions.
const (
	customerSchema = `{
		"type": "record",
		"name": "Customer",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "name", "type": "string"},
			{"name": "org_number", "type": "string"},
			{"name": "contact_email", "type": "string"},
			{"name": "phone", "type": "string"},
			{"name": "is_active", "type": "boolean"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	locationSchema = `{
		"type": "record",
		"name": "Location",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "customer_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "address", "type": "string"},
			{"name": "city", "type": "string"},
			{"name": "postal_code", "type": "string"},
			{"name": "country", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	supplierSchema = `{
		"type": "record",
		"name": "Supplier",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "name", "type": "string"},
			{"name": "contact_email", "type": "string"},
			{"name": "phone", "type": "string"},
			{"name": "service_areas", "type": {"type": "array", "items": "string"}},
			{"name": "is_active", "type": "boolean"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	serviceCategorySchema = `{
		"type": "record",
		"name": "ServiceCategory",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "name", "type": "string"},
			{"name": "display_name", "type": "string"},
			{"name": "color", "type": "string"},
			{"name": "icon", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	serviceTemplateSchema = `{
		"type": "record",
		"name": "ServiceTemplate",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "name", "type": "string"},
			{"name": "category_id", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "fields", "type": {"type": "array", "items": {
				"type": "record",
				"name": "FieldDefinition",
				"fields": [
					{"name": "id", "type": "string"},
					{"name": "label", "type": "string"},
					{"name": "type", "type": "string"},
					{"name": "required", "type": "boolean"},
					{"name": "default_value", "type": ["null", "string"]},
					{"name": "options", "type": {"type": "array", "items": "string"}},
					{"name": "section", "type": ["null", "string"]},
					{"name": "condition_field_id", "type": ["null", "string"]},
					{"name": "condition_value", "type": ["null", "string"]}
				]
			}}},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	serviceModuleSchema = `{
		"type": "record",
		"name": "ServiceModule",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "module_code", "type": "string"},
			{"name": "customer_id", "type": "string"},
			{"name": "location_id", "type": "string"},
			{"name": "template_id", "type": "string"},
			{"name": "category_id", "type": "string"},
			{"name": "supplier_id", "type": ["null", "string"]},
			{"name": "responsible_user_id", "type": ["null", "string"]},
			{"name": "field_values", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "schedule", "type": ["null", "string"]},
			{"name": "next_service_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]},
			{"name": "last_service_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]},
			{"name": "notes", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	serviceLogSchema = `{
		"type": "record",
		"name": "ServiceLog",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "module_id", "type": "string"},
			{"name": "performed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "performed_by", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "cost", "type": ["null", "double"]},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	workOrderSchema = `{
		"type": "record",
		"name": "WorkOrder",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "module_id", "type": "string"},
			{"name": "title", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "priority", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "assignee_id", "type": ["null", "string"]},
			{"name": "due_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]},
			{"name": "completed_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`
)

// subjectSchemas maps registry subjects to their schema definitions.
var subjectSchemas = map[string]string{
	"customers":          customerSchema,
	"locations":          locationSchema,
	"suppliers":          supplierSchema,
	"service_categories": serviceCategorySchema,
	"service_templates":  serviceTemplateSchema,
	"service_modules":    serviceModuleSchema,
	"service_logs":       serviceLogSchema,
	"work_orders":        workOrderSchema,
}

// SubjectForMessage resolves the registry subject for a message type.
func SubjectForMessage(message any) (string, error) {
	messageType := reflect.TypeOf(message)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	switch messageType.Name() {
	case "AvroCustomer", "Customer":
		return "customers", nil
	case "AvroLocation", "Location":
		return "locations", nil
	case "AvroSupplier", "Supplier":
		return "suppliers", nil
	case "AvroServiceCategory", "ServiceCategory":
		return "service_categories", nil
	case "AvroServiceTemplate", "ServiceTemplate":
		return "service_templates", nil
	case "AvroServiceModule", "ServiceModule":
		return "service_modules", nil
	case "AvroServiceLog", "ServiceLog":
		return "service_logs", nil
	case "AvroWorkOrder", "WorkOrder":
		return "work_orders", nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", messageType.Name())
	}
}

// SchemaForSubject parses the static schema for the given subject.
func SchemaForSubject(subject string) (hamba.Schema, error) {
	raw, exists := subjectSchemas[subject]
	if !exists {
		return nil, fmt.Errorf("no schema definition for subject %s", subject)
	}

	schema, err := hamba.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing schema for subject %s: %w", subject, err)
	}

	return schema, nil
}
