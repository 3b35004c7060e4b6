package avro

import "time"

// Messages published to the entity change topics. Field values and default
// values travel as JSON strings so the Avro schemas stay flat.

type AvroCustomer struct {
	ID           string     `avro:"id"`
	Version      int        `avro:"version"`
	Name         string     `avro:"name"`
	OrgNumber    string     `avro:"org_number"`
	ContactEmail string     `avro:"contact_email"`
	Phone        string     `avro:"phone"`
	IsActive     bool       `avro:"is_active"`
	CreatedAt    time.Time  `avro:"created_at"`
	UpdatedAt    time.Time  `avro:"updated_at"`
	DeletedAt    *time.Time `avro:"deleted_at"`
}

type AvroLocation struct {
	ID         string     `avro:"id"`
	Version    int        `avro:"version"`
	CustomerID string     `avro:"customer_id"`
	Name       string     `avro:"name"`
	Address    string     `avro:"address"`
	City       string     `avro:"city"`
	PostalCode string     `avro:"postal_code"`
	Country    string     `avro:"country"`
	CreatedAt  time.Time  `avro:"created_at"`
	UpdatedAt  time.Time  `avro:"updated_at"`
	DeletedAt  *time.Time `avro:"deleted_at"`
}

type AvroSupplier struct {
	ID           string     `avro:"id"`
	Version      int        `avro:"version"`
	Name         string     `avro:"name"`
	ContactEmail string     `avro:"contact_email"`
	Phone        string     `avro:"phone"`
	ServiceAreas []string   `avro:"service_areas"`
	IsActive     bool       `avro:"is_active"`
	CreatedAt    time.Time  `avro:"created_at"`
	UpdatedAt    time.Time  `avro:"updated_at"`
	DeletedAt    *time.Time `avro:"deleted_at"`
}

type AvroServiceCategory struct {
	ID          string    `avro:"id"`
	Version     int       `avro:"version"`
	Name        string    `avro:"name"`
	DisplayName string    `avro:"display_name"`
	Color       string    `avro:"color"`
	Icon        string    `avro:"icon"`
	Description string    `avro:"description"`
	CreatedAt   time.Time `avro:"created_at"`
	UpdatedAt   time.Time `avro:"updated_at"`
}

type AvroFieldDefinition struct {
	ID               string   `avro:"id"`
	Label            string   `avro:"label"`
	Type             string   `avro:"type"`
	Required         bool     `avro:"required"`
	DefaultValue     *string  `avro:"default_value"`
	Options          []string `avro:"options"`
	Section          *string  `avro:"section"`
	ConditionFieldID *string  `avro:"condition_field_id"`
	ConditionValue   *string  `avro:"condition_value"`
}

type AvroServiceTemplate struct {
	ID          string                `avro:"id"`
	Version     int                   `avro:"version"`
	Name        string                `avro:"name"`
	CategoryID  string                `avro:"category_id"`
	Description string                `avro:"description"`
	Fields      []AvroFieldDefinition `avro:"fields"`
	CreatedAt   time.Time             `avro:"created_at"`
	UpdatedAt   time.Time             `avro:"updated_at"`
	DeletedAt   *time.Time            `avro:"deleted_at"`
}

type AvroServiceModule struct {
	ID                string     `avro:"id"`
	Version           int        `avro:"version"`
	ModuleCode        string     `avro:"module_code"`
	CustomerID        string     `avro:"customer_id"`
	LocationID        string     `avro:"location_id"`
	TemplateID        string     `avro:"template_id"`
	CategoryID        string     `avro:"category_id"`
	SupplierID        *string    `avro:"supplier_id"`
	ResponsibleUserID *string    `avro:"responsible_user_id"`
	FieldValues       string     `avro:"field_values"`
	Status            string     `avro:"status"`
	Schedule          *string    `avro:"schedule"`
	NextServiceDate   *time.Time `avro:"next_service_date"`
	LastServiceDate   *time.Time `avro:"last_service_date"`
	Notes             string     `avro:"notes"`
	CreatedAt         time.Time  `avro:"created_at"`
	UpdatedAt         time.Time  `avro:"updated_at"`
	DeletedAt         *time.Time `avro:"deleted_at"`
}

type AvroServiceLog struct {
	ID          string    `avro:"id"`
	Version     int       `avro:"version"`
	ModuleID    string    `avro:"module_id"`
	PerformedAt time.Time `avro:"performed_at"`
	PerformedBy string    `avro:"performed_by"`
	Description string    `avro:"description"`
	Cost        *float64  `avro:"cost"`
	CreatedAt   time.Time `avro:"created_at"`
}

type AvroWorkOrder struct {
	ID          string     `avro:"id"`
	Version     int        `avro:"version"`
	ModuleID    string     `avro:"module_id"`
	Title       string     `avro:"title"`
	Description string     `avro:"description"`
	Priority    string     `avro:"priority"`
	Status      string     `avro:"status"`
	AssigneeID  *string    `avro:"assignee_id"`
	DueDate     *time.Time `avro:"due_date"`
	CompletedAt *time.Time `avro:"completed_at"`
	CreatedAt   time.Time  `avro:"created_at"`
	UpdatedAt   time.Time  `avro:"updated_at"`
	DeletedAt   *time.Time `avro:"deleted_at"`
}
