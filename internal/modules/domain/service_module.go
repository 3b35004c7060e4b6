package domain

import (
	"errors"
	"fmt"
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ModuleStatus string

const (
	ModuleStatusActive    ModuleStatus = "active"
	ModuleStatusOverdue   ModuleStatus = "overdue"
	ModuleStatusDueSoon   ModuleStatus = "due_soon"
	ModuleStatusCompleted ModuleStatus = "completed"
	ModuleStatusInactive  ModuleStatus = "inactive"
)

func (s ModuleStatus) IsValid() bool {
	switch s {
	case ModuleStatusActive, ModuleStatusOverdue, ModuleStatusDueSoon, ModuleStatusCompleted, ModuleStatusInactive:
		return true
	}
	return false
}

// ServiceModule is a service instance at a location, bound to the template
// it was created with. The template reference never changes after creation.
type ServiceModule struct {
	ID                shareddomain.ID
	Version           shareddomain.Version
	ModuleCode        string
	CustomerID        shareddomain.ID
	LocationID        shareddomain.ID
	TemplateID        shareddomain.ID
	CategoryID        shareddomain.ID
	SupplierID        *shareddomain.ID
	ResponsibleUserID *shareddomain.ID
	FieldValues       catalogdomain.FieldValues
	Status            ModuleStatus
	Schedule          *string
	NextServiceDate   *utils.Time
	LastServiceDate   *utils.Time
	Notes             string
	CreatedAt         utils.Time
	UpdatedAt         utils.Time
	DeletedAt         *utils.Time
}

func (m *ServiceModule) IsDeleted() bool {
	return m.DeletedAt != nil
}

func (m *ServiceModule) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	m.DeletedAt = &now
	m.UpdatedAt = now
}

// ModuleCodeFor formats the human readable code assigned at creation.
func ModuleCodeFor(sequence int) string {
	return fmt.Sprintf("SM-%d", sequence)
}

func NewServiceModuleBuilder() *serviceModuleBuilder {
	return &serviceModuleBuilder{}
}

type serviceModuleBuilder struct {
	actions []serviceModuleHandler
}

type serviceModuleHandler func(m *ServiceModule) error

func (b *serviceModuleBuilder) WithModuleCode(value string) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.ModuleCode = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithCustomerID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.CustomerID = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithLocationID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.LocationID = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithTemplateID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.TemplateID = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithCategoryID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.CategoryID = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithSupplierID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.SupplierID = &value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithResponsibleUserID(value shareddomain.ID) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.ResponsibleUserID = &value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithSchedule(value string) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.Schedule = &value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithNextServiceDate(value time.Time) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.NextServiceDate = &utils.Time{Time: value}
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) WithNotes(value string) *serviceModuleBuilder {
	b.actions = append(b.actions, func(m *ServiceModule) error {
		m.Notes = value
		return nil
	})
	return b
}

func (b *serviceModuleBuilder) Build() (ServiceModule, error) {
	now := utils.Time{Time: time.Now()}
	result := ServiceModule{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		Version:     1,
		FieldValues: make(catalogdomain.FieldValues),
		Status:      ModuleStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ServiceModule{}, err
		}
	}

	if result.CustomerID == "" {
		return ServiceModule{}, errors.New("customer id is required")
	}
	if result.LocationID == "" {
		return ServiceModule{}, errors.New("location id is required")
	}
	if result.TemplateID == "" {
		return ServiceModule{}, errors.New("template id is required")
	}

	return result, nil
}
