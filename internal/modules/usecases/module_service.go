package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/async"
	"facilityhub-server/internal/infra/utils"
	masterdataUsecases "facilityhub-server/internal/masterdata/usecases"
	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	ModuleEventsTopic async.BrokerTopicName = "module_events"

	_moduleCreatedEvent   = "module_created"
	_moduleUpdatedEvent   = "module_updated"
	_fieldValuesUpdated   = "field_values_updated"
	_moduleDeletedEvent   = "module_deleted"
	_serviceLoggedEvent   = "service_logged"
	_serviceReminderEvent = "service_reminder"
)

// ModuleDetails carries the mutable details of a module. Nil pointers mean
// "leave unchanged"; the template reference is fixed at creation and not
// represented here.
type ModuleDetails struct {
	Notes             *string
	Status            *modulesdomain.ModuleStatus
	Schedule          *string
	NextServiceDate   *time.Time
	SupplierID        *shareddomain.ID
	ResponsibleUserID *shareddomain.ID
}

type RenderedField struct {
	Field        catalogdomain.FieldDefinition
	Value        any
	DisplayValue string
	Visible      bool
}

type RenderedSection struct {
	Name   string
	Fields []RenderedField
}

type ModuleRender struct {
	Module   modulesdomain.ServiceModule
	Template catalogdomain.ServiceTemplate
	Sections []RenderedSection
}

type ModuleService interface {
	CreateModule(ctx context.Context, module modulesdomain.ServiceModule) (modulesdomain.ServiceModule, error)
	GetModule(ctx context.Context, id shareddomain.ID) (modulesdomain.ServiceModule, error)
	ListModules(ctx context.Context, filter ModuleFilter, pagination Pagination) ([]modulesdomain.ServiceModule, int, error)
	UpdateDetails(ctx context.Context, id shareddomain.ID, details ModuleDetails) (modulesdomain.ServiceModule, error)
	UpdateFieldValues(ctx context.Context, id shareddomain.ID, values catalogdomain.FieldValues) (modulesdomain.ServiceModule, error)
	RenderModule(ctx context.Context, id shareddomain.ID) (ModuleRender, error)
	DeleteModule(ctx context.Context, id shareddomain.ID) error
}

func NewModuleService(
	repository ModuleRepository,
	customerService masterdataUsecases.CustomerService,
	locationService masterdataUsecases.LocationService,
	templateService catalogUsecases.TemplateService,
	broker async.InternalBroker,
) *SimpleModuleService {
	return &SimpleModuleService{
		repository:      repository,
		customerService: customerService,
		locationService: locationService,
		templateService: templateService,
		broker:          broker,
	}
}

var _ ModuleService = (*SimpleModuleService)(nil)

type SimpleModuleService struct {
	repository      ModuleRepository
	customerService masterdataUsecases.CustomerService
	locationService masterdataUsecases.LocationService
	templateService catalogUsecases.TemplateService
	broker          async.InternalBroker
}

func (s *SimpleModuleService) CreateModule(ctx context.Context, module modulesdomain.ServiceModule) (modulesdomain.ServiceModule, error) {
	_, err := s.customerService.GetCustomer(ctx, module.CustomerID)
	if err != nil {
		if errors.Is(err, masterdataUsecases.ErrCustomerNotFound) {
			return modulesdomain.ServiceModule{}, masterdataUsecases.ErrCustomerNotFound
		}
		return modulesdomain.ServiceModule{}, fmt.Errorf("getting customer: %w", err)
	}

	location, err := s.locationService.GetLocation(ctx, module.LocationID)
	if err != nil {
		if errors.Is(err, masterdataUsecases.ErrLocationNotFound) {
			return modulesdomain.ServiceModule{}, masterdataUsecases.ErrLocationNotFound
		}
		return modulesdomain.ServiceModule{}, fmt.Errorf("getting location: %w", err)
	}

	if location.CustomerID != module.CustomerID {
		return modulesdomain.ServiceModule{}, masterdataUsecases.ErrLocationNotFound
	}

	template, err := s.templateService.GetTemplate(ctx, module.TemplateID)
	if err != nil {
		if errors.Is(err, catalogUsecases.ErrTemplateNotFound) {
			return modulesdomain.ServiceModule{}, catalogUsecases.ErrTemplateNotFound
		}
		return modulesdomain.ServiceModule{}, fmt.Errorf("getting template: %w", err)
	}

	module.CategoryID = template.CategoryID

	sequence, err := s.repository.NextSequence(ctx)
	if err != nil {
		return modulesdomain.ServiceModule{}, fmt.Errorf("allocating module code: %w", err)
	}
	module.ModuleCode = modulesdomain.ModuleCodeFor(sequence)

	err = s.repository.Create(ctx, module)
	if err != nil {
		slog.Error("creating service module", slog.String("error", err.Error()))
		return modulesdomain.ServiceModule{}, fmt.Errorf("creating service module: %w", err)
	}

	slog.Info("service module created successfully",
		slog.String("id", module.ID.String()),
		slog.String("module_code", module.ModuleCode))

	s.publishEvent(ctx, _moduleCreatedEvent, module)

	return module, nil
}

func (s *SimpleModuleService) GetModule(ctx context.Context, id shareddomain.ID) (modulesdomain.ServiceModule, error) {
	module, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return modulesdomain.ServiceModule{}, ErrModuleNotFound
		}
		slog.Error("getting service module", slog.String("error", err.Error()))
		return modulesdomain.ServiceModule{}, fmt.Errorf("getting service module: %w", err)
	}

	return module, nil
}

func (s *SimpleModuleService) ListModules(
	ctx context.Context,
	filter ModuleFilter,
	pagination Pagination,
) ([]modulesdomain.ServiceModule, int, error) {
	modules, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing service modules", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing service modules: %w", err)
	}

	return modules, total, nil
}

func (s *SimpleModuleService) UpdateDetails(ctx context.Context, id shareddomain.ID, details ModuleDetails) (modulesdomain.ServiceModule, error) {
	module, err := s.GetModule(ctx, id)
	if err != nil {
		return modulesdomain.ServiceModule{}, err
	}

	if module.IsDeleted() {
		return modulesdomain.ServiceModule{}, ErrModuleNotFound
	}

	if details.Notes != nil {
		module.Notes = *details.Notes
	}
	if details.Status != nil {
		module.Status = *details.Status
	}
	if details.Schedule != nil {
		if *details.Schedule == "" {
			module.Schedule = nil
		} else {
			module.Schedule = details.Schedule
		}
	}
	if details.NextServiceDate != nil {
		module.NextServiceDate = &utils.Time{Time: *details.NextServiceDate}
	}
	if details.SupplierID != nil {
		module.SupplierID = details.SupplierID
	}
	if details.ResponsibleUserID != nil {
		module.ResponsibleUserID = details.ResponsibleUserID
	}

	module.Version++
	module.UpdatedAt = utils.Time{Time: time.Now()}

	err = s.repository.Update(ctx, module)
	if err != nil {
		slog.Error("updating service module", slog.String("error", err.Error()))
		return modulesdomain.ServiceModule{}, fmt.Errorf("updating service module: %w", err)
	}

	slog.Info("service module updated successfully", slog.String("id", id.String()))
	s.publishEvent(ctx, _moduleUpdatedEvent, module)

	return module, nil
}

// UpdateFieldValues replaces the module's values wholesale after running
// them through the template's validation and normalization. Stored keys no
// longer declared on the template are carried over untouched so old data
// survives field removal.
func (s *SimpleModuleService) UpdateFieldValues(ctx context.Context, id shareddomain.ID, values catalogdomain.FieldValues) (modulesdomain.ServiceModule, error) {
	module, err := s.GetModule(ctx, id)
	if err != nil {
		return modulesdomain.ServiceModule{}, err
	}

	if module.IsDeleted() {
		return modulesdomain.ServiceModule{}, ErrModuleNotFound
	}

	template, err := s.templateService.GetTemplate(ctx, module.TemplateID)
	if err != nil {
		return modulesdomain.ServiceModule{}, fmt.Errorf("getting template: %w", err)
	}

	if err := template.ValidateValues(values); err != nil {
		return modulesdomain.ServiceModule{}, err
	}

	normalized := template.NormalizeValues(values)

	declared := make(map[shareddomain.ID]bool, len(template.Fields))
	for _, field := range template.Fields {
		declared[field.ID] = true
	}

	merged := make(catalogdomain.FieldValues)
	for key, value := range module.FieldValues {
		if !declared[key] {
			merged[key] = value
		}
	}
	for key, value := range normalized {
		merged[key] = value
	}

	module.FieldValues = merged
	module.Version++
	module.UpdatedAt = utils.Time{Time: time.Now()}

	err = s.repository.Update(ctx, module)
	if err != nil {
		slog.Error("updating module field values", slog.String("error", err.Error()))
		return modulesdomain.ServiceModule{}, fmt.Errorf("updating module field values: %w", err)
	}

	slog.Info("module field values updated",
		slog.String("id", id.String()),
		slog.Int("value_count", len(normalized)))
	s.publishEvent(ctx, _fieldValuesUpdated, module)

	return module, nil
}

// RenderModule projects the module through its template: every declared
// field resolved, display-formatted, grouped by section. Orphaned stored
// values are not part of the projection.
func (s *SimpleModuleService) RenderModule(ctx context.Context, id shareddomain.ID) (ModuleRender, error) {
	module, err := s.GetModule(ctx, id)
	if err != nil {
		return ModuleRender{}, err
	}

	template, err := s.templateService.GetTemplate(ctx, module.TemplateID)
	if err != nil {
		return ModuleRender{}, fmt.Errorf("getting template: %w", err)
	}

	sections := make([]RenderedSection, 0)
	for _, section := range template.Sections() {
		rendered := RenderedSection{Name: section.Name}
		for _, field := range section.Fields {
			rendered.Fields = append(rendered.Fields, RenderedField{
				Field:        field,
				Value:        catalogdomain.ResolveValue(field, module.FieldValues),
				DisplayValue: catalogdomain.DisplayValue(field, module.FieldValues),
				Visible:      template.IsVisible(field, module.FieldValues),
			})
		}
		sections = append(sections, rendered)
	}

	return ModuleRender{
		Module:   module,
		Template: template,
		Sections: sections,
	}, nil
}

func (s *SimpleModuleService) DeleteModule(ctx context.Context, id shareddomain.ID) error {
	module, err := s.GetModule(ctx, id)
	if err != nil {
		return err
	}

	if module.IsDeleted() {
		return ErrModuleNotFound
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting service module", slog.String("error", err.Error()))
		return fmt.Errorf("deleting service module: %w", err)
	}

	slog.Info("service module deleted successfully", slog.String("id", id.String()))
	s.publishEvent(ctx, _moduleDeletedEvent, module)

	return nil
}

func (s *SimpleModuleService) publishEvent(ctx context.Context, event string, module modulesdomain.ServiceModule) {
	err := s.broker.Publish(ctx, ModuleEventsTopic, async.BrokerMessage{
		Event: event,
		Value: module,
	})
	if err != nil {
		slog.Warn("publishing module event",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}
