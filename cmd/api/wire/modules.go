//go:build wireinject
// +build wireinject

package wire

import (
	catalogPersistence "facilityhub-server/internal/catalog/persistence"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/async"
	masterdataPersistence "facilityhub-server/internal/masterdata/persistence"
	masterdataUsecases "facilityhub-server/internal/masterdata/usecases"
	"facilityhub-server/internal/modules/httpapi"
	"facilityhub-server/internal/modules/persistence"
	"facilityhub-server/internal/modules/usecases"

	"github.com/google/wire"
)

func InitializeModuleController(broker async.InternalBroker) (*httpapi.ModuleController, error) {
	wire.Build(
		provideAppConfig,
		ModuleServiceSet,
		wire.Bind(new(usecases.ModuleService), new(*usecases.SimpleModuleService)),
		persistence.NewLogRepository,
		wire.Bind(new(usecases.LogRepository), new(*persistence.SimpleLogRepository)),
		usecases.NewLogService,
		wire.Bind(new(usecases.LogService), new(*usecases.SimpleLogService)),
		httpapi.NewModuleController,
	)

	return nil, nil
}

func InitializeWorkOrderController(broker async.InternalBroker) (*httpapi.WorkOrderController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		persistence.NewModuleRepository,
		wire.Bind(new(usecases.ModuleRepository), new(*persistence.SimpleModuleRepository)),
		persistence.NewLogRepository,
		wire.Bind(new(usecases.LogRepository), new(*persistence.SimpleLogRepository)),
		usecases.NewLogService,
		wire.Bind(new(usecases.LogService), new(*usecases.SimpleLogService)),
		persistence.NewWorkOrderRepository,
		wire.Bind(new(usecases.WorkOrderRepository), new(*persistence.SimpleWorkOrderRepository)),
		usecases.NewWorkOrderService,
		wire.Bind(new(usecases.WorkOrderService), new(*usecases.SimpleWorkOrderService)),
		httpapi.NewWorkOrderController,
	)

	return nil, nil
}

func InitializeReminderWorker(broker async.InternalBroker) (*usecases.ReminderWorker, error) {
	wire.Build(
		provideAppConfig,
		provideTicker,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		persistence.NewModuleRepository,
		wire.Bind(new(usecases.ModuleRepository), new(*persistence.SimpleModuleRepository)),
		usecases.NewReminderWorker,
	)

	return nil, nil
}

func InitializeModuleEventsWebSocketController(broker async.InternalBroker) (*httpapi.ModuleEventsWebSocketController, error) {
	wire.Build(
		httpapi.NewModuleEventsWebSocketController,
	)

	return nil, nil
}

var ModuleServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	persistence.NewModuleRepository,
	wire.Bind(new(usecases.ModuleRepository), new(*persistence.SimpleModuleRepository)),
	masterdataPersistence.NewCustomerRepository,
	wire.Bind(new(masterdataUsecases.CustomerRepository), new(*masterdataPersistence.SimpleCustomerRepository)),
	masterdataUsecases.NewCustomerService,
	wire.Bind(new(masterdataUsecases.CustomerService), new(*masterdataUsecases.SimpleCustomerService)),
	masterdataPersistence.NewLocationRepository,
	wire.Bind(new(masterdataUsecases.LocationRepository), new(*masterdataPersistence.SimpleLocationRepository)),
	masterdataUsecases.NewLocationService,
	wire.Bind(new(masterdataUsecases.LocationService), new(*masterdataUsecases.SimpleLocationService)),
	catalogPersistence.NewCategoryRepository,
	wire.Bind(new(catalogUsecases.CategoryRepository), new(*catalogPersistence.SimpleCategoryRepository)),
	catalogPersistence.NewTemplateRepository,
	wire.Bind(new(catalogUsecases.TemplateRepository), new(*catalogPersistence.SimpleTemplateRepository)),
	catalogUsecases.NewTemplateService,
	wire.Bind(new(catalogUsecases.TemplateService), new(*catalogUsecases.SimpleTemplateService)),
	usecases.NewModuleService,
)
