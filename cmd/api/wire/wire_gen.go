// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"facilityhub-server/internal/catalog/httpapi"
	"facilityhub-server/internal/catalog/persistence"
	"facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/async"
	httpapi2 "facilityhub-server/internal/masterdata/httpapi"
	persistence2 "facilityhub-server/internal/masterdata/persistence"
	usecases2 "facilityhub-server/internal/masterdata/usecases"
	httpapi3 "facilityhub-server/internal/modules/httpapi"
	persistence3 "facilityhub-server/internal/modules/persistence"
	usecases3 "facilityhub-server/internal/modules/usecases"
	"github.com/google/wire"
)

// Injectors from catalog.go:

func InitializeCategoryController() (*httpapi.CategoryController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleCategoryRepository, err := persistence.NewCategoryRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	cache := provideCache(appConfig)
	simpleCategoryService := usecases.NewCategoryService(simpleCategoryRepository, cache)
	categoryController := httpapi.NewCategoryController(simpleCategoryService)
	return categoryController, nil
}

func InitializeTemplateController() (*httpapi.TemplateController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleTemplateRepository, err := persistence.NewTemplateRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCategoryRepository, err := persistence.NewCategoryRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleTemplateService := usecases.NewTemplateService(simpleTemplateRepository, simpleCategoryRepository)
	templateController := httpapi.NewTemplateController(simpleTemplateService)
	return templateController, nil
}

// Injectors from masterdata.go:

func InitializeCustomerController() (*httpapi2.CustomerController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleCustomerRepository, err := persistence2.NewCustomerRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCustomerService := usecases2.NewCustomerService(simpleCustomerRepository)
	customerController := httpapi2.NewCustomerController(simpleCustomerService)
	return customerController, nil
}

func InitializeLocationController() (*httpapi2.LocationController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleLocationRepository, err := persistence2.NewLocationRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCustomerRepository, err := persistence2.NewCustomerRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleLocationService := usecases2.NewLocationService(simpleLocationRepository, simpleCustomerRepository)
	locationController := httpapi2.NewLocationController(simpleLocationService)
	return locationController, nil
}

func InitializeSupplierController() (*httpapi2.SupplierController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleSupplierRepository, err := persistence2.NewSupplierRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleSupplierService := usecases2.NewSupplierService(simpleSupplierRepository)
	supplierController := httpapi2.NewSupplierController(simpleSupplierService)
	return supplierController, nil
}

// Injectors from modules.go:

func InitializeModuleController(broker async.InternalBroker) (*httpapi3.ModuleController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleModuleRepository, err := persistence3.NewModuleRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCustomerRepository, err := persistence2.NewCustomerRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCustomerService := usecases2.NewCustomerService(simpleCustomerRepository)
	simpleLocationRepository, err := persistence2.NewLocationRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleLocationService := usecases2.NewLocationService(simpleLocationRepository, simpleCustomerRepository)
	simpleTemplateRepository, err := persistence.NewTemplateRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleCategoryRepository, err := persistence.NewCategoryRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleTemplateService := usecases.NewTemplateService(simpleTemplateRepository, simpleCategoryRepository)
	simpleModuleService := usecases3.NewModuleService(simpleModuleRepository, simpleCustomerService, simpleLocationService, simpleTemplateService, broker)
	simpleLogRepository, err := persistence3.NewLogRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleLogService := usecases3.NewLogService(simpleLogRepository, simpleModuleRepository, broker)
	moduleController := httpapi3.NewModuleController(simpleModuleService, simpleLogService)
	return moduleController, nil
}

func InitializeWorkOrderController(broker async.InternalBroker) (*httpapi3.WorkOrderController, error) {
	appConfig := provideAppConfig()
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleWorkOrderRepository, err := persistence3.NewWorkOrderRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleModuleRepository, err := persistence3.NewModuleRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleLogRepository, err := persistence3.NewLogRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	simpleLogService := usecases3.NewLogService(simpleLogRepository, simpleModuleRepository, broker)
	simpleWorkOrderService := usecases3.NewWorkOrderService(simpleWorkOrderRepository, simpleModuleRepository, simpleLogService)
	workOrderController := httpapi3.NewWorkOrderController(simpleWorkOrderService)
	return workOrderController, nil
}

func InitializeReminderWorker(broker async.InternalBroker) (*usecases3.ReminderWorker, error) {
	appConfig := provideAppConfig()
	ticker := provideTicker(appConfig)
	factory := providePubSubFactory(appConfig)
	publisherFactory := providePublisherFactory(factory)
	orm := provideDatabase(appConfig)
	simpleModuleRepository, err := persistence3.NewModuleRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	reminderWorker := usecases3.NewReminderWorker(ticker, simpleModuleRepository, broker)
	return reminderWorker, nil
}

func InitializeModuleEventsWebSocketController(broker async.InternalBroker) (*httpapi3.ModuleEventsWebSocketController, error) {
	moduleEventsWebSocketController := httpapi3.NewModuleEventsWebSocketController(broker)
	return moduleEventsWebSocketController, nil
}

// catalog.go:

var TemplateServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory, persistence.NewCategoryRepository, wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)), persistence.NewTemplateRepository, wire.Bind(new(usecases.TemplateRepository), new(*persistence.SimpleTemplateRepository)), usecases.NewTemplateService,
)

// masterdata.go:

var CustomerServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory, persistence2.NewCustomerRepository, wire.Bind(new(usecases2.CustomerRepository), new(*persistence2.SimpleCustomerRepository)), usecases2.NewCustomerService,
)

// modules.go:

var ModuleServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory, persistence3.NewModuleRepository, wire.Bind(new(usecases3.ModuleRepository), new(*persistence3.SimpleModuleRepository)), persistence2.NewCustomerRepository, wire.Bind(new(usecases2.CustomerRepository), new(*persistence2.SimpleCustomerRepository)), usecases2.NewCustomerService, wire.Bind(new(usecases2.CustomerService), new(*usecases2.SimpleCustomerService)), persistence2.NewLocationRepository, wire.Bind(new(usecases2.LocationRepository), new(*persistence2.SimpleLocationRepository)), usecases2.NewLocationService, wire.Bind(new(usecases2.LocationService), new(*usecases2.SimpleLocationService)), persistence.NewCategoryRepository, wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)), persistence.NewTemplateRepository, wire.Bind(new(usecases.TemplateRepository), new(*persistence.SimpleTemplateRepository)), usecases.NewTemplateService, wire.Bind(new(usecases.TemplateService), new(*usecases.SimpleTemplateService)), usecases3.NewModuleService,
)
