//go:build wireinject
// +build wireinject

package wire

import (
	"facilityhub-server/internal/masterdata/httpapi"
	"facilityhub-server/internal/masterdata/persistence"
	"facilityhub-server/internal/masterdata/usecases"

	"github.com/google/wire"
)

func InitializeCustomerController() (*httpapi.CustomerController, error) {
	wire.Build(
		provideAppConfig,
		CustomerServiceSet,
		wire.Bind(new(usecases.CustomerService), new(*usecases.SimpleCustomerService)),
		httpapi.NewCustomerController,
	)

	return nil, nil
}

func InitializeLocationController() (*httpapi.LocationController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		persistence.NewCustomerRepository,
		wire.Bind(new(usecases.CustomerRepository), new(*persistence.SimpleCustomerRepository)),
		persistence.NewLocationRepository,
		wire.Bind(new(usecases.LocationRepository), new(*persistence.SimpleLocationRepository)),
		usecases.NewLocationService,
		wire.Bind(new(usecases.LocationService), new(*usecases.SimpleLocationService)),
		httpapi.NewLocationController,
	)

	return nil, nil
}

func InitializeSupplierController() (*httpapi.SupplierController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		persistence.NewSupplierRepository,
		wire.Bind(new(usecases.SupplierRepository), new(*persistence.SimpleSupplierRepository)),
		usecases.NewSupplierService,
		wire.Bind(new(usecases.SupplierService), new(*usecases.SimpleSupplierService)),
		httpapi.NewSupplierController,
	)

	return nil, nil
}

var CustomerServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	persistence.NewCustomerRepository,
	wire.Bind(new(usecases.CustomerRepository), new(*persistence.SimpleCustomerRepository)),
	usecases.NewCustomerService,
)
