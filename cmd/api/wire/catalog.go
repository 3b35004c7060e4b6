//go:build wireinject
// +build wireinject

package wire

import (
	"facilityhub-server/internal/catalog/httpapi"
	"facilityhub-server/internal/catalog/persistence"
	"facilityhub-server/internal/catalog/usecases"

	"github.com/google/wire"
)

func InitializeCategoryController() (*httpapi.CategoryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		provideCache,
		persistence.NewCategoryRepository,
		wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
		usecases.NewCategoryService,
		wire.Bind(new(usecases.CategoryService), new(*usecases.SimpleCategoryService)),
		httpapi.NewCategoryController,
	)

	return nil, nil
}

func InitializeTemplateController() (*httpapi.TemplateController, error) {
	wire.Build(
		provideAppConfig,
		TemplateServiceSet,
		wire.Bind(new(usecases.TemplateService), new(*usecases.SimpleTemplateService)),
		httpapi.NewTemplateController,
	)

	return nil, nil
}

var TemplateServiceSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	persistence.NewCategoryRepository,
	wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
	persistence.NewTemplateRepository,
	wire.Bind(new(usecases.TemplateRepository), new(*persistence.SimpleTemplateRepository)),
	usecases.NewTemplateService,
)
