package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/catalog/httpapi/internal"
	"facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/httpserver"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	createCategoryErrMessage   = "failed to create service category"
	getCategoryErrMessage      = "failed to get service category"
	updateCategoryErrMessage   = "failed to update service category"
	deleteCategoryErrMessage   = "failed to delete service category"
	categoryNotFoundErrMessage = "service category not found"
)

func NewCategoryController(service usecases.CategoryService) *CategoryController {
	return &CategoryController{
		service: service,
	}
}

var _ httpserver.Controller = &CategoryController{}

type CategoryController struct {
	service usecases.CategoryService
}

func (c *CategoryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/service-categories", c.listCategories())
	router.Handle("GET /v1/service-categories/{id}", c.getCategory())
	router.Handle("POST /v1/service-categories", c.createCategory())
	router.Handle("PUT /v1/service-categories/{id}", c.updateCategory())
	router.Handle("DELETE /v1/service-categories/{id}", c.deleteCategory())
}

func (c *CategoryController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		categories, total, err := c.service.ListCategories(r.Context(), pagination)
		if err != nil {
			slog.Error("listing service categories", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list service categories")
			return
		}

		responses := make([]internal.ServiceCategoryResponse, len(categories))
		for i, category := range categories {
			responses[i] = internal.ToServiceCategoryResponse(category)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *CategoryController) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		category, err := c.service.GetCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, categoryNotFoundErrMessage)
				return
			}
			slog.Error("getting service category", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getCategoryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceCategoryResponse(category))
	}
}

func (c *CategoryController) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ServiceCategoryCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createCategoryErrMessage)
			return
		}

		category, err := catalogdomain.NewServiceCategoryBuilder().
			WithName(body.Name).
			WithDisplayName(body.DisplayName).
			WithColor(body.Color).
			WithIcon(body.Icon).
			WithDescription(body.Description).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateCategory(r.Context(), category)
		if err != nil {
			slog.Error("creating service category", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createCategoryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToServiceCategoryResponse(category))
	}
}

func (c *CategoryController) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.ServiceCategoryUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateCategoryErrMessage)
			return
		}

		category, err := c.service.GetCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, categoryNotFoundErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateCategoryErrMessage)
			return
		}

		if body.DisplayName != nil {
			category.DisplayName = shareddomain.DisplayName(*body.DisplayName)
		}
		if body.Color != nil {
			category.Color = shareddomain.Color(*body.Color)
		}
		if body.Icon != nil {
			category.Icon = *body.Icon
		}
		if body.Description != nil {
			category.Description = shareddomain.Description(*body.Description)
		}

		err = c.service.UpdateCategory(r.Context(), category)
		if err != nil {
			slog.Error("updating service category", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateCategoryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceCategoryResponse(category))
	}
}

func (c *CategoryController) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, categoryNotFoundErrMessage)
				return
			}
			slog.Error("deleting service category", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteCategoryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
