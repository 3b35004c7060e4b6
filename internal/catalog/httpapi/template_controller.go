package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	"facilityhub-server/internal/catalog/httpapi/internal"
	"facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/httpserver"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	createTemplateErrMessage   = "failed to create service template"
	getTemplateErrMessage      = "failed to get service template"
	updateTemplateErrMessage   = "failed to update service template"
	deleteTemplateErrMessage   = "failed to delete service template"
	templateNotFoundErrMessage = "service template not found"
	fieldNotFoundErrMessage    = "template field not found"
	versionConflictErrMessage  = "service template was modified by another request"
	invalidFieldsErrMessage    = "field definitions failed validation"
	invalidVersionErrMessage   = "template version must be a positive integer"
	invalidFieldTypeErrMessage = "unknown field type"
)

func NewTemplateController(service usecases.TemplateService) *TemplateController {
	return &TemplateController{
		service: service,
	}
}

var _ httpserver.Controller = &TemplateController{}

type TemplateController struct {
	service usecases.TemplateService
}

func (c *TemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/service-templates", c.listTemplates())
	router.Handle("GET /v1/service-templates/{id}", c.getTemplate())
	router.Handle("POST /v1/service-templates", c.createTemplate())
	router.Handle("PUT /v1/service-templates/{id}", c.updateTemplate())
	router.Handle("DELETE /v1/service-templates/{id}", c.deleteTemplate())
	router.Handle("POST /v1/service-templates/{id}/fields", c.addField())
	router.Handle("PUT /v1/service-templates/{id}/fields/{field_id}", c.updateField())
	router.Handle("DELETE /v1/service-templates/{id}/fields/{field_id}", c.removeField())
}

func (c *TemplateController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		var templates []catalogdomain.ServiceTemplate
		var total int
		var err error

		if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
			templates, total, err = c.service.ListTemplatesByCategory(r.Context(), shareddomain.ID(categoryID), pagination)
		} else {
			templates, total, err = c.service.ListTemplates(r.Context(), pagination)
		}
		if err != nil {
			slog.Error("listing service templates", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list service templates")
			return
		}

		responses := make([]internal.ServiceTemplateResponse, len(templates))
		for i, template := range templates {
			responses[i] = internal.ToServiceTemplateResponse(template)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *TemplateController) getTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		template, err := c.service.GetTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, templateNotFoundErrMessage)
				return
			}
			slog.Error("getting service template", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceTemplateResponse(template))
	}
}

func (c *TemplateController) createTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ServiceTemplateCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createTemplateErrMessage)
			return
		}

		template, err := catalogdomain.NewServiceTemplateBuilder().
			WithName(body.Name).
			WithCategoryID(shareddomain.ID(body.CategoryID)).
			WithDescription(body.Description).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateTemplate(r.Context(), template)
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				httpserver.ReplyWithError(w, http.StatusBadRequest, categoryNotFoundErrMessage)
				return
			}
			slog.Error("creating service template", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToServiceTemplateResponse(template))
	}
}

func (c *TemplateController) updateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.ServiceTemplateUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateTemplateErrMessage)
			return
		}

		template, err := c.service.GetTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, templateNotFoundErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateTemplateErrMessage)
			return
		}

		if body.Name != nil {
			template.Name = shareddomain.Name(*body.Name)
		}
		if body.CategoryID != nil {
			template.CategoryID = shareddomain.ID(*body.CategoryID)
		}
		if body.Description != nil {
			template.Description = shareddomain.Description(*body.Description)
		}

		err = c.service.UpdateTemplate(r.Context(), template)
		if err != nil {
			if errors.Is(err, usecases.ErrVersionConflict) {
				httpserver.ReplyWithError(w, http.StatusConflict, versionConflictErrMessage)
				return
			}
			slog.Error("updating service template", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceTemplateResponse(template))
	}
}

func (c *TemplateController) deleteTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, templateNotFoundErrMessage)
				return
			}
			slog.Error("deleting service template", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *TemplateController) addField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.FieldDefinitionRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldsErrMessage)
			return
		}

		if body.TemplateVersion < 1 {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidVersionErrMessage)
			return
		}

		added, err := c.service.AddTemplateField(
			r.Context(),
			shareddomain.ID(id),
			shareddomain.Version(body.TemplateVersion),
			body.ToDomain(""),
		)
		if err != nil {
			c.replyFieldOpError(w, err, "adding template field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldDefinitionResponse(added))
	}
}

func (c *TemplateController) updateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		fieldID := r.PathValue("field_id")
		var body internal.FieldDefinitionRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldsErrMessage)
			return
		}

		if body.TemplateVersion < 1 {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidVersionErrMessage)
			return
		}

		err = c.service.UpdateTemplateField(
			r.Context(),
			shareddomain.ID(id),
			shareddomain.Version(body.TemplateVersion),
			body.ToDomain(shareddomain.ID(fieldID)),
		)
		if err != nil {
			c.replyFieldOpError(w, err, "updating template field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}

func (c *TemplateController) removeField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		fieldID := r.PathValue("field_id")

		version, err := strconv.Atoi(r.URL.Query().Get("template_version"))
		if err != nil || version < 1 {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidVersionErrMessage)
			return
		}

		err = c.service.RemoveTemplateField(
			r.Context(),
			shareddomain.ID(id),
			shareddomain.Version(version),
			shareddomain.ID(fieldID),
		)
		if err != nil {
			c.replyFieldOpError(w, err, "removing template field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *TemplateController) replyFieldOpError(w http.ResponseWriter, err error, operation string) {
	var verr *catalogdomain.ValidationError

	switch {
	case errors.Is(err, usecases.ErrTemplateNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, templateNotFoundErrMessage)
	case errors.Is(err, catalogdomain.ErrFieldNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundErrMessage)
	case errors.Is(err, usecases.ErrVersionConflict):
		httpserver.ReplyWithError(w, http.StatusConflict, versionConflictErrMessage)
	case errors.Is(err, catalogdomain.ErrInvalidFieldType):
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldTypeErrMessage)
	case errors.As(err, &verr):
		httpserver.ReplyWithErrorDetails(w, http.StatusBadRequest, invalidFieldsErrMessage, internal.ToFieldErrorResponses(verr))
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, updateTemplateErrMessage)
	}
}
