package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	catalogUsecases "facilityhub-server/internal/catalog/usecases"
	"facilityhub-server/internal/infra/httpserver"
	masterdataUsecases "facilityhub-server/internal/masterdata/usecases"
	modulesdomain "facilityhub-server/internal/modules/domain"
	"facilityhub-server/internal/modules/httpapi/internal"
	"facilityhub-server/internal/modules/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	createModuleErrMessage     = "failed to create service module"
	getModuleErrMessage        = "failed to get service module"
	updateModuleErrMessage     = "failed to update service module"
	deleteModuleErrMessage     = "failed to delete service module"
	moduleNotFoundErrMessage   = "service module not found"
	customerNotFoundErrMessage = "customer not found"
	locationNotFoundErrMessage = "location not found for customer"
	templateNotFoundErrMessage = "service template not found"
	invalidStatusErrMessage    = "unknown module status"
	invalidValuesErrMessage    = "field values failed validation"
	createLogErrMessage        = "failed to create service log"
	listLogsErrMessage         = "failed to list service logs"
	performedByErrMessage      = "performed_by is required"
)

func NewModuleController(service usecases.ModuleService, logService usecases.LogService) *ModuleController {
	return &ModuleController{
		service:    service,
		logService: logService,
	}
}

var _ httpserver.Controller = &ModuleController{}

type ModuleController struct {
	service    usecases.ModuleService
	logService usecases.LogService
}

func (c *ModuleController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/service-modules", c.listModules())
	router.Handle("GET /v1/service-modules/{id}", c.getModule())
	router.Handle("POST /v1/service-modules", c.createModule())
	router.Handle("PUT /v1/service-modules/{id}", c.updateModule())
	router.Handle("DELETE /v1/service-modules/{id}", c.deleteModule())
	router.Handle("PUT /v1/service-modules/{id}/field-values", c.updateFieldValues())
	router.Handle("GET /v1/service-modules/{id}/rendered", c.renderModule())
	router.Handle("GET /v1/service-modules/{id}/service-logs", c.listLogs())
	router.Handle("POST /v1/service-modules/{id}/service-logs", c.createLog())
}

func (c *ModuleController) listModules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		query := r.URL.Query()
		filter := usecases.ModuleFilter{
			CustomerID: shareddomain.ID(query.Get("customer_id")),
			LocationID: shareddomain.ID(query.Get("location_id")),
			CategoryID: shareddomain.ID(query.Get("category_id")),
		}

		modules, total, err := c.service.ListModules(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing service modules", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list service modules")
			return
		}

		responses := make([]internal.ServiceModuleResponse, len(modules))
		for i, module := range modules {
			responses[i] = internal.ToServiceModuleResponse(module)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *ModuleController) getModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		module, err := c.service.GetModule(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("getting service module", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getModuleErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceModuleResponse(module))
	}
}

func (c *ModuleController) createModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ServiceModuleCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createModuleErrMessage)
			return
		}

		builder := modulesdomain.NewServiceModuleBuilder().
			WithCustomerID(shareddomain.ID(body.CustomerID)).
			WithLocationID(shareddomain.ID(body.LocationID)).
			WithTemplateID(shareddomain.ID(body.TemplateID)).
			WithNotes(body.Notes)

		if body.SupplierID != nil {
			builder = builder.WithSupplierID(shareddomain.ID(*body.SupplierID))
		}
		if body.ResponsibleUserID != nil {
			builder = builder.WithResponsibleUserID(shareddomain.ID(*body.ResponsibleUserID))
		}
		if body.Schedule != nil {
			builder = builder.WithSchedule(*body.Schedule)
		}
		if body.NextServiceDate != nil {
			builder = builder.WithNextServiceDate(*body.NextServiceDate)
		}

		module, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := c.service.CreateModule(r.Context(), module)
		if err != nil {
			switch {
			case errors.Is(err, masterdataUsecases.ErrCustomerNotFound):
				httpserver.ReplyWithError(w, http.StatusBadRequest, customerNotFoundErrMessage)
			case errors.Is(err, masterdataUsecases.ErrLocationNotFound):
				httpserver.ReplyWithError(w, http.StatusBadRequest, locationNotFoundErrMessage)
			case errors.Is(err, catalogUsecases.ErrTemplateNotFound):
				httpserver.ReplyWithError(w, http.StatusBadRequest, templateNotFoundErrMessage)
			default:
				slog.Error("creating service module", slog.String("error", err.Error()))
				httpserver.ReplyWithError(w, http.StatusInternalServerError, createModuleErrMessage)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToServiceModuleResponse(created))
	}
}

func (c *ModuleController) updateModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.ServiceModuleUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateModuleErrMessage)
			return
		}

		details := usecases.ModuleDetails{
			Notes:           body.Notes,
			Schedule:        body.Schedule,
			NextServiceDate: body.NextServiceDate,
		}
		if body.Status != nil {
			status := modulesdomain.ModuleStatus(*body.Status)
			if !status.IsValid() {
				httpserver.ReplyWithError(w, http.StatusBadRequest, invalidStatusErrMessage)
				return
			}
			details.Status = &status
		}
		if body.SupplierID != nil {
			supplierID := shareddomain.ID(*body.SupplierID)
			details.SupplierID = &supplierID
		}
		if body.ResponsibleUserID != nil {
			responsibleID := shareddomain.ID(*body.ResponsibleUserID)
			details.ResponsibleUserID = &responsibleID
		}

		module, err := c.service.UpdateDetails(r.Context(), shareddomain.ID(id), details)
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("updating service module", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateModuleErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceModuleResponse(module))
	}
}

func (c *ModuleController) deleteModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteModule(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("deleting service module", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteModuleErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *ModuleController) updateFieldValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body map[string]any
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidValuesErrMessage)
			return
		}

		module, err := c.service.UpdateFieldValues(r.Context(), shareddomain.ID(id), internal.ToFieldValues(body))
		if err != nil {
			var verr *catalogdomain.ValidationError
			switch {
			case errors.Is(err, usecases.ErrModuleNotFound):
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
			case errors.As(err, &verr):
				httpserver.ReplyWithErrorDetails(w, http.StatusBadRequest, invalidValuesErrMessage, internal.ToFieldErrorResponses(verr))
			default:
				slog.Error("updating module field values", slog.String("error", err.Error()))
				httpserver.ReplyWithError(w, http.StatusInternalServerError, updateModuleErrMessage)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToServiceModuleResponse(module))
	}
}

func (c *ModuleController) renderModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		render, err := c.service.RenderModule(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("rendering service module", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getModuleErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRenderedModuleResponse(render))
	}
}

func (c *ModuleController) listLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		logs, total, err := c.logService.ListLogsByModule(r.Context(), shareddomain.ID(id), pagination)
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("listing service logs", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listLogsErrMessage)
			return
		}

		responses := make([]internal.ServiceLogResponse, len(logs))
		for i, log := range logs {
			responses[i] = internal.ToServiceLogResponse(log)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *ModuleController) createLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.ServiceLogCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createLogErrMessage)
			return
		}

		if body.PerformedBy == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, performedByErrMessage)
			return
		}

		builder := modulesdomain.NewServiceLogBuilder().
			WithModuleID(shareddomain.ID(id)).
			WithPerformedBy(body.PerformedBy).
			WithDescription(body.Description)

		if body.PerformedAt != nil {
			builder = builder.WithPerformedAt(*body.PerformedAt)
		}
		if body.Cost != nil {
			builder = builder.WithCost(*body.Cost)
		}

		log, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.logService.CreateLog(r.Context(), log)
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, moduleNotFoundErrMessage)
				return
			}
			slog.Error("creating service log", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createLogErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToServiceLogResponse(log))
	}
}
