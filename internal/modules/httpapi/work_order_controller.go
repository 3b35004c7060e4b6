package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"facilityhub-server/internal/infra/httpserver"
	modulesdomain "facilityhub-server/internal/modules/domain"
	"facilityhub-server/internal/modules/httpapi/internal"
	"facilityhub-server/internal/modules/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	createWorkOrderErrMessage   = "failed to create work order"
	getWorkOrderErrMessage      = "failed to get work order"
	updateWorkOrderErrMessage   = "failed to update work order"
	deleteWorkOrderErrMessage   = "failed to delete work order"
	workOrderNotFoundErrMessage = "work order not found"
	invalidPriorityErrMessage   = "unknown work order priority"
	invalidTransitionErrMessage = "work order cannot change to the requested status"
)

func NewWorkOrderController(service usecases.WorkOrderService) *WorkOrderController {
	return &WorkOrderController{
		service: service,
	}
}

var _ httpserver.Controller = &WorkOrderController{}

type WorkOrderController struct {
	service usecases.WorkOrderService
}

func (c *WorkOrderController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/work-orders", c.listWorkOrders())
	router.Handle("GET /v1/work-orders/{id}", c.getWorkOrder())
	router.Handle("POST /v1/work-orders", c.createWorkOrder())
	router.Handle("PUT /v1/work-orders/{id}", c.updateWorkOrder())
	router.Handle("DELETE /v1/work-orders/{id}", c.deleteWorkOrder())
	router.Handle("POST /v1/work-orders/{id}/start", c.startWorkOrder())
	router.Handle("POST /v1/work-orders/{id}/complete", c.completeWorkOrder())
	router.Handle("POST /v1/work-orders/{id}/cancel", c.cancelWorkOrder())
}

func (c *WorkOrderController) listWorkOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		var orders []modulesdomain.WorkOrder
		var total int
		var err error

		if moduleID := r.URL.Query().Get("module_id"); moduleID != "" {
			orders, total, err = c.service.ListWorkOrdersByModule(r.Context(), shareddomain.ID(moduleID), pagination)
		} else {
			orders, total, err = c.service.ListWorkOrders(r.Context(), pagination)
		}
		if err != nil {
			slog.Error("listing work orders", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list work orders")
			return
		}

		responses := make([]internal.WorkOrderResponse, len(orders))
		for i, order := range orders {
			responses[i] = internal.ToWorkOrderResponse(order)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *WorkOrderController) getWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		order, err := c.service.GetWorkOrder(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrWorkOrderNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, workOrderNotFoundErrMessage)
				return
			}
			slog.Error("getting work order", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getWorkOrderErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) createWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.WorkOrderCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createWorkOrderErrMessage)
			return
		}

		builder := modulesdomain.NewWorkOrderBuilder().
			WithModuleID(shareddomain.ID(body.ModuleID)).
			WithTitle(body.Title).
			WithDescription(body.Description)

		if body.Priority != "" {
			priority := modulesdomain.WorkOrderPriority(body.Priority)
			if !priority.IsValid() {
				httpserver.ReplyWithError(w, http.StatusBadRequest, invalidPriorityErrMessage)
				return
			}
			builder = builder.WithPriority(priority)
		}
		if body.AssigneeID != nil {
			builder = builder.WithAssigneeID(shareddomain.ID(*body.AssigneeID))
		}
		if body.DueDate != nil {
			builder = builder.WithDueDate(*body.DueDate)
		}

		order, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateWorkOrder(r.Context(), order)
		if err != nil {
			if errors.Is(err, usecases.ErrModuleNotFound) {
				httpserver.ReplyWithError(w, http.StatusBadRequest, moduleNotFoundErrMessage)
				return
			}
			slog.Error("creating work order", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createWorkOrderErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) updateWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.WorkOrderUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateWorkOrderErrMessage)
			return
		}

		details := usecases.WorkOrderDetails{
			Title:       body.Title,
			Description: body.Description,
			DueDate:     body.DueDate,
		}
		if body.Priority != nil {
			priority := modulesdomain.WorkOrderPriority(*body.Priority)
			if !priority.IsValid() {
				httpserver.ReplyWithError(w, http.StatusBadRequest, invalidPriorityErrMessage)
				return
			}
			details.Priority = &priority
		}
		if body.AssigneeID != nil {
			assigneeID := shareddomain.ID(*body.AssigneeID)
			details.AssigneeID = &assigneeID
		}

		order, err := c.service.UpdateWorkOrder(r.Context(), shareddomain.ID(id), details)
		if err != nil {
			if errors.Is(err, usecases.ErrWorkOrderNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, workOrderNotFoundErrMessage)
				return
			}
			slog.Error("updating work order", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateWorkOrderErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) deleteWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteWorkOrder(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrWorkOrderNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, workOrderNotFoundErrMessage)
				return
			}
			slog.Error("deleting work order", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteWorkOrderErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *WorkOrderController) startWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		order, err := c.service.StartWorkOrder(r.Context(), shareddomain.ID(id))
		if err != nil {
			c.replyTransitionError(w, err, "starting work order")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) completeWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.WorkOrderCompleteRequest
		if r.ContentLength > 0 {
			if err := httpserver.DecodeJSONBody(r, &body); err != nil {
				httpserver.ReplyWithError(w, http.StatusBadRequest, updateWorkOrderErrMessage)
				return
			}
		}

		if body.LogService && body.PerformedBy == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, performedByErrMessage)
			return
		}

		order, err := c.service.CompleteWorkOrder(r.Context(), shareddomain.ID(id), usecases.CompleteOptions{
			LogService:  body.LogService,
			PerformedBy: body.PerformedBy,
			Description: body.Description,
		})
		if err != nil {
			c.replyTransitionError(w, err, "completing work order")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) cancelWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		order, err := c.service.CancelWorkOrder(r.Context(), shareddomain.ID(id))
		if err != nil {
			c.replyTransitionError(w, err, "cancelling work order")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(order))
	}
}

func (c *WorkOrderController) replyTransitionError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecases.ErrWorkOrderNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, workOrderNotFoundErrMessage)
	case errors.Is(err, modulesdomain.ErrInvalidWorkOrderTransition):
		httpserver.ReplyWithError(w, http.StatusConflict, invalidTransitionErrMessage)
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, updateWorkOrderErrMessage)
	}
}
