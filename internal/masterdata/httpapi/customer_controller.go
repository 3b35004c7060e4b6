package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"facilityhub-server/internal/infra/httpserver"
	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	"facilityhub-server/internal/masterdata/httpapi/internal"
	"facilityhub-server/internal/masterdata/usecases"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

const (
	createCustomerErrMessage   = "failed to create customer"
	getCustomerErrMessage      = "failed to get customer"
	updateCustomerErrMessage   = "failed to update customer"
	deleteCustomerErrMessage   = "failed to delete customer"
	customerNotFoundErrMessage = "customer not found"
)

func NewCustomerController(service usecases.CustomerService) *CustomerController {
	return &CustomerController{
		service: service,
	}
}

var _ httpserver.Controller = &CustomerController{}

type CustomerController struct {
	service usecases.CustomerService
}

func (c *CustomerController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/customers", c.listCustomers())
	router.Handle("GET /v1/customers/{id}", c.getCustomer())
	router.Handle("POST /v1/customers", c.createCustomer())
	router.Handle("PUT /v1/customers/{id}", c.updateCustomer())
	router.Handle("DELETE /v1/customers/{id}", c.deleteCustomer())
	router.Handle("POST /v1/customers/{id}/activate", c.activateCustomer())
	router.Handle("POST /v1/customers/{id}/deactivate", c.deactivateCustomer())
}

func (c *CustomerController) listCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		customers, total, err := c.service.ListCustomers(r.Context(), pagination)
		if err != nil {
			slog.Error("listing customers", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list customers")
			return
		}

		responses := make([]internal.CustomerResponse, len(customers))
		for i, customer := range customers {
			responses[i] = internal.ToCustomerResponse(customer)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *CustomerController) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		customer, err := c.service.GetCustomer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			slog.Error("getting customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) createCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CustomerCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createCustomerErrMessage)
			return
		}

		customer, err := masterdataDomain.NewCustomerBuilder().
			WithName(body.Name).
			WithOrgNumber(body.OrgNumber).
			WithContactEmail(body.ContactEmail).
			WithPhone(body.Phone).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateCustomer(r.Context(), customer)
		if err != nil {
			slog.Error("creating customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) updateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.CustomerUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateCustomerErrMessage)
			return
		}

		customer, err := c.service.GetCustomer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateCustomerErrMessage)
			return
		}

		if body.Name != nil {
			customer.Name = shareddomain.Name(*body.Name)
		}
		if body.OrgNumber != nil {
			customer.OrgNumber = *body.OrgNumber
		}
		if body.ContactEmail != nil {
			customer.ContactEmail = *body.ContactEmail
		}
		if body.Phone != nil {
			customer.Phone = *body.Phone
		}

		err = c.service.UpdateCustomer(r.Context(), customer)
		if err != nil {
			slog.Error("updating customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) deleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteCustomer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			slog.Error("deleting customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *CustomerController) activateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.ActivateCustomer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			slog.Error("activating customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to activate customer")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}

func (c *CustomerController) deactivateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeactivateCustomer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			slog.Error("deactivating customer", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to deactivate customer")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}
