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
	createSupplierErrMessage   = "failed to create supplier"
	getSupplierErrMessage      = "failed to get supplier"
	updateSupplierErrMessage   = "failed to update supplier"
	deleteSupplierErrMessage   = "failed to delete supplier"
	supplierNotFoundErrMessage = "supplier not found"
)

func NewSupplierController(service usecases.SupplierService) *SupplierController {
	return &SupplierController{
		service: service,
	}
}

var _ httpserver.Controller = &SupplierController{}

type SupplierController struct {
	service usecases.SupplierService
}

func (c *SupplierController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/suppliers", c.listSuppliers())
	router.Handle("GET /v1/suppliers/{id}", c.getSupplier())
	router.Handle("POST /v1/suppliers", c.createSupplier())
	router.Handle("PUT /v1/suppliers/{id}", c.updateSupplier())
	router.Handle("DELETE /v1/suppliers/{id}", c.deleteSupplier())
}

func (c *SupplierController) listSuppliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		suppliers, total, err := c.service.ListSuppliers(r.Context(), pagination)
		if err != nil {
			slog.Error("listing suppliers", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list suppliers")
			return
		}

		responses := make([]internal.SupplierResponse, len(suppliers))
		for i, supplier := range suppliers {
			responses[i] = internal.ToSupplierResponse(supplier)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *SupplierController) getSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		supplier, err := c.service.GetSupplier(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSupplierNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, supplierNotFoundErrMessage)
				return
			}
			slog.Error("getting supplier", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getSupplierErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSupplierResponse(supplier))
	}
}

func (c *SupplierController) createSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SupplierCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createSupplierErrMessage)
			return
		}

		supplier, err := masterdataDomain.NewSupplierBuilder().
			WithName(body.Name).
			WithContactEmail(body.ContactEmail).
			WithPhone(body.Phone).
			WithServiceAreas(body.ServiceAreas).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateSupplier(r.Context(), supplier)
		if err != nil {
			slog.Error("creating supplier", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createSupplierErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSupplierResponse(supplier))
	}
}

func (c *SupplierController) updateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.SupplierUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateSupplierErrMessage)
			return
		}

		supplier, err := c.service.GetSupplier(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSupplierNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, supplierNotFoundErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateSupplierErrMessage)
			return
		}

		if body.Name != nil {
			supplier.Name = shareddomain.Name(*body.Name)
		}
		if body.ContactEmail != nil {
			supplier.ContactEmail = *body.ContactEmail
		}
		if body.Phone != nil {
			supplier.Phone = *body.Phone
		}
		if body.ServiceAreas != nil {
			supplier.ServiceAreas = *body.ServiceAreas
		}

		err = c.service.UpdateSupplier(r.Context(), supplier)
		if err != nil {
			slog.Error("updating supplier", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateSupplierErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSupplierResponse(supplier))
	}
}

func (c *SupplierController) deleteSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteSupplier(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSupplierNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, supplierNotFoundErrMessage)
				return
			}
			slog.Error("deleting supplier", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteSupplierErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
