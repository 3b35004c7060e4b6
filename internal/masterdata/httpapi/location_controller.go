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
	createLocationErrMessage   = "failed to create location"
	getLocationErrMessage      = "failed to get location"
	updateLocationErrMessage   = "failed to update location"
	deleteLocationErrMessage   = "failed to delete location"
	locationNotFoundErrMessage = "location not found"
)

func NewLocationController(service usecases.LocationService) *LocationController {
	return &LocationController{
		service: service,
	}
}

var _ httpserver.Controller = &LocationController{}

type LocationController struct {
	service usecases.LocationService
}

func (c *LocationController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/customers/{customer_id}/locations", c.listLocations())
	router.Handle("POST /v1/customers/{customer_id}/locations", c.createLocation())
	router.Handle("GET /v1/locations/{id}", c.getLocation())
	router.Handle("PUT /v1/locations/{id}", c.updateLocation())
	router.Handle("DELETE /v1/locations/{id}", c.deleteLocation())
}

func (c *LocationController) listLocations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.PathValue("customer_id")

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		locations, total, err := c.service.ListLocationsByCustomer(r.Context(), shareddomain.ID(customerID), pagination)
		if err != nil {
			slog.Error("listing locations", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list locations")
			return
		}

		responses := make([]internal.LocationResponse, len(locations))
		for i, location := range locations {
			responses[i] = internal.ToLocationResponse(location)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *LocationController) createLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.PathValue("customer_id")
		var body internal.LocationCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createLocationErrMessage)
			return
		}

		location, err := masterdataDomain.NewLocationBuilder().
			WithCustomerID(shareddomain.ID(customerID)).
			WithName(body.Name).
			WithAddress(body.Address).
			WithCity(body.City).
			WithPostalCode(body.PostalCode).
			WithCountry(body.Country).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateLocation(r.Context(), location)
		if err != nil {
			if errors.Is(err, usecases.ErrCustomerNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, customerNotFoundErrMessage)
				return
			}
			slog.Error("creating location", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createLocationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToLocationResponse(location))
	}
}

func (c *LocationController) getLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		location, err := c.service.GetLocation(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrLocationNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, locationNotFoundErrMessage)
				return
			}
			slog.Error("getting location", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getLocationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToLocationResponse(location))
	}
}

func (c *LocationController) updateLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.LocationUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateLocationErrMessage)
			return
		}

		location, err := c.service.GetLocation(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrLocationNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, locationNotFoundErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateLocationErrMessage)
			return
		}

		if body.Name != nil {
			location.Name = shareddomain.Name(*body.Name)
		}
		if body.Address != nil {
			location.Address = *body.Address
		}
		if body.City != nil {
			location.City = *body.City
		}
		if body.PostalCode != nil {
			location.PostalCode = *body.PostalCode
		}
		if body.Country != nil {
			location.Country = *body.Country
		}

		err = c.service.UpdateLocation(r.Context(), location)
		if err != nil {
			slog.Error("updating location", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateLocationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToLocationResponse(location))
	}
}

func (c *LocationController) deleteLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteLocation(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrLocationNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, locationNotFoundErrMessage)
				return
			}
			slog.Error("deleting location", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteLocationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
