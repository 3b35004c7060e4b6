package internal

import (
	"time"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
)

type LocationResponse struct {
	ID         string    `json:"id"`
	Version    int       `json:"version"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LocationCreateRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type LocationUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

func ToLocationResponse(location masterdataDomain.Location) LocationResponse {
	return LocationResponse{
		ID:         location.ID.String(),
		Version:    int(location.Version),
		CustomerID: location.CustomerID.String(),
		Name:       string(location.Name),
		Address:    location.Address,
		City:       location.City,
		PostalCode: location.PostalCode,
		Country:    location.Country,
		CreatedAt:  location.CreatedAt.Time,
		UpdatedAt:  location.UpdatedAt.Time,
	}
}
