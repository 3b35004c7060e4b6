package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type LocationService interface {
	CreateLocation(ctx context.Context, location masterdataDomain.Location) error
	GetLocation(ctx context.Context, id shareddomain.ID) (masterdataDomain.Location, error)
	ListLocationsByCustomer(ctx context.Context, customerID shareddomain.ID, pagination Pagination) ([]masterdataDomain.Location, int, error)
	UpdateLocation(ctx context.Context, location masterdataDomain.Location) error
	DeleteLocation(ctx context.Context, id shareddomain.ID) error
}

func NewLocationService(
	repository LocationRepository,
	customerRepository CustomerRepository,
) *SimpleLocationService {
	return &SimpleLocationService{
		repository:         repository,
		customerRepository: customerRepository,
	}
}

var _ LocationService = (*SimpleLocationService)(nil)

type SimpleLocationService struct {
	repository         LocationRepository
	customerRepository CustomerRepository
}

func (s *SimpleLocationService) CreateLocation(ctx context.Context, location masterdataDomain.Location) error {
	customer, err := s.customerRepository.GetByID(ctx, location.CustomerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("getting customer: %w", err)
	}

	if customer.IsDeleted() {
		return ErrCustomerNotFound
	}

	err = s.repository.Create(ctx, location)
	if err != nil {
		slog.Error("creating location", slog.String("error", err.Error()))
		return fmt.Errorf("creating location: %w", err)
	}

	slog.Info("location created successfully",
		slog.String("id", location.ID.String()),
		slog.String("customer_id", location.CustomerID.String()))

	return nil
}

func (s *SimpleLocationService) GetLocation(ctx context.Context, id shareddomain.ID) (masterdataDomain.Location, error) {
	location, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return masterdataDomain.Location{}, ErrLocationNotFound
		}
		slog.Error("getting location", slog.String("error", err.Error()))
		return masterdataDomain.Location{}, fmt.Errorf("getting location: %w", err)
	}

	return location, nil
}

func (s *SimpleLocationService) ListLocationsByCustomer(
	ctx context.Context,
	customerID shareddomain.ID,
	pagination Pagination,
) ([]masterdataDomain.Location, int, error) {
	locations, total, err := s.repository.FindAllByCustomer(ctx, customerID, pagination)
	if err != nil {
		slog.Error("listing locations", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing locations: %w", err)
	}

	return locations, total, nil
}

func (s *SimpleLocationService) UpdateLocation(ctx context.Context, location masterdataDomain.Location) error {
	existing, err := s.repository.GetByID(ctx, location.ID)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("getting location: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("location is deleted")
	}

	err = s.repository.Update(ctx, location)
	if err != nil {
		slog.Error("updating location", slog.String("error", err.Error()))
		return fmt.Errorf("updating location: %w", err)
	}

	return nil
}

func (s *SimpleLocationService) DeleteLocation(ctx context.Context, id shareddomain.ID) error {
	location, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("getting location: %w", err)
	}

	if location.IsDeleted() {
		return errors.New("location is already deleted")
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting location", slog.String("error", err.Error()))
		return fmt.Errorf("deleting location: %w", err)
	}

	return nil
}
