package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer masterdataDomain.Customer) error
	GetCustomer(ctx context.Context, id shareddomain.ID) (masterdataDomain.Customer, error)
	ListCustomers(ctx context.Context, pagination Pagination) ([]masterdataDomain.Customer, int, error)
	UpdateCustomer(ctx context.Context, customer masterdataDomain.Customer) error
	DeleteCustomer(ctx context.Context, id shareddomain.ID) error
	ActivateCustomer(ctx context.Context, id shareddomain.ID) error
	DeactivateCustomer(ctx context.Context, id shareddomain.ID) error
}

func NewCustomerService(repository CustomerRepository) *SimpleCustomerService {
	return &SimpleCustomerService{
		repository: repository,
	}
}

var _ CustomerService = (*SimpleCustomerService)(nil)

type SimpleCustomerService struct {
	repository CustomerRepository
}

func (s *SimpleCustomerService) CreateCustomer(ctx context.Context, customer masterdataDomain.Customer) error {
	err := s.repository.Create(ctx, customer)
	if err != nil {
		slog.Error("creating customer", slog.String("error", err.Error()))
		return fmt.Errorf("creating customer: %w", err)
	}

	slog.Info("customer created successfully", slog.String("id", customer.ID.String()))

	return nil
}

func (s *SimpleCustomerService) GetCustomer(ctx context.Context, id shareddomain.ID) (masterdataDomain.Customer, error) {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return masterdataDomain.Customer{}, ErrCustomerNotFound
		}
		slog.Error("getting customer", slog.String("error", err.Error()))
		return masterdataDomain.Customer{}, fmt.Errorf("getting customer: %w", err)
	}

	return customer, nil
}

func (s *SimpleCustomerService) ListCustomers(ctx context.Context, pagination Pagination) ([]masterdataDomain.Customer, int, error) {
	customers, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing customers", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing customers: %w", err)
	}

	return customers, total, nil
}

func (s *SimpleCustomerService) UpdateCustomer(ctx context.Context, customer masterdataDomain.Customer) error {
	existing, err := s.repository.GetByID(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("getting customer: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("customer is deleted")
	}

	err = s.repository.Update(ctx, customer)
	if err != nil {
		slog.Error("updating customer", slog.String("error", err.Error()))
		return fmt.Errorf("updating customer: %w", err)
	}

	return nil
}

func (s *SimpleCustomerService) DeleteCustomer(ctx context.Context, id shareddomain.ID) error {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("getting customer: %w", err)
	}

	if customer.IsDeleted() {
		return errors.New("customer is already deleted")
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting customer", slog.String("error", err.Error()))
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}

func (s *SimpleCustomerService) ActivateCustomer(ctx context.Context, id shareddomain.ID) error {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("getting customer: %w", err)
	}

	if customer.IsDeleted() {
		return errors.New("customer is deleted")
	}

	customer.Activate()
	return s.repository.Update(ctx, customer)
}

func (s *SimpleCustomerService) DeactivateCustomer(ctx context.Context, id shareddomain.ID) error {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("getting customer: %w", err)
	}

	if customer.IsDeleted() {
		return errors.New("customer is deleted")
	}

	customer.Deactivate()
	return s.repository.Update(ctx, customer)
}
