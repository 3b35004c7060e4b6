package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	masterdataDomain "facilityhub-server/internal/masterdata/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type SupplierService interface {
	CreateSupplier(ctx context.Context, supplier masterdataDomain.Supplier) error
	GetSupplier(ctx context.Context, id shareddomain.ID) (masterdataDomain.Supplier, error)
	ListSuppliers(ctx context.Context, pagination Pagination) ([]masterdataDomain.Supplier, int, error)
	UpdateSupplier(ctx context.Context, supplier masterdataDomain.Supplier) error
	DeleteSupplier(ctx context.Context, id shareddomain.ID) error
}

func NewSupplierService(repository SupplierRepository) *SimpleSupplierService {
	return &SimpleSupplierService{
		repository: repository,
	}
}

var _ SupplierService = (*SimpleSupplierService)(nil)

type SimpleSupplierService struct {
	repository SupplierRepository
}

func (s *SimpleSupplierService) CreateSupplier(ctx context.Context, supplier masterdataDomain.Supplier) error {
	err := s.repository.Create(ctx, supplier)
	if err != nil {
		slog.Error("creating supplier", slog.String("error", err.Error()))
		return fmt.Errorf("creating supplier: %w", err)
	}

	slog.Info("supplier created successfully", slog.String("id", supplier.ID.String()))

	return nil
}

func (s *SimpleSupplierService) GetSupplier(ctx context.Context, id shareddomain.ID) (masterdataDomain.Supplier, error) {
	supplier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSupplierNotFound) {
			return masterdataDomain.Supplier{}, ErrSupplierNotFound
		}
		slog.Error("getting supplier", slog.String("error", err.Error()))
		return masterdataDomain.Supplier{}, fmt.Errorf("getting supplier: %w", err)
	}

	return supplier, nil
}

func (s *SimpleSupplierService) ListSuppliers(ctx context.Context, pagination Pagination) ([]masterdataDomain.Supplier, int, error) {
	suppliers, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing suppliers", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing suppliers: %w", err)
	}

	return suppliers, total, nil
}

func (s *SimpleSupplierService) UpdateSupplier(ctx context.Context, supplier masterdataDomain.Supplier) error {
	existing, err := s.repository.GetByID(ctx, supplier.ID)
	if err != nil {
		if errors.Is(err, ErrSupplierNotFound) {
			return ErrSupplierNotFound
		}
		return fmt.Errorf("getting supplier: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("supplier is deleted")
	}

	err = s.repository.Update(ctx, supplier)
	if err != nil {
		slog.Error("updating supplier", slog.String("error", err.Error()))
		return fmt.Errorf("updating supplier: %w", err)
	}

	return nil
}

func (s *SimpleSupplierService) DeleteSupplier(ctx context.Context, id shareddomain.ID) error {
	supplier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSupplierNotFound) {
			return ErrSupplierNotFound
		}
		return fmt.Errorf("getting supplier: %w", err)
	}

	if supplier.IsDeleted() {
		return errors.New("supplier is already deleted")
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting supplier", slog.String("error", err.Error()))
		return fmt.Errorf("deleting supplier: %w", err)
	}

	return nil
}
