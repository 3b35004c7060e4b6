package domain

import (
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Supplier struct {
	ID           shareddomain.ID
	Version      shareddomain.Version
	Name         shareddomain.Name
	ContactEmail string
	Phone        string
	ServiceAreas []string
	IsActive     bool
	CreatedAt    utils.Time
	UpdatedAt    utils.Time
	DeletedAt    *utils.Time
}

func (s *Supplier) IsDeleted() bool {
	return s.DeletedAt != nil
}

func (s *Supplier) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	s.DeletedAt = &now
	s.IsActive = false
	s.UpdatedAt = now
}

func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = utils.Time{Time: time.Now()}
}

func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewSupplierBuilder() *supplierBuilder {
	return &supplierBuilder{}
}

type supplierBuilder struct {
	actions []supplierHandler
}

type supplierHandler func(s *Supplier) error

func (b *supplierBuilder) WithName(value string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *supplierBuilder) WithContactEmail(value string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		if value != "" && !utils.IsValidEmail(value) {
			return ErrInvalidContactEmail
		}
		s.ContactEmail = value
		return nil
	})
	return b
}

func (b *supplierBuilder) WithPhone(value string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.Phone = value
		return nil
	})
	return b
}

func (b *supplierBuilder) WithServiceAreas(value []string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.ServiceAreas = value
		return nil
	})
	return b
}

func (b *supplierBuilder) Build() (Supplier, error) {
	now := utils.Time{Time: time.Now()}
	result := Supplier{
		ID:           shareddomain.ID(utils.GenerateUUID()),
		Version:      1,
		ServiceAreas: make([]string, 0),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Supplier{}, err
		}
	}

	return result, nil
}
