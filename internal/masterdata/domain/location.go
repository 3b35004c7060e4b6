package domain

import (
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Location struct {
	ID         shareddomain.ID
	Version    shareddomain.Version
	CustomerID shareddomain.ID
	Name       shareddomain.Name
	Address    string
	City       string
	PostalCode string
	Country    string
	CreatedAt  utils.Time
	UpdatedAt  utils.Time
	DeletedAt  *utils.Time
}

func (l *Location) IsDeleted() bool {
	return l.DeletedAt != nil
}

func (l *Location) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	l.DeletedAt = &now
	l.UpdatedAt = now
}

func NewLocationBuilder() *locationBuilder {
	return &locationBuilder{}
}

type locationBuilder struct {
	actions []locationHandler
}

type locationHandler func(l *Location) error

func (b *locationBuilder) WithCustomerID(value shareddomain.ID) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		if value == "" {
			return ErrCustomerIDRequired
		}
		l.CustomerID = value
		return nil
	})
	return b
}

func (b *locationBuilder) WithName(value string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		l.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *locationBuilder) WithAddress(value string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		l.Address = value
		return nil
	})
	return b
}

func (b *locationBuilder) WithCity(value string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		l.City = value
		return nil
	})
	return b
}

func (b *locationBuilder) WithPostalCode(value string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		l.PostalCode = value
		return nil
	})
	return b
}

func (b *locationBuilder) WithCountry(value string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		l.Country = value
		return nil
	})
	return b
}

func (b *locationBuilder) Build() (Location, error) {
	now := utils.Time{Time: time.Now()}
	result := Location{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Location{}, err
		}
	}

	return result, nil
}
