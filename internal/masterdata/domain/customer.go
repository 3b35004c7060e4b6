package domain

import (
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type Customer struct {
	ID           shareddomain.ID
	Version      shareddomain.Version
	Name         shareddomain.Name
	OrgNumber    string
	ContactEmail string
	Phone        string
	IsActive     bool
	CreatedAt    utils.Time
	UpdatedAt    utils.Time
	DeletedAt    *utils.Time
}

func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}

func (c *Customer) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	c.DeletedAt = &now
	c.IsActive = false
	c.UpdatedAt = now
}

func (c *Customer) Activate() {
	c.IsActive = true
	c.UpdatedAt = utils.Time{Time: time.Now()}
}

func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewCustomerBuilder() *customerBuilder {
	return &customerBuilder{}
}

type customerBuilder struct {
	actions []customerHandler
}

type customerHandler func(c *Customer) error

func (b *customerBuilder) WithName(value string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *customerBuilder) WithOrgNumber(value string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.OrgNumber = value
		return nil
	})
	return b
}

func (b *customerBuilder) WithContactEmail(value string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		if value != "" && !utils.IsValidEmail(value) {
			return ErrInvalidContactEmail
		}
		c.ContactEmail = value
		return nil
	})
	return b
}

func (b *customerBuilder) WithPhone(value string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Phone = value
		return nil
	})
	return b
}

func (b *customerBuilder) Build() (Customer, error) {
	now := utils.Time{Time: time.Now()}
	result := Customer{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Customer{}, err
		}
	}

	return result, nil
}
