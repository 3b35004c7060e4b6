package domain

import (
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

type ServiceCategory struct {
	ID          shareddomain.ID
	Version     shareddomain.Version
	Name        shareddomain.Name
	DisplayName shareddomain.DisplayName
	Color       shareddomain.Color
	Icon        string
	Description shareddomain.Description
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
}

func NewServiceCategoryBuilder() *serviceCategoryBuilder {
	return &serviceCategoryBuilder{}
}

type serviceCategoryBuilder struct {
	actions []serviceCategoryHandler
}

type serviceCategoryHandler func(c *ServiceCategory) error

func (b *serviceCategoryBuilder) WithName(value string) *serviceCategoryBuilder {
	b.actions = append(b.actions, func(c *ServiceCategory) error {
		c.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *serviceCategoryBuilder) WithDisplayName(value string) *serviceCategoryBuilder {
	b.actions = append(b.actions, func(c *ServiceCategory) error {
		c.DisplayName = shareddomain.DisplayName(value)
		return nil
	})
	return b
}

func (b *serviceCategoryBuilder) WithColor(value string) *serviceCategoryBuilder {
	b.actions = append(b.actions, func(c *ServiceCategory) error {
		c.Color = shareddomain.Color(value)
		return nil
	})
	return b
}

func (b *serviceCategoryBuilder) WithIcon(value string) *serviceCategoryBuilder {
	b.actions = append(b.actions, func(c *ServiceCategory) error {
		c.Icon = value
		return nil
	})
	return b
}

func (b *serviceCategoryBuilder) WithDescription(value string) *serviceCategoryBuilder {
	b.actions = append(b.actions, func(c *ServiceCategory) error {
		c.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *serviceCategoryBuilder) Build() (ServiceCategory, error) {
	now := utils.Time{Time: time.Now()}
	result := ServiceCategory{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ServiceCategory{}, err
		}
	}

	return result, nil
}
