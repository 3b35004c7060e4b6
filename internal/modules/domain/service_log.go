package domain

import (
	"errors"
	"time"

	"facilityhub-server/internal/infra/utils"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

// ServiceLog records one performed service on a module.
type ServiceLog struct {
	ID          shareddomain.ID
	Version     shareddomain.Version
	ModuleID    shareddomain.ID
	PerformedAt utils.Time
	PerformedBy string
	Description string
	Cost        *float64
	CreatedAt   utils.Time
}

func NewServiceLogBuilder() *serviceLogBuilder {
	return &serviceLogBuilder{}
}

type serviceLogBuilder struct {
	actions []serviceLogHandler
}

type serviceLogHandler func(l *ServiceLog) error

func (b *serviceLogBuilder) WithModuleID(value shareddomain.ID) *serviceLogBuilder {
	b.actions = append(b.actions, func(l *ServiceLog) error {
		l.ModuleID = value
		return nil
	})
	return b
}

func (b *serviceLogBuilder) WithPerformedAt(value time.Time) *serviceLogBuilder {
	b.actions = append(b.actions, func(l *ServiceLog) error {
		l.PerformedAt = utils.Time{Time: value}
		return nil
	})
	return b
}

func (b *serviceLogBuilder) WithPerformedBy(value string) *serviceLogBuilder {
	b.actions = append(b.actions, func(l *ServiceLog) error {
		l.PerformedBy = value
		return nil
	})
	return b
}

func (b *serviceLogBuilder) WithDescription(value string) *serviceLogBuilder {
	b.actions = append(b.actions, func(l *ServiceLog) error {
		l.Description = value
		return nil
	})
	return b
}

func (b *serviceLogBuilder) WithCost(value float64) *serviceLogBuilder {
	b.actions = append(b.actions, func(l *ServiceLog) error {
		l.Cost = &value
		return nil
	})
	return b
}

func (b *serviceLogBuilder) Build() (ServiceLog, error) {
	now := utils.Time{Time: time.Now()}
	result := ServiceLog{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		Version:     1,
		PerformedAt: now,
		CreatedAt:   now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ServiceLog{}, err
		}
	}

	if result.ModuleID == "" {
		return ServiceLog{}, errors.New("module id is required")
	}
	if result.PerformedBy == "" {
		return ServiceLog{}, errors.New("performed by is required")
	}

	return result, nil
}
