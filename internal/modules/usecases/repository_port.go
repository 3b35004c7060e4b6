package usecases

import (
	"context"
	"errors"
	"time"

	modulesdomain "facilityhub-server/internal/modules/domain"
	shareddomain "facilityhub-server/internal/shared_kernel/domain"
)

var (
	ErrModuleNotFound    = errors.New("service module not found")
	ErrWorkOrderNotFound = errors.New("work order not found")
)

type Pagination struct {
	Limit  int
	Offset int
}

// ModuleFilter narrows module listings. Zero values mean no filter.
type ModuleFilter struct {
	CustomerID shareddomain.ID
	LocationID shareddomain.ID
	CategoryID shareddomain.ID
}

type ModuleRepository interface {
	Create(ctx context.Context, module modulesdomain.ServiceModule) error
	GetByID(ctx context.Context, id shareddomain.ID) (modulesdomain.ServiceModule, error)
	FindAll(ctx context.Context, filter ModuleFilter, pagination Pagination) ([]modulesdomain.ServiceModule, int, error)
	FindAllWithNextServiceBefore(ctx context.Context, cutoff time.Time) ([]modulesdomain.ServiceModule, error)
	Update(ctx context.Context, module modulesdomain.ServiceModule) error
	Delete(ctx context.Context, id shareddomain.ID) error
	NextSequence(ctx context.Context) (int, error)
}

type LogRepository interface {
	Create(ctx context.Context, log modulesdomain.ServiceLog) error
	FindAllByModule(ctx context.Context, moduleID shareddomain.ID, pagination Pagination) ([]modulesdomain.ServiceLog, int, error)
}

type WorkOrderRepository interface {
	Create(ctx context.Context, order modulesdomain.WorkOrder) error
	GetByID(ctx context.Context, id shareddomain.ID) (modulesdomain.WorkOrder, error)
	FindAll(ctx context.Context, pagination Pagination) ([]modulesdomain.WorkOrder, int, error)
	FindAllByModule(ctx context.Context, moduleID shareddomain.ID, pagination Pagination) ([]modulesdomain.WorkOrder, int, error)
	Update(ctx context.Context, order modulesdomain.WorkOrder) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
