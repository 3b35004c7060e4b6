package usecases

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"facilityhub-server/internal/infra/async"
	modulesdomain "facilityhub-server/internal/modules/domain"
)

func NewReminderWorker(
	ticker *time.Ticker,
	moduleRepository ModuleRepository,
	broker async.InternalBroker,
) *ReminderWorker {
	return &ReminderWorker{
		ticker:           ticker,
		moduleRepository: moduleRepository,
		broker:           broker,
	}
}

var _ async.Worker = &ReminderWorker{}

// ReminderWorker periodically publishes reminder events for modules whose
// next service date falls inside the due window. It mutates nothing: the
// overdue/due_soon view stays derived at read time.
type ReminderWorker struct {
	ticker           *time.Ticker
	moduleRepository ModuleRepository
	broker           async.InternalBroker
}

func (w *ReminderWorker) Run(ctx context.Context, done func()) {
	slog.Info("reminder worker started")
	defer done()
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("reminder worker cancelled")
			wg.Wait()
			return
		case <-w.ticker.C:
			wg.Add(1)
			w.checkDueModules(context.Background(), wg.Done)
		}
	}
}

func (w *ReminderWorker) Shutdown() {
	w.ticker.Stop()
}

// CheckDueModules runs one reminder pass. Exposed so the pass can be
// triggered outside the ticker loop.
func (w *ReminderWorker) CheckDueModules(ctx context.Context) {
	w.checkDueModules(ctx, func() {})
}

func (w *ReminderWorker) checkDueModules(ctx context.Context, done func()) {
	defer done()

	now := time.Now()
	cutoff := now.Add(modulesdomain.DueSoonWindow)

	modules, err := w.moduleRepository.FindAllWithNextServiceBefore(ctx, cutoff)
	if err != nil {
		slog.Error("finding due modules", slog.Any("error", err))
		return
	}

	slog.Debug("reminder pass", slog.Int("due_count", len(modules)))

	for _, module := range modules {
		if module.NextServiceDate == nil || module.Status == modulesdomain.ModuleStatusInactive {
			continue
		}

		derived := modulesdomain.DeriveStatus(module.Status, &module.NextServiceDate.Time, now)
		err := w.broker.Publish(ctx, ModuleEventsTopic, async.BrokerMessage{
			Event: _serviceReminderEvent,
			Value: ReminderEvent{
				Module:        module,
				DerivedStatus: derived,
			},
		})
		if err != nil {
			slog.Error("publishing reminder event",
				slog.String("module_id", module.ID.String()),
				slog.Any("error", err))
		}
	}
}

type ReminderEvent struct {
	Module        modulesdomain.ServiceModule
	DerivedStatus modulesdomain.ModuleStatus
}
