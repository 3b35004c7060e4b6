package usecases_test

import (
	"context"
	"time"

	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesUsecases "facilityhub-server/internal/modules/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReminderWorker", func() {
	var worker *modulesUsecases.ReminderWorker
	var moduleRepository *mockModuleRepository
	var broker *fakeBroker

	BeforeEach(func() {
		moduleRepository = newMockModuleRepository()
		broker = newFakeBroker()
		worker = modulesUsecases.NewReminderWorker(time.NewTicker(time.Hour), moduleRepository, broker)
	})

	AfterEach(func() {
		worker.Shutdown()
	})

	seedModule := func(status modulesdomain.ModuleStatus, nextService time.Time) modulesdomain.ServiceModule {
		module, err := modulesdomain.NewServiceModuleBuilder().
			WithCustomerID("customer-1").
			WithLocationID("location-1").
			WithTemplateID("template-1").
			WithNextServiceDate(nextService).
			Build()
		Expect(err).NotTo(HaveOccurred())
		module.Status = status
		moduleRepository.modules[module.ID.String()] = module
		return module
	}

	Context("CheckDueModules", func() {
		It("should publish reminders for modules inside the due window", func() {
			dueSoon := seedModule(modulesdomain.ModuleStatusActive, time.Now().Add(48*time.Hour))
			overdue := seedModule(modulesdomain.ModuleStatusActive, time.Now().Add(-24*time.Hour))
			seedModule(modulesdomain.ModuleStatusActive, time.Now().Add(modulesdomain.DueSoonWindow+24*time.Hour))

			worker.CheckDueModules(context.Background())

			events := broker.messages[modulesUsecases.ModuleEventsTopic]
			Expect(events).To(HaveLen(2))

			statuses := make(map[string]modulesdomain.ModuleStatus)
			for _, message := range events {
				Expect(message.Event).To(Equal("service_reminder"))
				event := message.Value.(modulesUsecases.ReminderEvent)
				statuses[event.Module.ID.String()] = event.DerivedStatus
			}

			Expect(statuses[dueSoon.ID.String()]).To(Equal(modulesdomain.ModuleStatusDueSoon))
			Expect(statuses[overdue.ID.String()]).To(Equal(modulesdomain.ModuleStatusOverdue))
		})

		It("should skip inactive modules", func() {
			seedModule(modulesdomain.ModuleStatusInactive, time.Now().Add(-24*time.Hour))

			worker.CheckDueModules(context.Background())

			Expect(broker.messages[modulesUsecases.ModuleEventsTopic]).To(BeEmpty())
		})

		It("should skip modules without a next service date", func() {
			module := seedModule(modulesdomain.ModuleStatusActive, time.Now())
			stored := moduleRepository.modules[module.ID.String()]
			stored.NextServiceDate = nil
			moduleRepository.modules[module.ID.String()] = stored

			worker.CheckDueModules(context.Background())

			Expect(broker.messages[modulesUsecases.ModuleEventsTopic]).To(BeEmpty())
		})
	})
})
