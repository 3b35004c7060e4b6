package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesHTTPAPI "facilityhub-server/internal/modules/httpapi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WorkOrderController", func() {
	var router *http.ServeMux
	var fakeService *fakeWorkOrderService

	BeforeEach(func() {
		fakeService = newFakeWorkOrderService()
		fakeService.modules["module-1"] = true
		router = http.NewServeMux()
		modulesHTTPAPI.NewWorkOrderController(fakeService).AddRoutes(router)
	})

	seedOrder := func() modulesdomain.WorkOrder {
		order, err := modulesdomain.NewWorkOrderBuilder().
			WithModuleID("module-1").
			WithTitle("Replace ventilation filters").
			Build()
		Expect(err).NotTo(HaveOccurred())
		fakeService.orders[order.ID.String()] = order
		return order
	}

	Context("POST /v1/work-orders", func() {
		It("should return 201 with the open order", func() {
			body, _ := json.Marshal(map[string]any{
				"module_id": "module-1",
				"title":     "Replace ventilation filters",
				"priority":  "high",
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response["status"]).To(Equal("open"))
			Expect(response["priority"]).To(Equal("high"))
		})

		It("should return 400 for an unknown priority", func() {
			body, _ := json.Marshal(map[string]any{
				"module_id": "module-1",
				"title":     "Check boiler",
				"priority":  "extreme",
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 when the module does not exist", func() {
			body, _ := json.Marshal(map[string]any{
				"module_id": "missing",
				"title":     "Check boiler",
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("POST /v1/work-orders/{id}/start", func() {
		It("should return 200 with the in progress order", func() {
			order := seedOrder()

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/"+order.ID.String()+"/start", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response["status"]).To(Equal("in_progress"))
		})

		It("should return 409 for an invalid transition", func() {
			order := seedOrder()
			stored := fakeService.orders[order.ID.String()]
			Expect(stored.Complete()).To(Succeed())
			fakeService.orders[order.ID.String()] = stored

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/"+order.ID.String()+"/start", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("POST /v1/work-orders/{id}/complete", func() {
		It("should return 200 with the completion time set", func() {
			order := seedOrder()

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/"+order.ID.String()+"/complete", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response["status"]).To(Equal("completed"))
			Expect(response["completed_at"]).NotTo(BeNil())
		})

		It("should return 400 when logging is requested without performed_by", func() {
			order := seedOrder()
			body, _ := json.Marshal(map[string]any{"log_service": true})

			req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/"+order.ID.String()+"/complete", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /v1/work-orders", func() {
		It("should filter by module", func() {
			seedOrder()

			fakeService.modules["module-2"] = true
			other, err := modulesdomain.NewWorkOrderBuilder().
				WithModuleID("module-2").
				WithTitle("Inspect roof drains").
				Build()
			Expect(err).NotTo(HaveOccurred())
			fakeService.orders[other.ID.String()] = other

			req := httptest.NewRequest(http.MethodGet, "/v1/work-orders?module_id=module-1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			data, ok := response["data"].([]any)
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveLen(1))
		})
	})

	Context("PUT /v1/work-orders/{id}", func() {
		It("should return 404 for an unknown order", func() {
			body, _ := json.Marshal(map[string]any{"title": "Renamed"})

			req := httptest.NewRequest(http.MethodPut, "/v1/work-orders/missing", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
