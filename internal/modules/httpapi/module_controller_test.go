package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	catalogdomain "facilityhub-server/internal/catalog/domain"
	modulesdomain "facilityhub-server/internal/modules/domain"
	modulesHTTPAPI "facilityhub-server/internal/modules/httpapi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ModuleController", func() {
	var router *http.ServeMux
	var fakeService *fakeModuleService
	var logService *fakeLogService

	BeforeEach(func() {
		fakeService = newFakeModuleService()
		logService = newFakeLogService()
		router = http.NewServeMux()
		modulesHTTPAPI.NewModuleController(fakeService, logService).AddRoutes(router)
	})

	seedModule := func() modulesdomain.ServiceModule {
		module, err := modulesdomain.NewServiceModuleBuilder().
			WithCustomerID("customer-1").
			WithLocationID("location-1").
			WithTemplateID("template-1").
			Build()
		Expect(err).NotTo(HaveOccurred())
		module.ModuleCode = "SM-1"
		fakeService.modules[module.ID.String()] = module
		logService.modules[module.ID.String()] = true
		return module
	}

	Context("POST /v1/service-modules", func() {
		It("should return 201 with the assigned module code", func() {
			body, _ := json.Marshal(map[string]any{
				"customer_id": "customer-1",
				"location_id": "location-1",
				"template_id": "template-1",
				"notes":       "east wing",
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/service-modules", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response["module_code"]).To(Equal("SM-1"))
			Expect(response["status"]).To(Equal("active"))
			Expect(response["derived_status"]).To(Equal("active"))
			Expect(response["notes"]).To(Equal("east wing"))
		})

		When("the customer reference is missing", func() {
			It("should return 400", func() {
				body, _ := json.Marshal(map[string]any{
					"location_id": "location-1",
					"template_id": "template-1",
				})

				req := httptest.NewRequest(http.MethodPost, "/v1/service-modules", bytes.NewReader(body))
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("PUT /v1/service-modules/{id}", func() {
		It("should return 400 for an unknown status", func() {
			module := seedModule()
			body, _ := json.Marshal(map[string]any{"status": "paused"})

			req := httptest.NewRequest(http.MethodPut, "/v1/service-modules/"+module.ID.String(), bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should apply partial updates", func() {
			module := seedModule()
			body, _ := json.Marshal(map[string]any{"notes": "west wing", "status": "inactive"})

			req := httptest.NewRequest(http.MethodPut, "/v1/service-modules/"+module.ID.String(), bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response["notes"]).To(Equal("west wing"))
			Expect(response["status"]).To(Equal("inactive"))
		})
	})

	Context("PUT /v1/service-modules/{id}/field-values", func() {
		var module modulesdomain.ServiceModule
		var technician catalogdomain.FieldDefinition

		BeforeEach(func() {
			module = seedModule()

			template, err := catalogdomain.NewServiceTemplateBuilder().
				WithName("HVAC Inspection").
				Build()
			Expect(err).NotTo(HaveOccurred())
			technician, err = template.AddField(catalogdomain.FieldDefinition{
				Label:    "Technician",
				Type:     catalogdomain.FieldTypeText,
				Required: true,
			})
			Expect(err).NotTo(HaveOccurred())

			module.TemplateID = template.ID
			fakeService.modules[module.ID.String()] = module
			fakeService.templates[template.ID.String()] = template
		})

		It("should return 200 with the stored values", func() {
			body, _ := json.Marshal(map[string]any{technician.ID.String(): "Ada"})

			req := httptest.NewRequest(http.MethodPut, "/v1/service-modules/"+module.ID.String()+"/field-values", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(fakeService.fieldValuesCall[technician.ID]).To(Equal("Ada"))
		})

		It("should return 400 with field errors for an invalid submission", func() {
			body, _ := json.Marshal(map[string]any{})

			req := httptest.NewRequest(http.MethodPut, "/v1/service-modules/"+module.ID.String()+"/field-values", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			fields, ok := response["fields"].([]any)
			Expect(ok).To(BeTrue())
			first, ok := fields[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(first["field_id"]).To(Equal(technician.ID.String()))
			Expect(first["code"]).To(Equal("required"))
		})

		It("should return 404 for an unknown module", func() {
			body, _ := json.Marshal(map[string]any{})

			req := httptest.NewRequest(http.MethodPut, "/v1/service-modules/missing/field-values", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("GET /v1/service-modules/{id}/rendered", func() {
		It("should return the sectioned projection", func() {
			module := seedModule()

			template, err := catalogdomain.NewServiceTemplateBuilder().
				WithName("HVAC Inspection").
				Build()
			Expect(err).NotTo(HaveOccurred())
			_, err = template.AddField(catalogdomain.FieldDefinition{
				Label:   "Passed",
				Type:    catalogdomain.FieldTypeCheckbox,
				Section: "Results",
			})
			Expect(err).NotTo(HaveOccurred())

			module.TemplateID = template.ID
			fakeService.modules[module.ID.String()] = module
			fakeService.templates[template.ID.String()] = template

			req := httptest.NewRequest(http.MethodGet, "/v1/service-modules/"+module.ID.String()+"/rendered", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			sections, ok := response["sections"].([]any)
			Expect(ok).To(BeTrue())
			Expect(sections).To(HaveLen(1))
			section, ok := sections[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(section["name"]).To(Equal("Results"))

			fields, ok := section["fields"].([]any)
			Expect(ok).To(BeTrue())
			field, ok := fields[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(field["display_value"]).To(Equal("Not specified"))
			Expect(field["visible"]).To(Equal(true))
		})
	})

	Context("POST /v1/service-modules/{id}/service-logs", func() {
		It("should return 201 and record the log", func() {
			module := seedModule()
			body, _ := json.Marshal(map[string]any{
				"performed_by": "Ada",
				"description":  "replaced filters",
				"cost":         450.0,
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/service-modules/"+module.ID.String()+"/service-logs", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(logService.logs).To(HaveLen(1))
			Expect(logService.logs[0].PerformedBy).To(Equal("Ada"))
		})

		It("should return 400 when performed_by is missing", func() {
			module := seedModule()
			body, _ := json.Marshal(map[string]any{"description": "replaced filters"})

			req := httptest.NewRequest(http.MethodPost, "/v1/service-modules/"+module.ID.String()+"/service-logs", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /v1/service-modules", func() {
		It("should filter by customer", func() {
			seedModule()

			other, err := modulesdomain.NewServiceModuleBuilder().
				WithCustomerID("customer-2").
				WithLocationID("location-2").
				WithTemplateID("template-1").
				Build()
			Expect(err).NotTo(HaveOccurred())
			fakeService.modules[other.ID.String()] = other

			req := httptest.NewRequest(http.MethodGet, "/v1/service-modules?customer_id=customer-1", nil)
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

	Context("DELETE /v1/service-modules/{id}", func() {
		It("should return 204", func() {
			module := seedModule()

			req := httptest.NewRequest(http.MethodDelete, "/v1/service-modules/"+module.ID.String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("should return 404 for an unknown module", func() {
			req := httptest.NewRequest(http.MethodDelete, "/v1/service-modules/missing", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
