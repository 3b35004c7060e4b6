package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateCustomer(name, orgNumber, contactEmail string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":          name,
		"org_number":    orgNumber,
		"contact_email": contactEmail,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/customers", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetCustomer(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/customers/%s", d.baseURL, id))
}

func (d *APIDriver) ListCustomers() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/customers", d.baseURL))
}

func (d *APIDriver) CreateLocation(customerID, name, address, city string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":    name,
		"address": address,
		"city":    city,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/customers/%s/locations", d.baseURL, customerID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateCategory(name, displayName string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":         name,
		"display_name": displayName,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/service-categories", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateTemplate(name, categoryID string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":        name,
		"category_id": categoryID,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/service-templates", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) AddTemplateField(templateID string, field map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(field)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/service-templates/%s/fields", d.baseURL, templateID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetTemplate(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/service-templates/%s", d.baseURL, id))
}

func (d *APIDriver) CreateServiceModule(customerID, locationID, templateID string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"customer_id": customerID,
		"location_id": locationID,
		"template_id": templateID,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/service-modules", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetServiceModule(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/service-modules/%s", d.baseURL, id))
}

func (d *APIDriver) ListServiceModules() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/service-modules", d.baseURL))
}

func (d *APIDriver) SetFieldValues(moduleID string, values map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(values)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/service-modules/%s/field-values", d.baseURL, moduleID), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) GetRenderedModule(moduleID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/service-modules/%s/rendered", d.baseURL, moduleID))
}

func (d *APIDriver) CreateServiceLog(moduleID, performedBy, description string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"performed_by": performedBy,
		"description":  description,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/service-modules/%s/service-logs", d.baseURL, moduleID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListServiceLogs(moduleID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/service-modules/%s/service-logs", d.baseURL, moduleID))
}

func (d *APIDriver) CreateWorkOrder(moduleID, title, priority string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"module_id": moduleID,
		"title":     title,
		"priority":  priority,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/work-orders", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) StartWorkOrder(id string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/work-orders/%s/start", d.baseURL, id), "application/json", nil)
}

func (d *APIDriver) CompleteWorkOrder(id string, logService bool, performedBy string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"log_service":  logService,
		"performed_by": performedBy,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/work-orders/%s/complete", d.baseURL, id), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CancelWorkOrder(id string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/work-orders/%s/cancel", d.baseURL, id), "application/json", nil)
}

func (d *APIDriver) GetWorkOrder(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/work-orders/%s", d.baseURL, id))
}
