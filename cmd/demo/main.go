package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
)

// Seeds a locally running server with a small facility portfolio so the
// API can be explored by hand. Run the server with ENV=local first.
func main() {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelDebug})),
	)
	slog.Info("seeding demo data")

	baseURL := "http://localhost:3000"
	if value, ok := os.LookupEnv("FACILITYHUB_SERVER_URL"); ok {
		baseURL = value
	}

	customerID := post(baseURL, "/v1/customers", map[string]any{
		"name":          "Vasakronan AB",
		"org_number":    "5560610199",
		"contact_email": "facility@vasakronan.se",
	})

	locationID := post(baseURL, fmt.Sprintf("/v1/customers/%s/locations", customerID), map[string]any{
		"name":        "Kista Galleria",
		"address":     "Danmarksgatan 17",
		"city":        "Stockholm",
		"postal_code": "16453",
		"country":     "SE",
	})

	categoryID := post(baseURL, "/v1/service-categories", map[string]any{
		"name":         "ventilation",
		"display_name": "Ventilation",
		"color":        "#2e7d32",
	})

	templateID := post(baseURL, "/v1/service-templates", map[string]any{
		"name":        "OVK Inspection",
		"category_id": categoryID,
		"description": "Mandatory ventilation inspection",
	})

	inspectorFieldID := post(baseURL, fmt.Sprintf("/v1/service-templates/%s/fields", templateID), map[string]any{
		"label":    "Inspector",
		"type":     "text",
		"required": true,
		"section":  "General",
	})
	resultFieldID := post(baseURL, fmt.Sprintf("/v1/service-templates/%s/fields", templateID), map[string]any{
		"label":   "Result",
		"type":    "select",
		"options": []string{"approved", "remarks", "failed"},
		"section": "Results",
	})

	moduleID := post(baseURL, "/v1/service-modules", map[string]any{
		"customer_id": customerID,
		"location_id": locationID,
		"template_id": templateID,
		"schedule":    "0 9 1 * *",
	})

	put(baseURL, fmt.Sprintf("/v1/service-modules/%s/field-values", moduleID), map[string]any{
		inspectorFieldID: "Ada Lovelace",
		resultFieldID:    "approved",
	})

	post(baseURL, "/v1/work-orders", map[string]any{
		"module_id": moduleID,
		"title":     "Replace supply air filters",
		"priority":  "high",
	})

	rendered := get(baseURL, fmt.Sprintf("/v1/service-modules/%s/rendered", moduleID))
	slog.Info("demo data seeded", slog.String("module_id", moduleID), slog.String("rendered", rendered))
}

func post(baseURL, path string, body map[string]any) string {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		slog.Error("request failed", slog.String("path", path), slog.Int("status", resp.StatusCode), slog.String("body", string(data)))
		os.Exit(1)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		panic(err)
	}

	id, _ := payload["id"].(string)
	slog.Debug("created", slog.String("path", path), slog.String("id", id))
	return id
}

func put(baseURL, path string, body map[string]any) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPut, baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		slog.Error("request failed", slog.String("path", path), slog.Int("status", resp.StatusCode), slog.String("body", string(data)))
		os.Exit(1)
	}
}

func get(baseURL, path string) string {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	return string(data)
}
