package steps

import (
	"net/http"
	"strings"
)

// Catalog step implementations
func (fc *FeatureContext) aServiceCategoryExistsWithName(name string) error {
	resp, err := fc.apiDriver.CreateCategory(strings.ToLower(strings.ReplaceAll(name, " ", "_")), name)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.categoryID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) aServiceTemplateExistsWithName(name string) error {
	resp, err := fc.apiDriver.CreateTemplate(name, fc.categoryID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.templateID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theTemplateHasARequiredFieldLabeled(fieldType, label string) error {
	return fc.addTemplateField(fieldType, label, true)
}

func (fc *FeatureContext) theTemplateHasAnOptionalFieldLabeled(fieldType, label string) error {
	return fc.addTemplateField(fieldType, label, false)
}

func (fc *FeatureContext) addTemplateField(fieldType, label string, required bool) error {
	field := map[string]any{
		"label":    label,
		"type":     fieldType,
		"required": required,
		"section":  "General",
	}
	if fieldType == "select" {
		field["options"] = []string{"low", "medium", "high"}
	}

	resp, err := fc.apiDriver.AddTemplateField(fc.templateID, field)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	if required {
		fc.fieldID = data["id"].(string)
	}
	return nil
}
