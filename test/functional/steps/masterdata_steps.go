package steps

import (
	"fmt"
	"net/http"
	"strings"
)

// Master data step implementations
func (fc *FeatureContext) aCustomerExistsWithName(name string) error {
	orgNumber := fmt.Sprintf("556%07d", len(name)*13)
	email := fmt.Sprintf("%s@example.com", strings.ToLower(strings.ReplaceAll(name, " ", ".")))

	resp, err := fc.apiDriver.CreateCustomer(name, orgNumber, email)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.customerID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) aLocationExistsForTheCustomerWithName(name string) error {
	resp, err := fc.apiDriver.CreateLocation(fc.customerID, name, "Storgatan 1", "Stockholm")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.locationID = data["id"].(string)
	return nil
}
