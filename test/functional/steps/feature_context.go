package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"facilityhub-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	customerID   string
	locationID   string
	categoryID   string
	templateID   string
	fieldID      string
	moduleID     string
	workOrderID  string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Master data steps
	ctx.Given(`^a customer exists with name "([^"]*)"$`, fc.aCustomerExistsWithName)
	ctx.Given(`^a location exists for the customer with name "([^"]*)"$`, fc.aLocationExistsForTheCustomerWithName)

	// Catalog steps
	ctx.Given(`^a service category exists with name "([^"]*)"$`, fc.aServiceCategoryExistsWithName)
	ctx.Given(`^a service template exists with name "([^"]*)"$`, fc.aServiceTemplateExistsWithName)
	ctx.Given(`^the template has a required "([^"]*)" field labeled "([^"]*)"$`, fc.theTemplateHasARequiredFieldLabeled)
	ctx.Given(`^the template has an optional "([^"]*)" field labeled "([^"]*)"$`, fc.theTemplateHasAnOptionalFieldLabeled)

	// Service module steps
	ctx.When(`^I create a service module from the template$`, fc.iCreateAServiceModuleFromTheTemplate)
	ctx.Given(`^a service module exists for the template$`, fc.aServiceModuleExistsForTheTemplate)
	ctx.Then(`^the response should contain the module details$`, fc.theResponseShouldContainTheModuleDetails)
	ctx.Then(`^the module code should be "([^"]*)"$`, fc.theModuleCodeShouldBe)
	ctx.When(`^I submit the field value "([^"]*)" for the required field$`, fc.iSubmitTheFieldValueForTheRequiredField)
	ctx.When(`^I submit empty field values$`, fc.iSubmitEmptyFieldValues)
	ctx.Then(`^the response should contain a validation error for the required field$`, fc.theResponseShouldContainAValidationErrorForTheRequiredField)
	ctx.When(`^I fetch the rendered module$`, fc.iFetchTheRenderedModule)
	ctx.Then(`^the rendered field "([^"]*)" should display "([^"]*)"$`, fc.theRenderedFieldShouldDisplay)

	// Service log steps
	ctx.When(`^I log a service performed by "([^"]*)"$`, fc.iLogAServicePerformedBy)
	ctx.Then(`^the module should have a last service date$`, fc.theModuleShouldHaveALastServiceDate)

	// Work order steps
	ctx.Given(`^a work order exists for the module with title "([^"]*)"$`, fc.aWorkOrderExistsForTheModuleWithTitle)
	ctx.When(`^I create a work order for the module with title "([^"]*)" and priority "([^"]*)"$`, fc.iCreateAWorkOrderForTheModuleWithTitleAndPriority)
	ctx.When(`^I start the work order$`, fc.iStartTheWorkOrder)
	ctx.When(`^I complete the work order logging the service as "([^"]*)"$`, fc.iCompleteTheWorkOrderLoggingTheServiceAs)
	ctx.When(`^I cancel the work order$`, fc.iCancelTheWorkOrder)
	ctx.Then(`^the work order status should be "([^"]*)"$`, fc.theWorkOrderStatusShouldBe)
	ctx.Then(`^the module should have (\d+) service logs?$`, fc.theModuleShouldHaveServiceLogs)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.customerID = ""
	fc.locationID = ""
	fc.categoryID = ""
	fc.templateID = ""
	fc.fieldID = ""
	fc.moduleID = ""
	fc.workOrderID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding body %q: %w", string(data), err)
	}

	return nil
}
