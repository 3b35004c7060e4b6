package steps

import (
	"net/http"
)

// Work order step implementations
func (fc *FeatureContext) aWorkOrderExistsForTheModuleWithTitle(title string) error {
	resp, err := fc.apiDriver.CreateWorkOrder(fc.moduleID, title, "medium")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.workOrderID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iCreateAWorkOrderForTheModuleWithTitleAndPriority(title, priority string) error {
	resp, err := fc.apiDriver.CreateWorkOrder(fc.moduleID, title, priority)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		err = fc.decodeBody(resp.Body, &data)
		fc.require.NoError(err)
		fc.workOrderID = data["id"].(string)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iStartTheWorkOrder() error {
	resp, err := fc.apiDriver.StartWorkOrder(fc.workOrderID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iCompleteTheWorkOrderLoggingTheServiceAs(performedBy string) error {
	resp, err := fc.apiDriver.CompleteWorkOrder(fc.workOrderID, true, performedBy)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iCancelTheWorkOrder() error {
	resp, err := fc.apiDriver.CancelWorkOrder(fc.workOrderID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theWorkOrderStatusShouldBe(status string) error {
	resp, err := fc.apiDriver.GetWorkOrder(fc.workOrderID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(status, data["status"])
	return nil
}
