package tools_test

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/controllers/tools"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestGetTools() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tools", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.ToolListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 8)
	suite.Assert().Equal("add_expense", response.Data[0].Name)
	suite.Assert().Equal("http://example.com/v1/tools/add_expense", response.Data[0].Call)
}

func (suite *TestSuiteStandard) TestToolOptions() {
	for _, tool := range tools.All() {
		recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/tools/"+tool.Name, nil)

		suite.Assert().Equal(http.StatusNoContent, recorder.Code)
		suite.Assert().Equal("POST", recorder.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestToolMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tools/add_expense", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestUnknownTool() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/transfer_money", "{}")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
