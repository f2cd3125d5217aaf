package tools_test

import (
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/controllers/tools"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetBudget() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/set_budget", `{ "category": "Food", "limit_amount": 3000, "month": 2, "year": 2026 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().NotZero(response.Data.ID)
	suite.Assert().True(response.Data.LimitAmount.Equal(decimal.NewFromFloat(3000)))

	firstID := response.Data.ID

	// Setting the budget again replaces the limit without creating a row
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/set_budget", `{ "category": "Food", "limit_amount": 5000, "month": 2, "year": 2026 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(firstID, response.Data.ID)
	suite.Assert().True(response.Data.LimitAmount.Equal(decimal.NewFromFloat(5000)), "Limit is %s", response.Data.LimitAmount)

	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSetBudgetInvalid() {
	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"empty body", "", "the request body must not be empty"},
		{"invalid category", `{ "category": "Gambling", "limit_amount": 100, "month": 2, "year": 2026 }`, "category must be one of: Food, Travel, Bills, Entertainment, Health, Shopping, Education, Other"},
		{"zero limit", `{ "category": "Food", "limit_amount": 0, "month": 2, "year": 2026 }`, "limitAmount must be positive"},
		{"limit precision", `{ "category": "Food", "limit_amount": 100.999, "month": 2, "year": 2026 }`, "limitAmount must not have more than 2 decimal places"},
		{"month out of range", `{ "category": "Food", "limit_amount": 100, "month": 13, "year": 2026 }`, "month must be between 1 and 12"},
		{"year out of range", `{ "category": "Food", "limit_amount": 100, "month": 2, "year": 1999 }`, "year must be between 2000 and 2100"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/set_budget", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response tools.BudgetResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error, "Test %q did not return an error", tt.name)
		suite.Assert().Equal(tt.error, *response.Error, "Test %q returned the wrong error", tt.name)
	}
}

func (suite *TestSuiteStandard) TestGetBudgetStatus() {
	_, err := models.SetBudget(models.DB, models.CategoryFood, decimal.NewFromFloat(500), 2, 2026)
	suite.Require().Nil(err)

	_ = suite.createTestExpense(models.Expense{Category: models.CategoryFood, Amount: decimal.NewFromFloat(600.75), Date: types.NewDate(2026, 2, 10)})
	_ = suite.createTestExpense(models.Expense{Category: models.CategoryBills, Amount: decimal.NewFromFloat(50.25), Date: types.NewDate(2026, 2, 11)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_budget_status", `{ "month": 2, "year": 2026 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.Month)
	suite.Assert().Equal(2026, response.Data.Year)
	suite.Require().Len(response.Data.Categories, 2)

	suite.Assert().Equal(models.CategoryBills, response.Data.Categories[0].Category)
	suite.Assert().Equal(models.StatusUnbudgeted, response.Data.Categories[0].Status)

	suite.Assert().Equal(models.CategoryFood, response.Data.Categories[1].Category)
	suite.Assert().Equal(models.StatusOver, response.Data.Categories[1].Status)
	suite.Assert().True(response.Data.Categories[1].Difference.Equal(decimal.NewFromFloat(-100.75)), "Difference is %s", response.Data.Categories[1].Difference)
}

func (suite *TestSuiteStandard) TestGetBudgetStatusDefaultsToCurrentMonth() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_budget_status", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	now := time.Now().In(time.UTC)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int(now.Month()), response.Data.Month)
	suite.Assert().Equal(now.Year(), response.Data.Year)
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestGetBudgetStatusInvalid() {
	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"month out of range", `{ "month": 13, "year": 2026 }`, "month must be between 1 and 12"},
		{"year out of range", `{ "month": 2, "year": 2101 }`, "year must be between 2000 and 2100"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_budget_status", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response tools.BudgetStatusResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error, "Test %q did not return an error", tt.name)
		suite.Assert().Equal(tt.error, *response.Error, "Test %q returned the wrong error", tt.name)
	}
}
