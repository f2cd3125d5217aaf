package tools_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/expense-tracker/backend/internal/controllers/tools"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAddExpense() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/add_expense", tools.AddExpenseRequest{
		Title:    "Groceries",
		Amount:   decimal.NewFromFloat(42.50),
		Category: models.CategoryFood,
		Date:     "2026-02-14",
		Notes:    "Weekly shopping",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response tools.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)
	suite.Assert().NotZero(response.Data.ID)
	suite.Assert().Equal("Groceries", response.Data.Title)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(42.50)))
	suite.Assert().True(response.Data.Date.Equal(types.NewDate(2026, 2, 14)))
	suite.Assert().False(response.Data.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestAddExpenseInvalid() {
	tests := []struct {
		name  string
		body  any
		error string
	}{
		{"empty body", "", "the request body must not be empty"},
		{"broken JSON", `{ "title": `, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"empty title", `{ "title": " ", "amount": 1, "category": "Food", "date": "2026-02-14" }`, "title must not be empty"},
		{"title too long", fmt.Sprintf(`{ "title": %q, "amount": 1, "category": "Food", "date": "2026-02-14" }`, strings.Repeat("a", 201)), "title must not be longer than 200 characters"},
		{"zero amount", `{ "title": "t", "amount": 0, "category": "Food", "date": "2026-02-14" }`, "amount must be positive"},
		{"amount precision", `{ "title": "t", "amount": 1.999, "category": "Food", "date": "2026-02-14" }`, "amount must not have more than 2 decimal places"},
		{"invalid category", `{ "title": "t", "amount": 1, "category": "Gambling", "date": "2026-02-14" }`, "category must be one of: Food, Travel, Bills, Entertainment, Health, Shopping, Education, Other"},
		{"invalid date", `{ "title": "t", "amount": 1, "category": "Food", "date": "14.02.2026" }`, "the date parameter must be a date in YYYY-MM-DD format"},
		{"impossible date", `{ "title": "t", "amount": 1, "category": "Food", "date": "2026-02-30" }`, "the date parameter must be a date in YYYY-MM-DD format"},
		{"date not set", `{ "title": "t", "amount": 1, "category": "Food" }`, "date must be set"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/add_expense", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response tools.ExpenseResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error, "Test %q did not return an error", tt.name)
		suite.Assert().Equal(tt.error, *response.Error, "Test %q returned the wrong error", tt.name)
		suite.Assert().Nil(response.Data)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesEmpty() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().NotNil(response.Data)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	_ = suite.createTestExpense(models.Expense{Title: "Lunch", Category: models.CategoryFood, Date: types.NewDate(2026, 2, 10)})
	_ = suite.createTestExpense(models.Expense{Title: "Train ticket", Category: models.CategoryTravel, Date: types.NewDate(2026, 2, 12)})
	_ = suite.createTestExpense(models.Expense{Title: "Dinner", Category: models.CategoryFood, Date: types.NewDate(2026, 3, 1)})

	tests := []struct {
		name   string
		body   string
		titles []string
	}{
		{"no filters", `{}`, []string{"Dinner", "Train ticket", "Lunch"}},
		{"category", `{ "category": "Food" }`, []string{"Dinner", "Lunch"}},
		{"date range", `{ "start_date": "2026-02-11", "end_date": "2026-02-28" }`, []string{"Train ticket"}},
		{"limit", `{ "limit": 1 }`, []string{"Dinner"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_expenses", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response tools.ExpenseListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		titles := make([]string, 0, len(response.Data))
		for _, e := range response.Data {
			titles = append(titles, e.Title)
		}

		suite.Assert().Equal(tt.titles, titles, "Test %q returned the wrong expenses", tt.name)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalid() {
	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"invalid category", `{ "category": "Gambling" }`, "category must be one of: Food, Travel, Bills, Entertainment, Health, Shopping, Education, Other"},
		{"invalid start_date", `{ "start_date": "whenever" }`, "the start_date parameter must be a date in YYYY-MM-DD format"},
		{"invalid end_date", `{ "end_date": "whenever" }`, "the end_date parameter must be a date in YYYY-MM-DD format"},
		{"start after end", `{ "start_date": "2026-03-01", "end_date": "2026-02-01" }`, "start_date must not be after end_date"},
		{"limit zero", `{ "limit": 0 }`, "limit must be between 1 and 500"},
		{"limit too large", `{ "limit": 501 }`, "limit must be between 1 and 500"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_expenses", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response tools.ExpenseListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error, "Test %q did not return an error", tt.name)
		suite.Assert().Equal(tt.error, *response.Error, "Test %q returned the wrong error", tt.name)
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createTestExpense(models.Expense{Title: "Grocery run", Amount: decimal.NewFromFloat(20)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/update_expense", map[string]any{
		"id":     expense.ID,
		"amount": 25.50,
		"notes":  "Forgot the milk",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(25.50)), "Amount is %s", response.Data.Amount)
	suite.Assert().Equal("Forgot the milk", response.Data.Notes)

	// Fields that were not sent stay untouched
	suite.Assert().Equal("Grocery run", response.Data.Title)
	suite.Assert().Equal(expense.Category, response.Data.Category)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	expense := suite.createTestExpense(models.Expense{})

	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"no ID", `{ "title": "New" }`, http.StatusBadRequest, "the id parameter must be a positive integer"},
		{"no fields", fmt.Sprintf(`{ "id": %d }`, expense.ID), http.StatusBadRequest, "at least one field to update must be set"},
		{"not found", `{ "id": 4096, "title": "New" }`, http.StatusNotFound, "there is no expense matching your query"},
		{"empty title", fmt.Sprintf(`{ "id": %d, "title": " " }`, expense.ID), http.StatusBadRequest, "title must not be empty"},
		{"negative amount", fmt.Sprintf(`{ "id": %d, "amount": -3 }`, expense.ID), http.StatusBadRequest, "amount must be positive"},
		{"invalid date", fmt.Sprintf(`{ "id": %d, "date": "soon" }`, expense.ID), http.StatusBadRequest, "the date parameter must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/update_expense", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

		var response tools.ExpenseResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error, "Test %q did not return an error", tt.name)
		suite.Assert().Equal(tt.error, *response.Error, "Test %q returned the wrong error", tt.name)
	}
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense(models.Expense{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/delete_expense", map[string]any{"id": expense.ID})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.DeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(expense.ID, response.Data.ID)
	suite.Assert().True(response.Data.Deleted)

	// The expense is gone
	_, err := models.ExpenseByID(models.DB, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// Deleting again reports not found
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/delete_expense", map[string]any{"id": expense.ID})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpenseNoID() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/delete_expense", `{}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetSummary() {
	today := types.Today()

	_ = suite.createTestExpense(models.Expense{Category: models.CategoryFood, Amount: decimal.NewFromFloat(10.25), Date: today})
	_ = suite.createTestExpense(models.Expense{Category: models.CategoryTravel, Amount: decimal.NewFromFloat(5.50), Date: today.AddDate(0, 0, -3)})
	_ = suite.createTestExpense(models.Expense{Category: models.CategoryBills, Amount: decimal.NewFromFloat(99), Date: today.AddDate(-1, 0, 0)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_summary", `{ "period": "week" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("week", response.Data.Period)
	suite.Assert().True(response.Data.GrandTotal.Equal(decimal.NewFromFloat(15.75)), "Grand total is %s", response.Data.GrandTotal)
	suite.Assert().Equal(int64(2), response.Data.Count)
	suite.Require().NotNil(response.Data.StartDate)
	suite.Require().NotNil(response.Data.EndDate)
	suite.Assert().True(response.Data.EndDate.Equal(today))

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_summary", `{ "period": "all" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	response = tools.SummaryResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.GrandTotal.Equal(decimal.NewFromFloat(114.75)), "Grand total is %s", response.Data.GrandTotal)
	suite.Assert().Equal(int64(3), response.Data.Count)
	suite.Assert().Nil(response.Data.StartDate)
	suite.Assert().Nil(response.Data.EndDate)
}

func (suite *TestSuiteStandard) TestGetSummaryDefaultsToMonth() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("month", response.Data.Period)
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestGetSummaryInvalidPeriod() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_summary", `{ "period": "year" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response tools.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("period must be one of: week, month, all", *response.Error)
}

func (suite *TestSuiteStandard) TestGetTopExpenses() {
	_ = suite.createTestExpense(models.Expense{Title: "Old big", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2026, 1, 10)})
	_ = suite.createTestExpense(models.Expense{Title: "Medium", Amount: decimal.NewFromFloat(50), Date: types.NewDate(2026, 1, 20)})
	_ = suite.createTestExpense(models.Expense{Title: "New big", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2026, 2, 10)})
	_ = suite.createTestExpense(models.Expense{Title: "Small", Amount: decimal.NewFromFloat(25), Date: types.NewDate(2026, 2, 11)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_top_expenses", `{ "n": 3 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("New big", response.Data[0].Title)
	suite.Assert().Equal("Old big", response.Data[1].Title)
	suite.Assert().Equal("Medium", response.Data[2].Title)

	// Without a count, the top 5 are returned
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_top_expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 4)
}

func (suite *TestSuiteStandard) TestGetTopExpensesEqualAmountAndDate() {
	first := suite.createTestExpense(models.Expense{Title: "First", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2026, 2, 10)})
	second := suite.createTestExpense(models.Expense{Title: "Second", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2026, 2, 10)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_top_expenses", `{ "n": 2 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response tools.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)

	// Same amount and date, the earlier record comes first
	suite.Assert().Equal(first.ID, response.Data[0].ID)
	suite.Assert().Equal(second.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestGetTopExpensesInvalidCount() {
	for _, body := range []string{`{ "n": -1 }`, `{ "n": 101 }`} {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tools/get_top_expenses", body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response tools.ExpenseListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Require().NotNil(response.Error)
		suite.Assert().Equal("n must be between 1 and 100", *response.Error)
	}
}
