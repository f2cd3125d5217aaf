package tools

import (
	"errors"
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AddExpenseRequest struct {
	Title    string          `json:"title" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" example:"42.50"`
	Category models.Category `json:"category" example:"Food"`
	Date     string          `json:"date" example:"2026-02-14"` // YYYY-MM-DD
	Notes    string          `json:"notes" example:"Weekly shopping"`
}

// @Summary		Record expense
// @Description	Records a new expense and returns it with its assigned ID
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			request	body		AddExpenseRequest	true	"Expense"
// @Router			/v1/tools/add_expense [post]
func AddExpense(c *gin.Context) {
	var request AddExpenseRequest
	if err := httputil.BindData(c, &request); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	var date types.Date
	if request.Date != "" {
		var err error
		date, err = parseDate(request.Date, "date")
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
			return
		}
	}

	expense := models.Expense{
		Title:    request.Title,
		Amount:   request.Amount,
		Category: request.Category,
		Date:     date,
		Notes:    request.Notes,
	}

	err := models.DB.Create(&expense).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

type GetExpensesRequest struct {
	Category  *models.Category `json:"category" example:"Food"`
	StartDate *string          `json:"start_date" example:"2026-02-01"` // YYYY-MM-DD, inclusive
	EndDate   *string          `json:"end_date" example:"2026-02-28"`   // YYYY-MM-DD, inclusive
	Limit     *int             `json:"limit" example:"50"`              // Defaults to 50
}

// @Summary		List expenses
// @Description	Returns expenses filtered by the parameters, most recent first
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			request	body		GetExpensesRequest	false	"Filters"
// @Router			/v1/tools/get_expenses [post]
func GetExpenses(c *gin.Context) {
	var request GetExpensesRequest
	if err := httputil.BindData(c, &request); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	var filter models.ExpenseFilter

	if request.Category != nil {
		if !request.Category.Valid() {
			s := models.ErrCategoryInvalid.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
			return
		}
		filter.Category = *request.Category
	}

	if request.StartDate != nil {
		date, err := parseDate(*request.StartDate, "start_date")
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
			return
		}
		filter.From = date
	}

	if request.EndDate != nil {
		date, err := parseDate(*request.EndDate, "end_date")
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
			return
		}
		filter.To = date
	}

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		s := errDateOrder.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	if request.Limit != nil {
		if *request.Limit < 1 || *request.Limit > 500 {
			s := errLimitRange.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
			return
		}
		filter.Limit = *request.Limit
	}

	expenses, err := models.Expenses(models.DB, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

type UpdateExpenseRequest struct {
	ID       uint64           `json:"id" example:"17"`
	Title    *string          `json:"title" example:"Groceries"`
	Amount   *decimal.Decimal `json:"amount" example:"42.50"`
	Category *models.Category `json:"category" example:"Food"`
	Date     *string          `json:"date" example:"2026-02-14"` // YYYY-MM-DD
	Notes    *string          `json:"notes" example:""`
}

// @Summary		Update expense
// @Description	Changes the set fields of an existing expense, other fields are left untouched
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			request	body		UpdateExpenseRequest	true	"Fields to update"
// @Router			/v1/tools/update_expense [post]
func UpdateExpense(c *gin.Context) {
	var request UpdateExpenseRequest
	if err := httputil.BindData(c, &request); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	if request.ID == 0 {
		s := errIDNotSet.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	if request.Title == nil && request.Amount == nil && request.Category == nil && request.Date == nil && request.Notes == nil {
		s := errNoUpdateFields.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	expense, err := models.ExpenseByID(models.DB, request.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	if request.Title != nil {
		expense.Title = *request.Title
	}

	if request.Amount != nil {
		expense.Amount = *request.Amount
	}

	if request.Category != nil {
		expense.Category = *request.Category
	}

	if request.Date != nil {
		date, err := parseDate(*request.Date, "date")
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
			return
		}
		expense.Date = date
	}

	if request.Notes != nil {
		expense.Notes = *request.Notes
	}

	// Save writes the full record so that the model hook validates the
	// new state, not just the changed fields.
	err = models.DB.Save(&expense).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

type DeleteExpenseRequest struct {
	ID uint64 `json:"id" example:"17"`
}

// @Summary		Delete expense
// @Description	Removes an expense and confirms the removal
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeleteResponse
// @Failure		400		{object}	DeleteResponse
// @Failure		404		{object}	DeleteResponse
// @Failure		500		{object}	DeleteResponse
// @Param			request	body		DeleteExpenseRequest	true	"Expense ID"
// @Router			/v1/tools/delete_expense [post]
func DeleteExpense(c *gin.Context) {
	var request DeleteExpenseRequest
	if err := httputil.BindData(c, &request); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DeleteResponse{Error: &s})
		return
	}

	if request.ID == 0 {
		s := errIDNotSet.Error()
		c.JSON(http.StatusBadRequest, DeleteResponse{Error: &s})
		return
	}

	expense, err := models.ExpenseByID(models.DB, request.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &s})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		Data: &DeleteConfirmation{
			ID:      expense.ID,
			Deleted: true,
		},
	})
}

type GetSummaryRequest struct {
	Period string `json:"period" example:"month"` // One of week, month, all. Defaults to month
}

// @Summary		Spending summary
// @Description	Returns the spending per category for the period, largest total first
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			request	body		GetSummaryRequest	false	"Period"
// @Router			/v1/tools/get_summary [post]
func GetSummary(c *gin.Context) {
	var request GetSummaryRequest
	if err := httputil.BindData(c, &request); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	period := request.Period
	if period == "" {
		period = "month"
	}

	var from, to types.Date
	today := types.Today()

	switch period {
	case "week":
		// The last seven days, including today
		from = today.AddDate(0, 0, -6)
		to = today
	case "month":
		// The current calendar month
		from = types.NewDate(today.Year(), today.Month(), 1)
		to = from.AddDate(0, 1, -1)
	case "all":
		// Both bounds stay open
	default:
		s := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	spending, err := models.SpendingSummary(models.DB, from, to)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	summary := Summary{
		Period:     period,
		GrandTotal: decimal.Zero,
		Categories: spending,
	}

	if period != "all" {
		summary.StartDate = &from
		summary.EndDate = &to
	}

	for _, s := range spending {
		summary.GrandTotal = summary.GrandTotal.Add(s.Spent)
		summary.Count += s.Count
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

type GetTopExpensesRequest struct {
	Count int `json:"n" example:"5"` // Defaults to 5
}

// @Summary		Top expenses
// @Description	Returns the n highest single expenses across all time
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			request	body		GetTopExpensesRequest	false	"Count"
// @Router			/v1/tools/get_top_expenses [post]
func GetTopExpenses(c *gin.Context) {
	var request GetTopExpensesRequest
	if err := httputil.BindData(c, &request); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	count := request.Count
	if count == 0 {
		count = 5
	}

	if count < 1 || count > 100 {
		s := errCountRange.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	expenses, err := models.TopExpenses(models.DB, count)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// currentMonth returns the month and year the server is in right now.
func currentMonth() (int, int) {
	now := time.Now().In(time.UTC)
	return int(now.Month()), now.Year()
}
