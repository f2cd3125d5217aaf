package tools

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SetBudgetRequest struct {
	Category    models.Category `json:"category" example:"Food"`
	LimitAmount decimal.Decimal `json:"limit_amount" example:"500.00"`
	Month       int             `json:"month" example:"2"`
	Year        int             `json:"year" example:"2026"`
}

// @Summary		Set budget
// @Description	Creates the budget for a category and month or replaces the limit of an existing one
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			request	body		SetBudgetRequest	true	"Budget"
// @Router			/v1/tools/set_budget [post]
func SetBudget(c *gin.Context) {
	var request SetBudgetRequest
	if err := httputil.BindData(c, &request); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := models.SetBudget(models.DB, request.Category, request.LimitAmount, request.Month, request.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

type GetBudgetStatusRequest struct {
	Month int `json:"month" example:"2"`  // Defaults to the current month
	Year  int `json:"year" example:"2026"` // Defaults to the current year
}

// @Summary		Budget status
// @Description	Compares budgets against actual spending for a month. Categories with spending but no budget are reported as unbudgeted
// @Tags			Tools
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetStatusResponse
// @Failure		400		{object}	BudgetStatusResponse
// @Failure		500		{object}	BudgetStatusResponse
// @Param			request	body		GetBudgetStatusRequest	false	"Month"
// @Router			/v1/tools/get_budget_status [post]
func GetBudgetStatus(c *gin.Context) {
	var request GetBudgetStatusRequest
	if err := httputil.BindData(c, &request); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetStatusResponse{Error: &s})
		return
	}

	nowMonth, nowYear := currentMonth()

	month, year := request.Month, request.Year
	if month == 0 {
		month = nowMonth
	}
	if year == 0 {
		year = nowYear
	}

	if month < 1 || month > 12 {
		s := models.ErrMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, BudgetStatusResponse{Error: &s})
		return
	}

	if year < 2000 || year > 2100 {
		s := models.ErrYearOutOfRange.Error()
		c.JSON(http.StatusBadRequest, BudgetStatusResponse{Error: &s})
		return
	}

	statuses, err := models.BudgetStatuses(models.DB, month, year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{
		Data: &BudgetStatus{
			Month:      month,
			Year:       year,
			Categories: statuses,
		},
	})
}
