package resources

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// @Summary		Expense list view
// @Description	Returns all recorded expenses as a plain text table, most recent first
// @Tags			Resources
// @Produce		plain
// @Success		200	{string}	string
// @Failure		500	{string}	string
// @Router			/v1/resources/expenses [get]
func GetAllExpenses(c *gin.Context) {
	expenses, err := models.Expenses(models.DB, models.ExpenseFilter{Limit: 500})
	if err != nil {
		c.String(status(err), "error: %s", err.Error())
		return
	}

	if len(expenses) == 0 {
		c.String(http.StatusOK, "No expenses recorded.\n")
		return
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tTITLE\tNOTES")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Category, e.Amount.StringFixed(2), e.Title, e.Notes)
	}
	w.Flush()

	c.String(http.StatusOK, b.String())
}

// @Summary		Monthly summary view
// @Description	Returns the spending per category for the current month as plain text
// @Tags			Resources
// @Produce		plain
// @Success		200	{string}	string
// @Failure		500	{string}	string
// @Router			/v1/resources/summary [get]
func GetMonthlySummary(c *gin.Context) {
	now := time.Now().In(time.UTC)
	from := types.NewDate(now.Year(), now.Month(), 1)
	to := from.AddDate(0, 1, -1)

	spending, err := models.SpendingSummary(models.DB, from, to)
	if err != nil {
		c.String(status(err), "error: %s", err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Spending summary for %s %d\n\n", now.Month(), now.Year())

	if len(spending) == 0 {
		b.WriteString("No expenses recorded this month.\n")
		c.String(http.StatusOK, b.String())
		return
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSPENT\tCOUNT")

	total := decimal.Zero
	var count int64
	for _, s := range spending {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.Category, s.Spent.StringFixed(2), s.Count)
		total = total.Add(s.Spent)
		count += s.Count
	}

	fmt.Fprintf(w, "TOTAL\t%s\t%d\n", total.StringFixed(2), count)
	w.Flush()

	c.String(http.StatusOK, b.String())
}

// @Summary		Category view
// @Description	Returns the distinct categories observed on stored expenses, one per line
// @Tags			Resources
// @Produce		plain
// @Success		200	{string}	string
// @Failure		500	{string}	string
// @Router			/v1/resources/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.UsedCategories(models.DB)
	if err != nil {
		c.String(status(err), "error: %s", err.Error())
		return
	}

	if len(categories) == 0 {
		c.String(http.StatusOK, "No expenses recorded.\n")
		return
	}

	var b strings.Builder
	for _, category := range categories {
		b.WriteString(string(category))
		b.WriteString("\n")
	}

	c.String(http.StatusOK, b.String())
}

// @Summary		Budget status view
// @Description	Returns budgets compared against actual spending for the current month as plain text
// @Tags			Resources
// @Produce		plain
// @Success		200	{string}	string
// @Failure		500	{string}	string
// @Router			/v1/resources/budget-status [get]
func GetBudgetStatus(c *gin.Context) {
	now := time.Now().In(time.UTC)

	statuses, err := models.BudgetStatuses(models.DB, int(now.Month()), now.Year())
	if err != nil {
		c.String(status(err), "error: %s", err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Budget status for %s %d\n\n", now.Month(), now.Year())

	if len(statuses) == 0 {
		b.WriteString("No budgets set and no expenses recorded this month.\n")
		c.String(http.StatusOK, b.String())
		return
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tLIMIT\tSPENT\tDIFFERENCE\tSTATUS")

	for _, s := range statuses {
		limit, difference := s.Limit.StringFixed(2), s.Difference.StringFixed(2)
		if s.Status == models.StatusUnbudgeted {
			limit, difference = "-", "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Category, limit, s.Spent.StringFixed(2), difference, s.Status)
	}
	w.Flush()

	c.String(http.StatusOK, b.String())
}
