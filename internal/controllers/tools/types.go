package tools

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`
	Error *string         `json:"error" example:"title must not be empty"`
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error" example:"limit must be between 1 and 500"`
}

// DeleteConfirmation echoes the ID of a removed resource.
type DeleteConfirmation struct {
	ID      uint64 `json:"id" example:"17"`
	Deleted bool   `json:"deleted" example:"true"`
}

type DeleteResponse struct {
	Data  *DeleteConfirmation `json:"data"`
	Error *string             `json:"error" example:"there is no expense matching your query"`
}

// Summary is the aggregated spending for one period.
type Summary struct {
	Period     string                    `json:"period" example:"month"`
	StartDate  *types.Date               `json:"startDate,omitempty" example:"2026-02-01"` // Unset for the "all" period
	EndDate    *types.Date               `json:"endDate,omitempty" example:"2026-02-28"`   // Unset for the "all" period
	GrandTotal decimal.Decimal           `json:"grandTotal" example:"623.10"`
	Count      int64                     `json:"count" example:"14"` // Number of expense records in the period
	Categories []models.CategorySpending `json:"categories"`
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`
	Error *string  `json:"error" example:"period must be one of: week, month, all"`
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`
	Error *string        `json:"error" example:"month must be between 1 and 12"`
}

// BudgetStatus holds the per-category comparison of limits and actual
// spending for one month.
type BudgetStatus struct {
	Month      int                           `json:"month" example:"2"`
	Year       int                           `json:"year" example:"2026"`
	Categories []models.CategoryBudgetStatus `json:"categories"`
}

type BudgetStatusResponse struct {
	Data  *BudgetStatus `json:"data"`
	Error *string       `json:"error" example:"year must be between 2000 and 2100"`
}
