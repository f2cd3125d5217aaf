package models

import (
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record.
type Expense struct {
	DefaultModel
	Title    string          `json:"title" gorm:"size:200" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"42.50"`
	Category Category        `json:"category" gorm:"size:50;index" example:"Food"`
	Date     types.Date      `json:"date" gorm:"index" example:"2026-02-14"`
	Notes    string          `json:"notes,omitempty" gorm:"size:500" example:"Weekly shopping"`
}

func (e Expense) Self() string {
	return "Expense"
}

// BeforeSave trims whitespace and validates all fields against the
// constraints of the schema. Running this as a model hook means invalid
// data is rejected even when the tool layer is bypassed.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Notes = strings.TrimSpace(e.Notes)

	if e.Title == "" {
		return ErrTitleEmpty
	}

	// Characters, not bytes, so multibyte titles are not cut short
	if utf8.RuneCountInString(e.Title) > 200 {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(e.Notes) > 500 {
		return ErrNotesTooLong
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Amount.Exponent() < -2 {
		return ErrAmountPrecision
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	if e.Date.IsZero() {
		return ErrDateNotSet
	}

	return nil
}

// ExpenseFilter contains all filters for listing expenses. The filters
// are optional and combine with AND semantics; zero values leave the
// corresponding bound open.
type ExpenseFilter struct {
	Category Category
	From     types.Date
	To       types.Date
	Limit    int
}

// Expenses returns the expenses matching the filter, most recent first.
func Expenses(db *gorm.DB, filter ExpenseFilter) ([]Expense, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	q := db.Order("date DESC, id DESC").Limit(limit)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if !filter.From.IsZero() {
		q = q.Where("date >= ?", filter.From)
	}

	if !filter.To.IsZero() {
		q = q.Where("date <= ?", filter.To)
	}

	expenses := make([]Expense, 0)
	err := q.Find(&expenses).Error
	return expenses, err
}

// ExpenseByID returns the expense with the ID.
func ExpenseByID(db *gorm.DB, id uint64) (Expense, error) {
	var expense Expense
	err := db.First(&expense, id).Error
	return expense, err
}

// TopExpenses returns the n highest-amount expenses across all time.
// Ties are broken by the most recent date first, then by ascending ID,
// so the result is fully deterministic.
func TopExpenses(db *gorm.DB, n int) ([]Expense, error) {
	expenses := make([]Expense, 0, n)
	err := db.Order("amount DESC, date DESC, id ASC").Limit(n).Find(&expenses).Error
	return expenses, err
}

// CategorySpending is the aggregated spending for one category.
type CategorySpending struct {
	Category Category        `json:"category" example:"Food"`
	Spent    decimal.Decimal `json:"spent" example:"321.99"`
	Count    int64           `json:"count" example:"12"` // Number of expense records
}

// SpendingSummary sums expense amounts grouped by category within the
// window, largest total first. Zero dates leave the corresponding bound
// open, both bounds are inclusive.
func SpendingSummary(db *gorm.DB, from, to types.Date) ([]CategorySpending, error) {
	q := db.Model(&Expense{}).
		Select("category, SUM(amount) AS spent, COUNT(*) AS count").
		Group("category").
		Order("spent DESC")

	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}

	if !to.IsZero() {
		q = q.Where("date <= ?", to)
	}

	summary := make([]CategorySpending, 0)
	err := q.Scan(&summary).Error
	return summary, err
}

// UsedCategories returns the distinct categories observed on stored
// expenses, sorted by name. This is derived from the data, not from the
// static enumeration.
func UsedCategories(db *gorm.DB) ([]Category, error) {
	categories := make([]Category, 0)
	err := db.Model(&Expense{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
