package models

import (
	"time"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget represents the spending limit for one category in one month.
//
// There is at most one budget row per (category, month, year), enforced
// by a unique index. SetBudget upserts on that key.
type Budget struct {
	DefaultModel
	Category    Category        `json:"category" gorm:"size:50;uniqueIndex:budget_category_period" example:"Food"`
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(12,2)" example:"500.00"`
	Month       int             `json:"month" gorm:"uniqueIndex:budget_category_period" example:"2"`
	Year        int             `json:"year" gorm:"uniqueIndex:budget_category_period" example:"2026"`
}

func (b Budget) Self() string {
	return "Budget"
}

// BeforeSave validates all fields against the constraints of the schema.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.Category.Valid() {
		return ErrCategoryInvalid
	}

	if !b.LimitAmount.IsPositive() {
		return ErrLimitAmountNotPositive
	}

	if b.LimitAmount.Exponent() < -2 {
		return ErrLimitAmountPrecision
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrMonthOutOfRange
	}

	if b.Year < 2000 || b.Year > 2100 {
		return ErrYearOutOfRange
	}

	return nil
}

// SetBudget creates the budget for (category, month, year) or replaces
// the limit of an existing one.
//
// The write is a single conditional statement keyed on the unique index,
// concurrent calls therefore cannot create duplicate rows. The last
// write wins.
func SetBudget(db *gorm.DB, category Category, limit decimal.Decimal, month, year int) (Budget, error) {
	budget := Budget{
		Category:    category,
		LimitAmount: limit,
		Month:       month,
		Year:        year,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"limit_amount": limit,
			"updated_at":   time.Now().In(time.UTC),
		}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	// Re-read so that ID and timestamps reflect the stored row in the
	// conflict case, too.
	var saved Budget
	err = db.Where("category = ? AND month = ? AND year = ?", category, month, year).First(&saved).Error
	return saved, err
}

// Budget status classifications.
const (
	StatusOver       = "over"
	StatusUnder      = "under"
	StatusUnbudgeted = "unbudgeted"
)

// CategoryBudgetStatus compares the configured limit with the actual
// spending for one category in one month.
type CategoryBudgetStatus struct {
	Category   Category        `json:"category" example:"Food"`
	Limit      decimal.Decimal `json:"limit" example:"500.00"`      // 0 when no budget is configured
	Spent      decimal.Decimal `json:"spent" example:"623.10"`      // Sum of expense amounts in the month
	Difference decimal.Decimal `json:"difference" example:"-123.10"` // Limit minus spent
	Status     string          `json:"status" example:"over"`       // One of over, under, unbudgeted
}

// BudgetStatuses returns one entry per category that has a budget row
// or at least one expense in the month, sorted by category name.
func BudgetStatuses(db *gorm.DB, month, year int) ([]CategoryBudgetStatus, error) {
	var budgets []Budget
	err := db.Where("month = ? AND year = ?", month, year).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	from := types.NewDate(year, time.Month(month), 1)
	to := from.AddDate(0, 1, -1)

	spending, err := SpendingSummary(db, from, to)
	if err != nil {
		return nil, err
	}

	limits := make(map[Category]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		limits[budget.Category] = budget.LimitAmount
	}

	spent := make(map[Category]decimal.Decimal, len(spending))
	for _, s := range spending {
		spent[s.Category] = s.Spent
	}

	categories := make([]Category, 0, len(limits)+len(spent))
	for category := range limits {
		categories = append(categories, category)
	}
	for category := range spent {
		if _, ok := limits[category]; !ok {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)

	statuses := make([]CategoryBudgetStatus, 0, len(categories))
	for _, category := range categories {
		limit, budgeted := limits[category]
		actual := spent[category]

		status := CategoryBudgetStatus{
			Category:   category,
			Limit:      limit,
			Spent:      actual,
			Difference: limit.Sub(actual),
		}

		switch {
		case !budgeted:
			status.Status = StatusUnbudgeted
		case actual.GreaterThan(limit):
			status.Status = StatusOver
		default:
			status.Status = StatusUnder
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
