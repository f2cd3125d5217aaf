package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. Each one names the offending field so that callers
// can surface it directly.
var (
	ErrTitleEmpty             = errors.New("title must not be empty")
	ErrTitleTooLong           = errors.New("title must not be longer than 200 characters")
	ErrNotesTooLong           = errors.New("notes must not be longer than 500 characters")
	ErrAmountNotPositive      = errors.New("amount must be positive")
	ErrAmountPrecision        = errors.New("amount must not have more than 2 decimal places")
	ErrCategoryInvalid        = errors.New("category must be one of: Food, Travel, Bills, Entertainment, Health, Shopping, Education, Other")
	ErrDateNotSet             = errors.New("date must be set")
	ErrLimitAmountNotPositive = errors.New("limitAmount must be positive")
	ErrLimitAmountPrecision   = errors.New("limitAmount must not have more than 2 decimal places")
	ErrMonthOutOfRange        = errors.New("month must be between 1 and 12")
	ErrYearOutOfRange         = errors.New("year must be between 2000 and 2100")
)

// ErrBudgetNotUnique is returned when a second budget row for the same
// category and month would be created. SetBudget upserts and can not
// run into this, it guards direct writes.
var ErrBudgetNotUnique = errors.New("a budget for this category and month already exists")
