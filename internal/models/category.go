package models

// Category is one value of the closed set of expense categories.
//
// It is deliberately not a free-form string: validation matches
// case-sensitively against the enumeration so that invalid categories
// are rejected at the edge instead of being silently stored.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
)

// Categories returns all valid categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealth,
		CategoryShopping,
		CategoryEducation,
		CategoryOther,
	}
}

// Valid reports whether the category is part of the enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTravel, CategoryBills, CategoryEntertainment,
		CategoryHealth, CategoryShopping, CategoryEducation, CategoryOther:
		return true
	}

	return false
}
