package model

// Category is one of the fixed canonical spending categories. All free-text
// category labels normalize to a member of this set.
type Category string

const (
	CategoryRestaurant    Category = "Restaurant"
	CategoryGroceries     Category = "Groceries"
	CategoryGas           Category = "Gas & Fuel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategorySubscriptions Category = "Subscriptions"
	CategoryTravel        Category = "Travel"
	CategoryHealth        Category = "Health"
	CategoryFees          Category = "Fees"
	CategoryOther         Category = "Other"
)

// Categories lists every canonical category in display order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryGroceries,
	CategoryGas,
	CategoryShopping,
	CategoryEntertainment,
	CategorySubscriptions,
	CategoryTravel,
	CategoryHealth,
	CategoryFees,
	CategoryOther,
}
