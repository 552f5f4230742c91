// Package category normalizes free-text category labels from statement
// exports into the fixed canonical category set.
package category

import (
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// keywordGroup associates one canonical category with the substrings that
// select it.
type keywordGroup struct {
	category model.Category
	keywords []string
}

// keywordGroups is matched in order and the first hit wins. Keywords overlap
// across groups ("fast food" vs "food court" style labels), so the order is
// part of the categorization contract; do not reorder without versioning the
// change.
var keywordGroups = []keywordGroup{
	{model.CategoryRestaurant, []string{"restaurant", "food", "cafe", "fast food", "dining", "coffee"}},
	{model.CategoryGroceries, []string{"grocer", "supermarket", "market"}},
	{model.CategoryGas, []string{"gas", "fuel", "petrol"}},
	{model.CategoryShopping, []string{"shopping", "merchandise", "retail", "department store", "clothing"}},
	{model.CategoryEntertainment, []string{"entertainment", "movie", "music", "game", "theater"}},
	{model.CategorySubscriptions, []string{"subscription", "membership", "streaming"}},
	{model.CategoryTravel, []string{"travel", "airline", "hotel", "lodging", "rental car", "transit"}},
	{model.CategoryHealth, []string{"health", "medical", "pharmacy", "doctor", "dental", "fitness"}},
	{model.CategoryFees, []string{"fee", "interest", "charge", "penalty"}},
}

// colors maps each canonical category to its dashboard display color.
var colors = map[model.Category]string{
	model.CategoryRestaurant:    "#ef4444",
	model.CategoryGroceries:     "#22c55e",
	model.CategoryGas:           "#f97316",
	model.CategoryShopping:      "#a855f7",
	model.CategoryEntertainment: "#ec4899",
	model.CategorySubscriptions: "#06b6d4",
	model.CategoryTravel:        "#3b82f6",
	model.CategoryHealth:        "#14b8a6",
	model.CategoryFees:          "#eab308",
	model.CategoryOther:         "#6b7280",
}

// Normalize maps an arbitrary category label to a canonical category.
// Matching is case-insensitive substring search over the ordered keyword
// groups; no group matching yields Other. Never fails.
func Normalize(label string) model.Category {
	lower := strings.ToLower(label)
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.category
			}
		}
	}
	return model.CategoryOther
}

// Color returns the display color for a canonical category. Unknown values
// get the Other color.
func Color(c model.Category) string {
	if color, ok := colors[c]; ok {
		return color
	}
	return colors[model.CategoryOther]
}
