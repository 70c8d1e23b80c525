package model

import "fmt"

// Category identifies one conversion panel and its backend endpoint
type Category string

const (
	CategoryLength      Category = "length"
	CategoryWeight      Category = "weight"
	CategoryTemperature Category = "temperature"
	CategoryVolume      Category = "volume"
	CategoryCurrency    Category = "currency"
	CategoryNumberBase  Category = "number-base"
)

// ConvertPathPrefix is the shared prefix of all conversion endpoints
const ConvertPathPrefix = "/api/convert/"

// Categories returns all categories in tab order
func Categories() []Category {
	return []Category{
		CategoryLength,
		CategoryWeight,
		CategoryTemperature,
		CategoryVolume,
		CategoryCurrency,
		CategoryNumberBase,
	}
}

// ParseCategory resolves a category name
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	// Accept the catalog spelling too
	if name == "number_base" {
		return CategoryNumberBase, nil
	}
	return "", fmt.Errorf("unknown category: %s", name)
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Endpoint returns the POST path for conversions in this category
func (c Category) Endpoint() string {
	return ConvertPathPrefix + string(c)
}

// IsNumeric returns true if the category sends its value as a number
func (c Category) IsNumeric() bool {
	return c != CategoryNumberBase
}

// SelectorKeys returns the JSON keys carrying the source and target selections
func (c Category) SelectorKeys() (from, to string) {
	switch c {
	case CategoryCurrency:
		return "from_currency", "to_currency"
	case CategoryNumberBase:
		return "from_base", "to_base"
	default:
		return "from_unit", "to_unit"
	}
}

// CatalogKey returns the key of this category in the /api/units payload
func (c Category) CatalogKey() string {
	if c == CategoryNumberBase {
		return "number_base"
	}
	return string(c)
}

// FieldPrefix returns the prefix of the field identifiers for this category
func (c Category) FieldPrefix() string {
	switch c {
	case CategoryTemperature:
		return "temp"
	case CategoryNumberBase:
		return "number"
	default:
		return string(c)
	}
}
