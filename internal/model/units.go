package model

// UnitCatalog maps each category to its ordered selector options
type UnitCatalog map[Category][]string

// DefaultUnitCatalog returns the selector options published by the conversion
// service. Used until GET /api/units answers, or when it never does.
func DefaultUnitCatalog() UnitCatalog {
	return UnitCatalog{
		CategoryLength: {
			"meter", "kilometer", "centimeter", "millimeter",
			"mile", "yard", "foot", "inch",
		},
		CategoryWeight: {
			"kilogram", "gram", "milligram", "pound", "ounce", "ton", "stone",
		},
		CategoryTemperature: {"celsius", "fahrenheit", "kelvin"},
		CategoryVolume: {
			"liter", "milliliter", "gallon", "quart", "pint", "cup",
			"fluid_ounce", "cubic_meter", "cubic_centimeter",
		},
		CategoryCurrency: {
			"USD", "EUR", "GBP", "JPY", "INR", "CAD", "AUD", "CHF", "CNY", "MXN",
		},
		CategoryNumberBase: {"binary", "decimal", "hexadecimal", "octal"},
	}
}

// UnitCatalogFromPayload converts the /api/units body, keyed by catalog key,
// into a catalog. Unknown keys and empty lists are ignored.
func UnitCatalogFromPayload(payload map[string][]string) UnitCatalog {
	catalog := make(UnitCatalog, len(payload))
	for _, c := range Categories() {
		units, ok := payload[c.CatalogKey()]
		if !ok || len(units) == 0 {
			continue
		}
		catalog[c] = append([]string(nil), units...)
	}
	return catalog
}

// Units returns the options for a category
func (uc UnitCatalog) Units(c Category) []string {
	return uc[c]
}

// Merge returns a copy of uc with every category present in other replaced
func (uc UnitCatalog) Merge(other UnitCatalog) UnitCatalog {
	merged := make(UnitCatalog, len(uc))
	for c, units := range uc {
		merged[c] = units
	}
	for c, units := range other {
		if len(units) > 0 {
			merged[c] = units
		}
	}
	return merged
}

// DefaultPair returns the initial from/to selection for a category:
// the first option and the second (or the first again when only one exists).
func (uc UnitCatalog) DefaultPair(c Category) (from, to string) {
	units := uc[c]
	switch len(units) {
	case 0:
		return "", ""
	case 1:
		return units[0], units[0]
	default:
		return units[0], units[1]
	}
}
