package model

import "testing"

func TestDefaultUnitCatalog_CoversAllCategories(t *testing.T) {
	catalog := DefaultUnitCatalog()
	for _, c := range Categories() {
		if len(catalog.Units(c)) < 2 {
			t.Errorf("Expected at least two units for %s, got %v", c, catalog.Units(c))
		}
	}
}

func TestUnitCatalogFromPayload(t *testing.T) {
	payload := map[string][]string{
		"length":      {"meter", "foot"},
		"number_base": {"binary", "decimal"},
		"temperature": {},
		"speed":       {"knot"},
	}

	catalog := UnitCatalogFromPayload(payload)

	if len(catalog) != 2 {
		t.Fatalf("Expected 2 categories, got %d: %v", len(catalog), catalog)
	}
	if got := catalog.Units(CategoryNumberBase); len(got) != 2 || got[0] != "binary" {
		t.Errorf("Unexpected number-base units: %v", got)
	}
	if _, ok := catalog[CategoryTemperature]; ok {
		t.Error("Empty unit list should be ignored")
	}
}

func TestUnitCatalog_Merge(t *testing.T) {
	base := DefaultUnitCatalog()
	merged := base.Merge(UnitCatalog{CategoryCurrency: {"USD", "BTC"}})

	if got := merged.Units(CategoryCurrency); len(got) != 2 || got[1] != "BTC" {
		t.Errorf("Expected currency override, got %v", got)
	}
	if len(merged.Units(CategoryLength)) != len(base.Units(CategoryLength)) {
		t.Error("Length units should be unchanged")
	}
	if len(base.Units(CategoryCurrency)) != 10 {
		t.Error("Merge must not modify the receiver")
	}
}

func TestUnitCatalog_DefaultPair(t *testing.T) {
	catalog := UnitCatalog{
		CategoryLength:   {"meter", "foot", "inch"},
		CategoryCurrency: {"USD"},
	}

	if from, to := catalog.DefaultPair(CategoryLength); from != "meter" || to != "foot" {
		t.Errorf("DefaultPair(length) = (%s, %s)", from, to)
	}
	if from, to := catalog.DefaultPair(CategoryCurrency); from != "USD" || to != "USD" {
		t.Errorf("DefaultPair(currency) = (%s, %s)", from, to)
	}
	if from, to := catalog.DefaultPair(CategoryVolume); from != "" || to != "" {
		t.Errorf("DefaultPair(volume) = (%s, %s)", from, to)
	}
}
