package reference

import (
	"sort"
	"strings"
)

// Effective annual property tax rates (percent of assessed value) for the
// counties offered by the mortgage estimator. Approximate published averages.
var countyTaxRates = map[string]float64{
	"bexar":      2.09,
	"collin":     1.87,
	"dallas":     1.99,
	"denton":     1.88,
	"el paso":    2.38,
	"fort bend":  2.23,
	"harris":     2.03,
	"hidalgo":    1.93,
	"montgomery": 1.78,
	"tarrant":    2.05,
	"travis":     1.81,
	"williamson": 1.95,
}

func normalizeCounty(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, " county")
	return strings.Join(strings.Fields(key), " ")
}

// CountyTaxRate returns the property tax rate for a county name, ignoring
// case and a trailing "County". Unknown counties return 0.
func CountyTaxRate(name string) float64 {
	return countyTaxRates[normalizeCounty(name)]
}

// Counties returns the known county keys in alphabetical order.
func Counties() []string {
	names := make([]string, 0, len(countyTaxRates))
	for name := range countyTaxRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
