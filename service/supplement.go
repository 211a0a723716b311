package service

import (
	"math"
	"sort"
	"strings"

	"calc-suite/domain"
	"calc-suite/reference"
)

const (
	noDailyValueMarker   = "†"
	noDailyValueFootnote = "† Daily Value not established."
	// IU per microgram of vitamin D
	vitaminDIUPerMicrogram = 40
)

// DeriveSupplementLabel builds the rows of a Supplement Facts panel. Rows
// with an established daily value come first, in entry order, followed by
// the rest marked with a dagger.
func DeriveSupplementLabel(input domain.SupplementInput) domain.SupplementResult {
	servings := parseAmount(input.ServingsPerContainer, MaxServingsCount)
	result := domain.SupplementResult{
		ProductName:          strings.TrimSpace(input.ProductName),
		ServingSize:          strings.TrimSpace(input.ServingSize),
		ServingsPerContainer: servings,
		Rows:                 make([]domain.SupplementRow, 0, len(input.Ingredients)),
		OtherIngredients:     strings.TrimSpace(input.OtherIngredients),
	}

	for _, ing := range input.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		unit := normalizeUnit(ing.Unit)
		amount := parseAmount(ing.Amount, MaxMoneyAmount)
		row := domain.SupplementRow{
			Name:               name,
			Amount:             amount,
			Unit:               unit,
			AmountPerContainer: roundTo2Decimals(amount * servings),
		}
		if dv, ok := reference.LookupDailyValue(name); ok {
			if converted, ok := convertUnit(name, amount, unit, dv.Unit); ok {
				row.HasDailyValue = true
				row.DailyValuePercent = math.Round(converted / dv.Amount * 100)
			}
		}
		if !row.HasDailyValue {
			row.Marker = noDailyValueMarker
			result.Footnote = noDailyValueFootnote
		}
		result.Rows = append(result.Rows, row)
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].HasDailyValue && !result.Rows[j].HasDailyValue
	})
	return result
}

func normalizeUnit(u domain.Unit) domain.Unit {
	switch strings.ToLower(strings.TrimSpace(string(u))) {
	case "mcg", "µg", "ug":
		return domain.UnitMicrogram
	case "g":
		return domain.UnitGram
	case "iu":
		return domain.UnitIU
	default:
		return domain.UnitMilligram
	}
}

var milligramsPer = map[domain.Unit]float64{
	domain.UnitGram:      1000,
	domain.UnitMilligram: 1,
	domain.UnitMicrogram: 0.001,
}

// convertUnit expresses amount in the daily value's unit. IU converts only
// for vitamin D; other IU amounts have no single conversion.
func convertUnit(name string, amount float64, from, to domain.Unit) (float64, bool) {
	if from == domain.UnitIU {
		if reference.NutrientKey(name) != reference.VitaminD || to != domain.UnitMicrogram {
			return 0, false
		}
		return amount / vitaminDIUPerMicrogram, true
	}
	fromMg, ok := milligramsPer[from]
	if !ok {
		return 0, false
	}
	toMg, ok := milligramsPer[to]
	if !ok {
		return 0, false
	}
	return amount * fromMg / toMg, true
}
