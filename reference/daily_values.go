package reference

import (
	"strings"

	"calc-suite/domain"
)

// DailyValue is an FDA reference daily intake for adults and children aged 4
// and over.
type DailyValue struct {
	Amount float64
	Unit   domain.Unit
}

var dailyValues = map[string]DailyValue{
	"vitamin a":        {900, domain.UnitMicrogram},
	"vitamin c":        {90, domain.UnitMilligram},
	"vitamin d":        {20, domain.UnitMicrogram},
	"vitamin e":        {15, domain.UnitMilligram},
	"vitamin k":        {120, domain.UnitMicrogram},
	"thiamin":          {1.2, domain.UnitMilligram},
	"riboflavin":       {1.3, domain.UnitMilligram},
	"niacin":           {16, domain.UnitMilligram},
	"vitamin b6":       {1.7, domain.UnitMilligram},
	"folate":           {400, domain.UnitMicrogram},
	"vitamin b12":      {2.4, domain.UnitMicrogram},
	"biotin":           {30, domain.UnitMicrogram},
	"pantothenic acid": {5, domain.UnitMilligram},
	"choline":          {550, domain.UnitMilligram},
	"calcium":          {1300, domain.UnitMilligram},
	"iron":             {18, domain.UnitMilligram},
	"phosphorus":       {1250, domain.UnitMilligram},
	"iodine":           {150, domain.UnitMicrogram},
	"magnesium":        {420, domain.UnitMilligram},
	"zinc":             {11, domain.UnitMilligram},
	"selenium":         {55, domain.UnitMicrogram},
	"copper":           {0.9, domain.UnitMilligram},
	"manganese":        {2.3, domain.UnitMilligram},
	"chromium":         {35, domain.UnitMicrogram},
	"molybdenum":       {45, domain.UnitMicrogram},
	"chloride":         {2300, domain.UnitMilligram},
	"potassium":        {4700, domain.UnitMilligram},
	"sodium":           {2300, domain.UnitMilligram},
}

var nutrientAliases = map[string]string{
	"vitamin b-6":     "vitamin b6",
	"vitamin b-12":    "vitamin b12",
	"b6":              "vitamin b6",
	"b12":             "vitamin b12",
	"thiamine":        "thiamin",
	"vitamin b1":      "thiamin",
	"vitamin b2":      "riboflavin",
	"vitamin b3":      "niacin",
	"vitamin b5":      "pantothenic acid",
	"vitamin b7":      "biotin",
	"folic acid":      "folate",
	"vitamin d3":      "vitamin d",
	"vitamin d2":      "vitamin d",
	"cholecalciferol": "vitamin d",
	"ascorbic acid":   "vitamin c",
}

// VitaminD is the nutrient key whose IU amounts can be converted.
const VitaminD = "vitamin d"

// NutrientKey canonicalizes an ingredient name: lower case, single spaces,
// no parenthetical such as "(as ascorbic acid)", aliases resolved.
func NutrientKey(name string) string {
	key := strings.ToLower(name)
	if i := strings.Index(key, "("); i >= 0 {
		key = key[:i]
	}
	key = strings.Join(strings.Fields(key), " ")
	if alias, ok := nutrientAliases[key]; ok {
		key = alias
	}
	return key
}

// LookupDailyValue finds the daily value for an ingredient name.
func LookupDailyValue(name string) (DailyValue, bool) {
	dv, ok := dailyValues[NutrientKey(name)]
	return dv, ok
}
