package service

import (
	"math"
	"reflect"
	"testing"

	"calc-suite/domain"
)

// assertFiniteNonNegative walks every float in v and fails on NaN, infinity
// or a negative value.
func assertFiniteNonNegative(t *testing.T, label string, v any) {
	t.Helper()
	var walk func(path string, rv reflect.Value)
	walk = func(path string, rv reflect.Value) {
		switch rv.Kind() {
		case reflect.Float64:
			f := rv.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
				t.Errorf("%s%s = %v", label, path, f)
			}
		case reflect.Int:
			if rv.Int() < 0 {
				t.Errorf("%s%s = %d", label, path, rv.Int())
			}
		case reflect.Pointer:
			if !rv.IsNil() {
				walk(path, rv.Elem())
			}
		case reflect.Struct:
			for i := 0; i < rv.NumField(); i++ {
				walk(path+"."+rv.Type().Field(i).Name, rv.Field(i))
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				walk(path+"[]", rv.Index(i))
			}
		}
	}
	walk("", reflect.ValueOf(v))
}

var malformedValues = []string{"", " ", "abc", "-5", "-1e9", "NaN", "Inf", "1e400", "$", "%", "12abc", "9999999999999", "1e-14", "0.00000000000001", "--5", "-$-5"}

func TestMalformedInputNeverProducesNaNOrNegatives(t *testing.T) {
	for _, raw := range malformedValues {
		assertFiniteNonNegative(t, "mortgage", DeriveMortgage(domain.MortgageInput{
			HomePrice: raw, DownPayment: raw, InterestRate: raw, LoanTermYears: raw,
			PropertyTaxRate: raw, HomeInsuranceAnnual: raw, HOAMonthly: raw, ExtraMonthlyPayment: raw,
		}))
		assertFiniteNonNegative(t, "mortgage amount mode", DeriveMortgage(domain.MortgageInput{
			HomePrice: "300000", DownPayment: raw, DownPaymentMode: domain.DownPaymentAmount,
			InterestRate: raw, LoanTermYears: "30", ExtraMonthlyPayment: raw,
		}))

		side := domain.AntlerSide{MainBeam: raw}
		for i := range side.Tines {
			side.Tines[i] = raw
		}
		for i := range side.Circumferences {
			side.Circumferences[i] = raw
		}
		assertFiniteNonNegative(t, "antler", DeriveAntler(domain.AntlerInput{
			InsideSpread: raw, Left: side, Right: side, AbnormalLeft: raw, AbnormalRight: raw,
		}))

		assertFiniteNonNegative(t, "stock option", DeriveStockOption(domain.StockOptionInput{
			OptionsGranted: raw, StrikePrice: raw, CurrentPrice: raw, ExitPrice: raw,
			VestingYears: raw, CliffMonths: raw, MonthsSinceGrant: raw,
			OrdinaryTaxRate: raw, CapitalGainsTaxRate: raw,
		}))

		scores := domain.LanguageScores{Test: domain.TestIELTS, Listening: raw, Reading: raw, Writing: raw, Speaking: raw}
		assertFiniteNonNegative(t, "crs", DeriveCRS(domain.CRSInput{
			Age: raw, FirstLanguage: scores, SecondLanguage: scores,
			CanadianWorkYears: raw, ForeignWorkYears: raw, HasSpouse: true,
			SpouseLanguage: scores, SpouseCanadianWorkYears: raw,
		}))
		assertFiniteNonNegative(t, "fswp", DeriveFSWP(domain.FSWPInput{
			Age: raw, FirstLanguage: scores, SecondLanguage: scores, WorkYears: raw,
		}))

		assertFiniteNonNegative(t, "heloc", DeriveHELOC(domain.HELOCInput{
			HelocAmount: raw, InterestRate: raw, DrawYears: raw, RepayYears: raw,
			MonthlyIncome: raw, MonthlyExpenses: raw, ExtraPayment: raw,
		}))
		assertFiniteNonNegative(t, "heloc deficit", DeriveHELOC(domain.HELOCInput{
			HelocAmount: "250000", InterestRate: raw, RepayYears: "20",
			MonthlyIncome: raw, MonthlyExpenses: "6000", ExtraPayment: raw,
		}))
		assertFiniteNonNegative(t, "heloc valid rate", DeriveHELOC(domain.HELOCInput{
			HelocAmount: raw, InterestRate: "8.5", RepayYears: "20",
			MonthlyIncome: "5000", MonthlyExpenses: raw,
		}))

		assertFiniteNonNegative(t, "supplement", DeriveSupplementLabel(domain.SupplementInput{
			ServingsPerContainer: raw,
			Ingredients: []domain.SupplementIngredient{
				{Name: "Vitamin C", Amount: raw, Unit: domain.UnitMilligram},
				{Name: "Vitamin D", Amount: raw, Unit: domain.UnitIU},
			},
		}))
	}
}
