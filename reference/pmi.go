package reference

// PMIRemovalLTV is the loan-to-value at which private mortgage insurance is
// cancelled automatically.
const PMIRemovalLTV = 78.0

// PMIRequiredAbove is the loan-to-value above which PMI is charged.
const PMIRequiredAbove = 80.0

// annual PMI premium as a percent of the loan amount, by loan-to-value
var pmiTiers = []Band[float64]{
	{Threshold: 95, Strict: true, Value: 1.05},
	{Threshold: 90, Strict: true, Value: 0.78},
	{Threshold: 85, Strict: true, Value: 0.52},
	{Threshold: PMIRequiredAbove, Strict: true, Value: 0.32},
}

// PMIRate returns the annual PMI premium percent for a loan-to-value
// percentage. Loans at or below 80% LTV carry no PMI.
func PMIRate(ltv float64) float64 {
	return Lookup(pmiTiers, ltv, 0)
}
