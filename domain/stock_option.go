package domain

type OptionType string

const (
	OptionISO OptionType = "iso"
	OptionNSO OptionType = "nso"
)

type StockOptionInput struct {
	OptionsGranted      string     `json:"options_granted"`
	StrikePrice         string     `json:"strike_price"`
	CurrentPrice        string     `json:"current_price"`
	ExitPrice           string     `json:"exit_price"`
	VestingYears        string     `json:"vesting_years"`
	CliffMonths         string     `json:"cliff_months"`
	MonthsSinceGrant    string     `json:"months_since_grant"`
	OptionType          OptionType `json:"option_type"`
	OrdinaryTaxRate     string     `json:"ordinary_tax_rate"`
	CapitalGainsTaxRate string     `json:"capital_gains_tax_rate"`
}

type StockOptionResult struct {
	OptionType      OptionType `json:"option_type"`
	VestedOptions   float64    `json:"vested_options"`
	UnvestedOptions float64    `json:"unvested_options"`
	VestedPercent   float64    `json:"vested_percent"`

	ExerciseCost   float64 `json:"exercise_cost"`
	SpreadPerShare float64 `json:"spread_per_share"`
	IntrinsicValue float64 `json:"intrinsic_value"`
	ExitValue      float64 `json:"exit_value"`
	GrossProfit    float64 `json:"gross_profit"`
	TaxAtExercise  float64 `json:"tax_at_exercise"`
	AMTExposure    float64 `json:"amt_exposure"` // informational, not deducted
	TaxAtSale      float64 `json:"tax_at_sale"`
	NetProfit      float64 `json:"net_profit"`
	BreakEvenPrice float64 `json:"break_even_price"`
	ReturnMultiple float64 `json:"return_multiple"`
	InTheMoney     bool    `json:"in_the_money"`
}
