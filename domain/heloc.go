package domain

type HELOCInput struct {
	HelocAmount     string `json:"heloc_amount"`
	InterestRate    string `json:"interest_rate"`
	DrawYears       string `json:"draw_years"`
	RepayYears      string `json:"repay_years"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
	ExtraPayment    string `json:"extra_payment"`
}

// VelocityResult is the outcome of routing the whole paycheck through the
// line of credit each month. MonthlyCashFlow is income left after expenses;
// a deficit is reported as MonthlyShortfall instead.
type VelocityResult struct {
	MonthlyCashFlow  float64 `json:"monthly_cash_flow"`
	MonthlyShortfall float64 `json:"monthly_shortfall"`
	Months           int     `json:"months"`
	TotalInterest    float64 `json:"total_interest"`
	Viable           bool    `json:"viable"`
}

type HELOCResult struct {
	Balance          float64 `json:"balance"`
	DrawMonths       int     `json:"draw_months"`
	RepayMonths      int     `json:"repay_months"`
	DrawPayment      float64 `json:"draw_payment"`
	RepaymentPayment float64 `json:"repayment_payment"`

	DrawPeriodInterest      float64 `json:"draw_period_interest"`
	RepaymentPeriodInterest float64 `json:"repayment_period_interest"`
	TraditionalInterest     float64 `json:"traditional_interest"`
	TraditionalMonths       int     `json:"traditional_months"`

	Velocity      VelocityResult `json:"velocity"`
	InterestSaved float64        `json:"interest_saved"`
	MonthsSaved   int            `json:"months_saved"`

	ExtraPayment *PayoffComparison `json:"extra_payment,omitempty"`
}
