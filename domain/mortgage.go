package domain

// DownPaymentMode says how MortgageInput.DownPayment is expressed.
type DownPaymentMode string

const (
	DownPaymentPercent DownPaymentMode = "percent"
	DownPaymentAmount  DownPaymentMode = "amount"
)

type MortgageInput struct {
	HomePrice           string          `json:"home_price"`
	DownPayment         string          `json:"down_payment"`
	DownPaymentMode     DownPaymentMode `json:"down_payment_mode"`
	InterestRate        string          `json:"interest_rate"`
	LoanTermYears       string          `json:"loan_term_years"`
	County              string          `json:"county"`
	PropertyTaxRate     string          `json:"property_tax_rate"` // overrides County when set
	HomeInsuranceAnnual string          `json:"home_insurance_annual"`
	HOAMonthly          string          `json:"hoa_monthly"`
	ExtraMonthlyPayment string          `json:"extra_monthly_payment"`
}

type MortgageResult struct {
	HomePrice          float64 `json:"home_price"`
	DownPaymentAmount  float64 `json:"down_payment_amount"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	LoanAmount         float64 `json:"loan_amount"`
	LoanToValue        float64 `json:"loan_to_value"`

	PMIRequired bool    `json:"pmi_required"`
	PMIRate     float64 `json:"pmi_rate"`
	PMIMonths   int     `json:"pmi_months"`

	PropertyTaxRate float64 `json:"property_tax_rate"`

	MonthlyPrincipalInterest float64 `json:"monthly_principal_interest"`
	MonthlyPropertyTax       float64 `json:"monthly_property_tax"`
	MonthlyInsurance         float64 `json:"monthly_insurance"`
	MonthlyPMI               float64 `json:"monthly_pmi"`
	MonthlyHOA               float64 `json:"monthly_hoa"`
	TotalMonthlyPayment      float64 `json:"total_monthly_payment"`

	TotalInterest   float64 `json:"total_interest"`
	TotalOfPayments float64 `json:"total_of_payments"`
	TotalCost       float64 `json:"total_cost"`
	PayoffMonths    int     `json:"payoff_months"`

	Schedule     []AmortizationYear `json:"schedule"`
	ExtraPayment *PayoffComparison  `json:"extra_payment,omitempty"`
}
