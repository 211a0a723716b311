package domain

type AmortizationYear struct {
	Year          int     `json:"year"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	EndingBalance float64 `json:"ending_balance"`
}

type AmortizationSchedule struct {
	MonthlyPayment float64            `json:"monthly_payment"`
	Months         int                `json:"months"`
	TotalPrincipal float64            `json:"total_principal"`
	TotalInterest  float64            `json:"total_interest"`
	TotalPaid      float64            `json:"total_paid"`
	Years          []AmortizationYear `json:"years"`
}

// PayoffResult is the outcome of a bounded month-by-month payoff run.
// Viable is false when the payment never gets ahead of the interest or the
// balance survives the simulation horizon.
type PayoffResult struct {
	Payment       float64 `json:"payment"`
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	TotalPaid     float64 `json:"total_paid"`
	Viable        bool    `json:"viable"`
}

type PayoffComparison struct {
	Baseline      PayoffResult `json:"baseline"`
	Accelerated   PayoffResult `json:"accelerated"`
	MonthsSaved   int          `json:"months_saved"`
	InterestSaved float64      `json:"interest_saved"`
}
