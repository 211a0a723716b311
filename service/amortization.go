package service

import (
	"math"

	"calc-suite/domain"
)

// monthlyRate converts an annual percentage rate into a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / MonthsPerYear
}

// MonthlyPayment returns the level payment that retires principal over the
// given number of months at a fixed annual rate. A zero rate spreads the
// principal evenly, as does a rate too small to register; no months or no
// principal means no payment.
func MonthlyPayment(principal, annualRatePercent float64, months int) float64 {
	if months <= 0 || principal <= 0 {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	n := float64(months)
	if r <= 0 {
		return principal / n
	}
	// (1+r)^n - 1 without cancellation; for tiny r, 1+r rounds to 1.
	growthLessOne := math.Expm1(n * math.Log1p(r))
	if growthLessOne <= 0 || math.IsInf(growthLessOne, 0) || math.IsNaN(growthLessOne) {
		return principal / n
	}
	payment := principal * r * (growthLessOne + 1) / growthLessOne
	if math.IsInf(payment, 0) || math.IsNaN(payment) {
		return principal / n
	}
	return payment
}

// Amortize walks a fixed-rate loan month by month, applying each payment to
// interest first and principal second, and rolls the months into yearly
// summaries. extraMonthly is added to every scheduled payment. The final
// month retires whatever balance is left so the principal paid always sums
// to the amount borrowed.
func Amortize(principal, annualRatePercent float64, months int, extraMonthly float64) domain.AmortizationSchedule {
	principal = nonNegative(principal)
	extraMonthly = nonNegative(extraMonthly)
	if months > MaxAmortizationMonths {
		months = MaxAmortizationMonths
	}

	payment := MonthlyPayment(principal, annualRatePercent, months)
	schedule := domain.AmortizationSchedule{
		MonthlyPayment: roundTo2Decimals(payment),
		Years:          []domain.AmortizationYear{},
	}
	if payment <= 0 {
		return schedule
	}

	r := monthlyRate(annualRatePercent)
	balance := principal
	var year domain.AmortizationYear
	var totalPrincipal, totalInterest float64

	month := 0
	for month < months && balance > 0 {
		month++
		interest := balance * r
		principalPaid := payment + extraMonthly - interest
		if principalPaid > balance || month == months {
			principalPaid = balance
		}
		balance -= principalPaid

		year.PrincipalPaid += principalPaid
		year.InterestPaid += interest
		totalPrincipal += principalPaid
		totalInterest += interest

		if month%MonthsPerYear == 0 || balance <= 0 || month == months {
			year.Year = (month-1)/MonthsPerYear + 1
			year.EndingBalance = balance
			schedule.Years = append(schedule.Years, roundYear(year))
			year = domain.AmortizationYear{}
		}
	}

	schedule.Months = month
	schedule.TotalPrincipal = roundTo2Decimals(totalPrincipal)
	schedule.TotalInterest = roundTo2Decimals(totalInterest)
	schedule.TotalPaid = roundTo2Decimals(totalPrincipal + totalInterest)
	return schedule
}

func roundYear(y domain.AmortizationYear) domain.AmortizationYear {
	return domain.AmortizationYear{
		Year:          y.Year,
		PrincipalPaid: roundTo2Decimals(y.PrincipalPaid),
		InterestPaid:  roundTo2Decimals(y.InterestPaid),
		EndingBalance: roundTo2Decimals(nonNegative(y.EndingBalance)),
	}
}

// monthsUntilBalance counts the scheduled months until the balance of an
// amortizing loan first falls to target or below. It returns 0 when the
// balance already starts there.
func monthsUntilBalance(principal, annualRatePercent, payment, target float64, months int) int {
	if principal <= target {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	balance := principal
	for month := 1; month <= months; month++ {
		balance -= payment - balance*r
		if balance <= target {
			return month
		}
	}
	return months
}
