package service

import (
	"math"

	"calc-suite/domain"
)

// SimulatePayoff pays a fixed amount against a balance each month, accruing
// interest first, for at most MaxSimulationMonths. The run stops early when
// the balance is cleared. A payment that does not get ahead of the month's
// interest makes no progress and the scenario is reported as not viable
// rather than looping; so is a balance still outstanding at the horizon.
// Non-viable runs report the months and interest of the whole horizon.
func SimulatePayoff(balance, annualRatePercent, payment float64) domain.PayoffResult {
	balance = nonNegative(balance)
	payment = nonNegative(payment)
	result := domain.PayoffResult{Payment: roundTo2Decimals(payment)}
	if balance <= BalanceTolerance {
		result.Viable = true
		return result
	}

	r := monthlyRate(annualRatePercent)
	var totalInterest, totalPaid float64
	for month := 1; month <= MaxSimulationMonths; month++ {
		interest := balance * r
		if payment <= interest {
			// The balance can no longer shrink; charge the remaining
			// horizon at the current balance.
			remaining := float64(MaxSimulationMonths - month + 1)
			return notViable(result, totalInterest+interest*remaining, totalPaid+payment*remaining)
		}
		paid := math.Min(payment, balance+interest)
		balance -= paid - interest
		totalInterest += interest
		totalPaid += paid
		if balance <= BalanceTolerance {
			result.Months = month
			result.TotalInterest = roundTo2Decimals(totalInterest)
			result.TotalPaid = roundTo2Decimals(totalPaid)
			result.Viable = true
			return result
		}
	}
	return notViable(result, totalInterest, totalPaid)
}

func notViable(result domain.PayoffResult, interest, paid float64) domain.PayoffResult {
	result.Months = MaxSimulationMonths
	result.TotalInterest = roundTo2Decimals(interest)
	result.TotalPaid = roundTo2Decimals(paid)
	result.Viable = false
	return result
}

// ComparePayoff runs the baseline payment and the payment plus extra side by
// side. Savings are only reported when both runs are viable and are never
// negative.
func ComparePayoff(balance, annualRatePercent, payment, extra float64) domain.PayoffComparison {
	baseline := SimulatePayoff(balance, annualRatePercent, payment)
	accelerated := SimulatePayoff(balance, annualRatePercent, payment+nonNegative(extra))
	comparison := domain.PayoffComparison{Baseline: baseline, Accelerated: accelerated}
	if baseline.Viable && accelerated.Viable {
		comparison.MonthsSaved = max(0, baseline.Months-accelerated.Months)
		comparison.InterestSaved = roundTo2Decimals(nonNegative(baseline.TotalInterest - accelerated.TotalInterest))
	}
	return comparison
}
