package service

import (
	"calc-suite/domain"
)

// DeriveHELOC compares paying a home equity line of credit on its contract
// schedule (interest-only draw period, then amortized repayment) with
// velocity banking, where the whole paycheck is deposited against the line
// and expenses are drawn from it through the month.
func DeriveHELOC(input domain.HELOCInput) domain.HELOCResult {
	balance := parseAmount(input.HelocAmount, MaxMoneyAmount)
	rate := parseAmount(input.InterestRate, MaxInterestRate)
	drawMonths := parseWhole(input.DrawYears, MaxTermYears) * MonthsPerYear
	repayMonths := parseWhole(input.RepayYears, MaxTermYears) * MonthsPerYear
	income := parseAmount(input.MonthlyIncome, MaxMoneyAmount)
	expenses := parseAmount(input.MonthlyExpenses, MaxMoneyAmount)

	drawPayment := balance * monthlyRate(rate)
	repayment := Amortize(balance, rate, repayMonths, 0)

	result := domain.HELOCResult{
		Balance:                 roundTo2Decimals(balance),
		DrawMonths:              drawMonths,
		RepayMonths:             repayMonths,
		DrawPayment:             roundTo2Decimals(drawPayment),
		RepaymentPayment:        repayment.MonthlyPayment,
		DrawPeriodInterest:      roundTo2Decimals(drawPayment * float64(drawMonths)),
		RepaymentPeriodInterest: repayment.TotalInterest,
		TraditionalMonths:       drawMonths + repayment.Months,
	}
	result.TraditionalInterest = roundTo2Decimals(result.DrawPeriodInterest + result.RepaymentPeriodInterest)

	result.Velocity = simulateVelocity(balance, rate, income, expenses)
	if result.Velocity.Viable {
		result.InterestSaved = roundTo2Decimals(nonNegative(result.TraditionalInterest - result.Velocity.TotalInterest))
		result.MonthsSaved = max(0, result.TraditionalMonths-result.Velocity.Months)
	}

	if extra := parseAmount(input.ExtraPayment, MaxMoneyAmount); extra > 0 && repayment.MonthlyPayment > 0 {
		comparison := ComparePayoff(balance, rate, repayment.MonthlyPayment, extra)
		result.ExtraPayment = &comparison
	}

	return result
}

// simulateVelocity models one deposit of income at the start of each month
// and expenses drawn evenly across it, so the average daily balance is the
// post-deposit balance plus half the month's expenses. The run is not viable
// when the monthly cash flow cannot beat the interest it accrues; it then
// runs the full horizon and is charged the interest of every month left.
func simulateVelocity(balance, annualRatePercent, income, expenses float64) domain.VelocityResult {
	cashFlow := income - expenses
	result := domain.VelocityResult{
		MonthlyCashFlow:  roundTo2Decimals(nonNegative(cashFlow)),
		MonthlyShortfall: roundTo2Decimals(nonNegative(-cashFlow)),
	}
	if balance <= BalanceTolerance {
		result.Viable = true
		return result
	}

	r := monthlyRate(annualRatePercent)
	if cashFlow <= 0 {
		averageBalance := nonNegative(balance - income + expenses/2)
		result.Months = MaxSimulationMonths
		result.TotalInterest = roundTo2Decimals(averageBalance * r * MaxSimulationMonths)
		return result
	}

	var totalInterest float64
	for month := 1; month <= MaxSimulationMonths; month++ {
		averageBalance := nonNegative(balance - income + expenses/2)
		interest := averageBalance * r
		if interest >= cashFlow {
			result.Months = MaxSimulationMonths
			result.TotalInterest = roundTo2Decimals(totalInterest + interest*float64(MaxSimulationMonths-month+1))
			return result
		}
		totalInterest += interest
		balance = balance - cashFlow + interest
		if balance <= BalanceTolerance {
			result.Months = month
			result.TotalInterest = roundTo2Decimals(totalInterest)
			result.Viable = true
			return result
		}
	}

	result.Months = MaxSimulationMonths
	result.TotalInterest = roundTo2Decimals(totalInterest)
	return result
}
