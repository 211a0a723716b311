package service

import (
	"strings"

	"calc-suite/domain"
	"calc-suite/reference"
)

// DeriveMortgage estimates the monthly cost and lifetime totals of a
// fixed-rate purchase mortgage.
func DeriveMortgage(input domain.MortgageInput) domain.MortgageResult {
	price := parseAmount(input.HomePrice, MaxMoneyAmount)
	rate := parseAmount(input.InterestRate, MaxInterestRate)
	months := parseWhole(input.LoanTermYears, MaxTermYears) * MonthsPerYear

	down := downPayment(price, input.DownPayment, input.DownPaymentMode)
	loan := price - down

	result := domain.MortgageResult{
		HomePrice:         roundTo2Decimals(price),
		DownPaymentAmount: roundTo2Decimals(down),
		LoanAmount:        roundTo2Decimals(loan),
	}
	var ltv float64
	if price > 0 {
		ltv = loan * 100 / price
		result.DownPaymentPercent = roundTo2Decimals(down / price * 100)
		result.LoanToValue = roundTo2Decimals(ltv)
	}

	schedule := Amortize(loan, rate, months, 0)
	result.MonthlyPrincipalInterest = schedule.MonthlyPayment
	result.TotalInterest = schedule.TotalInterest
	result.TotalOfPayments = schedule.TotalPaid
	result.TotalCost = roundTo2Decimals(down + schedule.TotalPaid)
	result.PayoffMonths = schedule.Months
	result.Schedule = schedule.Years

	result.PMIRate = reference.PMIRate(ltv)
	result.PMIRequired = result.PMIRate > 0 && loan > 0
	if result.PMIRequired {
		result.MonthlyPMI = roundTo2Decimals(loan * result.PMIRate / 100 / MonthsPerYear)
		payment := MonthlyPayment(loan, rate, months)
		result.PMIMonths = monthsUntilBalance(loan, rate, payment, price*reference.PMIRemovalLTV/100, months)
	}

	result.PropertyTaxRate = propertyTaxRate(input)
	result.MonthlyPropertyTax = roundTo2Decimals(price * result.PropertyTaxRate / 100 / MonthsPerYear)
	result.MonthlyInsurance = roundTo2Decimals(parseAmount(input.HomeInsuranceAnnual, MaxMoneyAmount) / MonthsPerYear)
	result.MonthlyHOA = roundTo2Decimals(parseAmount(input.HOAMonthly, MaxMoneyAmount))
	result.TotalMonthlyPayment = roundTo2Decimals(result.MonthlyPrincipalInterest +
		result.MonthlyPropertyTax +
		result.MonthlyInsurance +
		result.MonthlyPMI +
		result.MonthlyHOA)

	if extra := parseAmount(input.ExtraMonthlyPayment, MaxMoneyAmount); extra > 0 && schedule.Months > 0 {
		accelerated := Amortize(loan, rate, months, extra)
		result.ExtraPayment = &domain.PayoffComparison{
			Baseline: domain.PayoffResult{
				Payment:       schedule.MonthlyPayment,
				Months:        schedule.Months,
				TotalInterest: schedule.TotalInterest,
				TotalPaid:     schedule.TotalPaid,
				Viable:        true,
			},
			Accelerated: domain.PayoffResult{
				Payment:       roundTo2Decimals(schedule.MonthlyPayment + extra),
				Months:        accelerated.Months,
				TotalInterest: accelerated.TotalInterest,
				TotalPaid:     accelerated.TotalPaid,
				Viable:        true,
			},
			MonthsSaved:   max(0, schedule.Months-accelerated.Months),
			InterestSaved: roundTo2Decimals(nonNegative(schedule.TotalInterest - accelerated.TotalInterest)),
		}
	}

	return result
}

// downPayment resolves the down payment in currency, never more than the
// price. An unrecognised mode is read as a percentage.
func downPayment(price float64, raw string, mode domain.DownPaymentMode) float64 {
	value := nonNegative(ParseNumber(raw))
	if mode == domain.DownPaymentAmount {
		return clamp(value, 0, price)
	}
	return clamp(price*value/100, 0, price)
}

// propertyTaxRate prefers an explicit rate and falls back to the county
// table; unknown counties carry no tax.
func propertyTaxRate(input domain.MortgageInput) float64 {
	if strings.TrimSpace(input.PropertyTaxRate) != "" {
		return parseAmount(input.PropertyTaxRate, MaxPercentRate)
	}
	return reference.CountyTaxRate(input.County)
}
