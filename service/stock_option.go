package service

import (
	"math"

	"calc-suite/domain"
)

// DeriveStockOption values an employee option grant: how much has vested,
// what exercising costs, and what is left after tax at a given exit price.
func DeriveStockOption(input domain.StockOptionInput) domain.StockOptionResult {
	granted := math.Floor(parseAmount(input.OptionsGranted, MaxOptionCount))
	strike := parseAmount(input.StrikePrice, MaxMoneyAmount)
	current := parseAmount(input.CurrentPrice, MaxMoneyAmount)
	exit := parseAmount(input.ExitPrice, MaxMoneyAmount)
	ordinaryRate := parseAmount(input.OrdinaryTaxRate, MaxPercentRate) / 100
	gainsRate := parseAmount(input.CapitalGainsTaxRate, MaxPercentRate) / 100

	optionType := input.OptionType
	if optionType != domain.OptionNSO {
		optionType = domain.OptionISO
	}

	fraction := vestedFraction(
		parseWhole(input.VestingYears, MaxTermYears)*MonthsPerYear,
		parseWhole(input.CliffMonths, MaxTermYears*MonthsPerYear),
		parseWhole(input.MonthsSinceGrant, MaxTermYears*MonthsPerYear),
	)
	vested := math.Floor(granted * fraction)

	spread := nonNegative(current - strike)
	exitGain := nonNegative(exit - strike)

	result := domain.StockOptionResult{
		OptionType:      optionType,
		VestedOptions:   vested,
		UnvestedOptions: granted - vested,
		ExerciseCost:    roundTo2Decimals(vested * strike),
		SpreadPerShare:  roundTo2Decimals(spread),
		IntrinsicValue:  roundTo2Decimals(vested * spread),
		ExitValue:       roundTo2Decimals(vested * exit),
		GrossProfit:     roundTo2Decimals(vested * exitGain),
		InTheMoney:      current > strike,
	}
	if granted > 0 {
		result.VestedPercent = roundTo2Decimals(vested / granted * 100)
	}

	switch optionType {
	case domain.OptionNSO:
		// The spread is ordinary income at exercise; only growth after
		// exercise is a capital gain.
		result.TaxAtExercise = roundTo2Decimals(vested * spread * ordinaryRate)
		result.TaxAtSale = roundTo2Decimals(vested * nonNegative(exit-math.Max(current, strike)) * gainsRate)
		result.BreakEvenPrice = roundTo2Decimals(strike + spread*ordinaryRate)
	default:
		// Qualifying ISO disposition: no regular tax at exercise, the whole
		// gain over strike is a capital gain. The spread may still trigger AMT.
		result.AMTExposure = roundTo2Decimals(vested * spread * AMTRate / 100)
		result.TaxAtSale = roundTo2Decimals(vested * exitGain * gainsRate)
		result.BreakEvenPrice = roundTo2Decimals(strike)
	}

	net := vested*exit - vested*strike - result.TaxAtExercise - result.TaxAtSale
	result.NetProfit = roundTo2Decimals(nonNegative(net))
	if cost := vested * strike; cost > 0 {
		result.ReturnMultiple = roundTo2Decimals(vested * exit / cost)
	}

	return result
}

// vestedFraction applies a cliff followed by linear monthly vesting. A
// schedule with no vesting period is fully vested at grant.
func vestedFraction(vestingMonths, cliffMonths, elapsed int) float64 {
	if vestingMonths <= 0 {
		return 1
	}
	if elapsed < cliffMonths {
		return 0
	}
	return math.Min(1, float64(elapsed)/float64(vestingMonths))
}
