package service

const (
	MonthsPerYear = 12

	MaxAmortizationMonths = 600 // 50 years
	MaxSimulationMonths   = 360 // payoff and velocity simulations stop here
	BalanceTolerance      = 0.01

	// Upper bounds applied to parsed form values so a stray keystroke cannot
	// push arithmetic into overflow.
	MaxMoneyAmount   = 1_000_000_000.0
	MaxInterestRate  = 100.0
	MaxTermYears     = 50
	MaxMeasurement   = 1_000.0
	MaxOptionCount   = 1_000_000_000.0
	MaxCountedYears  = 60
	MaxPercentRate   = 100.0
	MaxServingsCount = 10_000.0

	// AMTRate estimates alternative minimum tax exposure on an ISO spread.
	AMTRate = 28.0

	PentameterSyllables = 10
)
