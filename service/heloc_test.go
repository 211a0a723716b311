package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-suite/domain"
)

func TestDeriveHELOC_ReferenceScenario(t *testing.T) {
	r := DeriveHELOC(domain.HELOCInput{
		HelocAmount:     "250000",
		InterestRate:    "8.5",
		DrawYears:       "10",
		RepayYears:      "20",
		MonthlyIncome:   "8000",
		MonthlyExpenses: "5000",
	})

	assert.Equal(t, 1770.83, r.DrawPayment)
	assert.Equal(t, 2169.56, r.RepaymentPayment)
	assert.Equal(t, 120, r.DrawMonths)
	assert.Equal(t, 240, r.RepayMonths)
	assert.Equal(t, 212500.0, r.DrawPeriodInterest)
	assert.InDelta(t, 270693.94, r.RepaymentPeriodInterest, 0.02)
	assert.InDelta(t, 483193.94, r.TraditionalInterest, 0.02)
	assert.Equal(t, 360, r.TraditionalMonths)

	assert.Equal(t, 3000.0, r.Velocity.MonthlyCashFlow)
	assert.True(t, r.Velocity.Viable)
	assert.Equal(t, 124, r.Velocity.Months)
	assert.InDelta(t, 121479.84, r.Velocity.TotalInterest, 0.02)
	assert.Equal(t, 236, r.MonthsSaved)
	assert.InDelta(t, 361714.10, r.InterestSaved, 0.04)
	assert.Nil(t, r.ExtraPayment)
}

func TestDeriveHELOC_VelocityNotViable(t *testing.T) {
	for name, in := range map[string]domain.HELOCInput{
		"cash flow below interest": {HelocAmount: "250000", InterestRate: "8.5", RepayYears: "20", MonthlyIncome: "3000", MonthlyExpenses: "2900"},
		"negative cash flow":       {HelocAmount: "250000", InterestRate: "8.5", RepayYears: "20", MonthlyIncome: "3000", MonthlyExpenses: "4000"},
		"no income":                {HelocAmount: "250000", InterestRate: "8.5", RepayYears: "20"},
	} {
		t.Run(name, func(t *testing.T) {
			r := DeriveHELOC(in)
			assert.False(t, r.Velocity.Viable)
			assert.Equal(t, MaxSimulationMonths, r.Velocity.Months)
			assert.Zero(t, r.InterestSaved)
			assert.Zero(t, r.MonthsSaved)
			assert.Positive(t, r.Velocity.TotalInterest)
			assert.GreaterOrEqual(t, r.Velocity.MonthlyCashFlow, 0.0)
		})
	}
}

func TestDeriveHELOC_DeficitCostsAtLeastThinSurplus(t *testing.T) {
	base := domain.HELOCInput{HelocAmount: "250000", InterestRate: "8.5", RepayYears: "20", MonthlyIncome: "5000"}

	thin := base
	thin.MonthlyExpenses = "4990"
	deficit := base
	deficit.MonthlyExpenses = "6000"

	surplus := DeriveHELOC(thin).Velocity
	shortfall := DeriveHELOC(deficit).Velocity

	assert.False(t, surplus.Viable)
	assert.False(t, shortfall.Viable)
	assert.Equal(t, 10.0, surplus.MonthlyCashFlow)
	assert.Zero(t, surplus.MonthlyShortfall)
	assert.Zero(t, shortfall.MonthlyCashFlow)
	assert.Equal(t, 1000.0, shortfall.MonthlyShortfall)
	assert.GreaterOrEqual(t, shortfall.TotalInterest, surplus.TotalInterest)
	// (250000 - 5000 + 3000) * 0.085/12 * 360
	assert.InDelta(t, 632400.0, shortfall.TotalInterest, 0.01)
}

func TestDeriveHELOC_ExtraPayment(t *testing.T) {
	r := DeriveHELOC(domain.HELOCInput{
		HelocAmount:  "50000",
		InterestRate: "9",
		RepayYears:   "10",
		ExtraPayment: "250",
	})
	require.NotNil(t, r.ExtraPayment)
	assert.True(t, r.ExtraPayment.Baseline.Viable)
	assert.LessOrEqual(t, r.ExtraPayment.Accelerated.Months, r.ExtraPayment.Baseline.Months)
	assert.Positive(t, r.ExtraPayment.InterestSaved)
}

func TestDeriveHELOC_Empty(t *testing.T) {
	r := DeriveHELOC(domain.HELOCInput{})
	assert.Zero(t, r.DrawPayment)
	assert.Zero(t, r.RepaymentPayment)
	assert.True(t, r.Velocity.Viable, "nothing owed")
}
