package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-suite/domain"
)

func TestDeriveMortgage_WithPMIAndCountyTax(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:           "$300,000",
		DownPayment:         "10",
		DownPaymentMode:     domain.DownPaymentPercent,
		InterestRate:        "7",
		LoanTermYears:       "30",
		County:              "Harris County",
		HomeInsuranceAnnual: "1800",
		HOAMonthly:          "50",
	})

	assert.Equal(t, 30000.0, r.DownPaymentAmount)
	assert.Equal(t, 10.0, r.DownPaymentPercent)
	assert.Equal(t, 270000.0, r.LoanAmount)
	assert.Equal(t, 90.0, r.LoanToValue)

	assert.True(t, r.PMIRequired)
	assert.Equal(t, 0.52, r.PMIRate)
	assert.Equal(t, 117.0, r.MonthlyPMI)
	assert.Equal(t, 115, r.PMIMonths)

	assert.Equal(t, 2.03, r.PropertyTaxRate)
	assert.Equal(t, 507.5, r.MonthlyPropertyTax)
	assert.Equal(t, 150.0, r.MonthlyInsurance)
	assert.Equal(t, 50.0, r.MonthlyHOA)
	assert.Equal(t, 1796.32, r.MonthlyPrincipalInterest)
	assert.Equal(t, 2620.82, r.TotalMonthlyPayment)

	assert.Equal(t, 360, r.PayoffMonths)
	assert.Len(t, r.Schedule, 30)
	assert.InDelta(t, 376674.03, r.TotalInterest, 0.02)
	assert.InDelta(t, 30000+646674.03, r.TotalCost, 0.02)
	assert.Nil(t, r.ExtraPayment)
}

func TestDeriveMortgage_NoPMIAtTwentyPercentDown(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:       "400000",
		DownPayment:     "80000",
		DownPaymentMode: domain.DownPaymentAmount,
		InterestRate:    "6.5",
		LoanTermYears:   "30",
	})
	assert.Equal(t, 20.0, r.DownPaymentPercent)
	assert.False(t, r.PMIRequired)
	assert.Zero(t, r.MonthlyPMI)
	assert.Zero(t, r.PMIMonths)
	assert.Equal(t, 2022.62, r.MonthlyPrincipalInterest)
	assert.Zero(t, r.PropertyTaxRate, "no county and no explicit rate")
}

func TestDeriveMortgage_PMIUsesUnroundedLoanToValue(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:       "100000",
		DownPayment:     "19996",
		DownPaymentMode: domain.DownPaymentAmount,
		InterestRate:    "6",
		LoanTermYears:   "30",
	})
	assert.Equal(t, 80.0, r.LoanToValue, "displayed to the cent")
	assert.True(t, r.PMIRequired, "80.004% is above the threshold")
	assert.Equal(t, 0.32, r.PMIRate)
}

func TestDeriveMortgage_ExplicitTaxRateOverridesCounty(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:       "240000",
		County:          "travis",
		PropertyTaxRate: "1.5%",
	})
	assert.Equal(t, 1.5, r.PropertyTaxRate)
	assert.Equal(t, 300.0, r.MonthlyPropertyTax)
}

func TestDeriveMortgage_DownPaymentClampedToPrice(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:       "100000",
		DownPayment:     "250000",
		DownPaymentMode: domain.DownPaymentAmount,
		InterestRate:    "5",
		LoanTermYears:   "15",
	})
	assert.Equal(t, 100000.0, r.DownPaymentAmount)
	assert.Zero(t, r.LoanAmount)
	assert.Zero(t, r.MonthlyPrincipalInterest)
	assert.False(t, r.PMIRequired)
}

func TestDeriveMortgage_ExtraPayment(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:           "300000",
		DownPayment:         "10",
		InterestRate:        "7",
		LoanTermYears:       "30",
		ExtraMonthlyPayment: "200",
	})
	require.NotNil(t, r.ExtraPayment)
	assert.Equal(t, 268, r.ExtraPayment.Accelerated.Months)
	assert.Equal(t, 92, r.ExtraPayment.MonthsSaved)
	assert.InDelta(t, 112729.54, r.ExtraPayment.InterestSaved, 0.03)
	assert.Equal(t, 1996.32, r.ExtraPayment.Accelerated.Payment)
}

func TestDeriveMortgage_ZeroRate(t *testing.T) {
	r := DeriveMortgage(domain.MortgageInput{
		HomePrice:     "360000",
		DownPayment:   "0",
		InterestRate:  "0",
		LoanTermYears: "30",
	})
	assert.Equal(t, 1000.0, r.MonthlyPrincipalInterest)
	assert.Zero(t, r.TotalInterest)
}
