package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"42", 42},
		{" 1,234.50 ", 1234.5},
		{"$250,000", 250000},
		{"6.5%", 6.5},
		{"-$20", -20},
		{"1_000", 1000},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
		{"--5", 0},
		{"-$-5", 0},
		{"-+5", 0},
		{"$-5", -5},
		{"+5", 5},
	}
	for _, tt := range tests {
		got := ParseNumber(tt.raw)
		assert.Equal(t, tt.want, got, "ParseNumber(%q)", tt.raw)
		assert.False(t, math.IsNaN(got))
	}
}

func TestParseAmountAndWhole(t *testing.T) {
	assert.Equal(t, 0.0, parseAmount("-500", MaxMoneyAmount))
	assert.Equal(t, MaxInterestRate, parseAmount("250", MaxInterestRate))
	assert.Equal(t, 30, parseWhole("30.9", MaxTermYears))
	assert.Equal(t, 0, parseWhole("-3", MaxTermYears))
	assert.Equal(t, MaxTermYears, parseWhole("9999", MaxTermYears))
}

func TestRoundTo2Decimals(t *testing.T) {
	assert.Equal(t, 1770.83, roundTo2Decimals(1770.8333))
	assert.Equal(t, 0.0, roundTo2Decimals(0.004))
	assert.Equal(t, 2.5, roundTo2Decimals(2.4999999))
}
