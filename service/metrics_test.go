package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-yield/domain"
)

func TestSummarize_AllCash(t *testing.T) {
	input := holidayHome()
	first := ProjectLedger(input, nil)[0]

	m := Summarize(input, 0, first)
	assert.Equal(t, 200000.0, m.TotalInvestment)
	assert.Equal(t, 200000.0, m.Equity)
	assert.InDelta(t, 36266.4/175000*100, m.GrossYield, 1e-9)
	assert.InDelta(t, 7.18115, m.NetYield, 1e-6)
	assert.Equal(t, m.NetYield, m.CashOnCash)
	assert.False(t, m.EquityFallback)
}

func TestSummarize_Leveraged(t *testing.T) {
	input := holidayHome()
	row := domain.ProjectionRow{Revenue: 36266.4, NetCashFlow: 5000}

	m := Summarize(input, 131250, row)
	assert.Equal(t, 68750.0, m.Equity)
	assert.InDelta(t, 5000/68750.0*100, m.CashOnCash, 1e-9)
	assert.InDelta(t, 2.5, m.NetYield, 1e-9)
}

func TestSummarize_DegenerateEquityFallsBackToGrossYield(t *testing.T) {
	input := holidayHome()
	input.AcquisitionCosts = 0
	input = financed(input, 100,
		domain.Tranche{Fraction: 100, Scheme: domain.SchemeInterestOnly, InterestRate: 4.9},
	)

	result, err := Compute(input, FidelityExact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := result.Metrics
	assert.Equal(t, 0.0, m.Equity)
	assert.True(t, m.EquityFallback)
	assert.Equal(t, m.GrossYield, m.CashOnCash)
}

func TestAverageMonthly(t *testing.T) {
	ledger := domain.Ledger{
		{Revenue: 12000, TotalCosts: 6000, NetCashFlow: 6000},
		{Revenue: 24000, TotalCosts: 12000, NetCashFlow: 12000},
	}
	avg := AverageMonthly(ledger)
	assert.InDelta(t, 1500, avg.Revenue, 1e-9)
	assert.InDelta(t, 750, avg.TotalCosts, 1e-9)
	assert.InDelta(t, 750, avg.NetCashFlow, 1e-9)

	assert.Equal(t, domain.MonthlyAverages{}, AverageMonthly(nil))
}
