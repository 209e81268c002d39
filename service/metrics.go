package service

import "rental-yield/domain"

// Summarize derives the headline yields from the first ledger row. When the
// equity invested is not positive, cash-on-cash falls back to the gross yield.
func Summarize(input domain.ScenarioInput, loan float64, first domain.ProjectionRow) domain.Metrics {
	m := domain.Metrics{
		TotalInvestment: input.TotalInvestment(),
		LoanAmount:      loan,
	}
	m.Equity = m.TotalInvestment - loan

	if input.PurchasePrice != 0 {
		m.GrossYield = first.Revenue / input.PurchasePrice * 100
	}
	if m.TotalInvestment != 0 {
		m.NetYield = first.NetCashFlow / m.TotalInvestment * 100
	}
	if m.Equity > 0 {
		m.CashOnCash = first.NetCashFlow / m.Equity * 100
	} else {
		m.CashOnCash = m.GrossYield
		m.EquityFallback = true
	}
	return m
}

// AverageMonthly returns the ledger means per month.
func AverageMonthly(ledger domain.Ledger) domain.MonthlyAverages {
	if len(ledger) == 0 {
		return domain.MonthlyAverages{}
	}
	var avg domain.MonthlyAverages
	for _, row := range ledger {
		avg.Revenue += row.Revenue
		avg.TotalCosts += row.TotalCosts
		avg.NetCashFlow += row.NetCashFlow
	}
	months := float64(len(ledger) * MonthsPerYear)
	avg.Revenue /= months
	avg.TotalCosts /= months
	avg.NetCashFlow /= months
	return avg
}
