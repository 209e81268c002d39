package report

import (
	"github.com/shopspring/decimal"

	"rental-yield/domain"
)

// CumulativeSeries returns (year, cumulative cash flow) pairs.
func CumulativeSeries(ledger domain.Ledger) []domain.Point {
	points := make([]domain.Point, len(ledger))
	for i, row := range ledger {
		points[i] = domain.Point{Year: row.Year, Value: row.CumulativeCashFlow}
	}
	return points
}

// DebtSeries returns (year, remaining debt) pairs.
func DebtSeries(ledger domain.Ledger) []domain.Point {
	points := make([]domain.Point, len(ledger))
	for i, row := range ledger {
		points[i] = domain.Point{Year: row.Year, Value: row.RemainingDebt}
	}
	return points
}

// CostBreakdown splits the costs of row into labelled shares of the total
// costs, mortgage service included. Shares are percentages.
func CostBreakdown(row domain.ProjectionRow) []domain.Slice {
	slices := []domain.Slice{
		{Label: "Association fee", Value: row.AssociationFee},
		{Label: "Cleaning", Value: row.Cleaning},
		{Label: "Management", Value: row.Management},
		{Label: "Tourist tax", Value: row.TouristTax},
		{Label: "Maintenance", Value: row.Maintenance},
		{Label: "Energy", Value: row.Energy},
		{Label: "Ground lease", Value: row.GroundLease},
		{Label: "Mortgage interest", Value: row.MortgageInterest},
		{Label: "Principal repayment", Value: row.PrincipalRepayment},
	}
	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	if total == 0 {
		return slices
	}
	for i := range slices {
		slices[i].Share = slices[i].Value / total * 100
	}
	return slices
}

// Charts assembles every chart series for a ledger.
func Charts(ledger domain.Ledger) domain.ChartData {
	data := domain.ChartData{
		Cumulative:    CumulativeSeries(ledger),
		RemainingDebt: DebtSeries(ledger),
	}
	if len(ledger) > 0 {
		data.CostBreakdown = CostBreakdown(ledger[0])
	}
	return data
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
