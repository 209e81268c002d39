// Package report turns a projection ledger into table rows, export files
// and chart series.
package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"rental-yield/domain"
)

// Columns is the stable export column order.
var Columns = []string{
	"Year",
	"Revenue",
	"Association fee",
	"Cleaning",
	"Management",
	"Tourist tax",
	"Maintenance",
	"Energy",
	"Ground lease",
	"Mortgage interest",
	"Principal repayment",
	"Total costs",
	"Net cash flow",
	"Cumulative cash flow",
	"Remaining debt",
}

// Values returns the numeric fields of row in Columns order.
func Values(row domain.ProjectionRow) []float64 {
	return []float64{
		float64(row.Year),
		row.Revenue,
		row.AssociationFee,
		row.Cleaning,
		row.Management,
		row.TouristTax,
		row.Maintenance,
		row.Energy,
		row.GroundLease,
		row.MortgageInterest,
		row.PrincipalRepayment,
		row.TotalCosts,
		row.NetCashFlow,
		row.CumulativeCashFlow,
		row.RemainingDebt,
	}
}

// FormatCurrency renders v rounded to whole units with thousands separators,
// e.g. "€36,266".
func FormatCurrency(v float64, symbol string) string {
	rounded := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + groupThousands(rounded.String())
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatRow renders row in Columns order for display, with the year as a
// plain number and every other field as currency.
func FormatRow(row domain.ProjectionRow, symbol string) []string {
	values := Values(row)
	out := make([]string, len(values))
	out[0] = strconv.Itoa(row.Year)
	for i := 1; i < len(values); i++ {
		out[i] = FormatCurrency(values[i], symbol)
	}
	return out
}
