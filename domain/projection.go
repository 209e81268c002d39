package domain

// DebtServiceYear is the mortgage outcome of one projection year summed over
// all tranches. Balances holds each tranche's balance at year end.
type DebtServiceYear struct {
	Year          int       `json:"year"`
	Interest      float64   `json:"interest"`
	Principal     float64   `json:"principal"`
	Balances      []float64 `json:"balances"`
	RemainingDebt float64   `json:"remaining_debt"`
}

// ProjectionRow is one year of the ledger.
type ProjectionRow struct {
	Year               int     `json:"year"`
	Revenue            float64 `json:"revenue"`
	AssociationFee     float64 `json:"association_fee"`
	Cleaning           float64 `json:"cleaning"`
	Management         float64 `json:"management"`
	TouristTax         float64 `json:"tourist_tax"`
	Maintenance        float64 `json:"maintenance"`
	Energy             float64 `json:"energy"`
	GroundLease        float64 `json:"ground_lease"`
	MortgageInterest   float64 `json:"mortgage_interest"`
	PrincipalRepayment float64 `json:"principal_repayment"`
	TotalCosts         float64 `json:"total_costs"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	RemainingDebt      float64 `json:"remaining_debt"`
}

// OperatingCosts sums the cost line items, excluding mortgage service.
func (r ProjectionRow) OperatingCosts() float64 {
	return r.AssociationFee + r.Cleaning + r.Management + r.TouristTax +
		r.Maintenance + r.Energy + r.GroundLease
}

// Ledger is the chronological list of projection rows, year 1 first.
type Ledger []ProjectionRow

// Metrics are the headline yield figures, all in percent.
type Metrics struct {
	GrossYield      float64 `json:"gross_yield"`
	NetYield        float64 `json:"net_yield"`
	CashOnCash      float64 `json:"cash_on_cash"`
	TotalInvestment float64 `json:"total_investment"`
	LoanAmount      float64 `json:"loan_amount"`
	Equity          float64 `json:"equity"`
	// EquityFallback is set when equity was not positive and CashOnCash
	// carries the gross yield instead.
	EquityFallback bool `json:"equity_fallback"`
}

// MonthlyAverages are 30-year means expressed per month.
type MonthlyAverages struct {
	Revenue     float64 `json:"revenue"`
	TotalCosts  float64 `json:"total_costs"`
	NetCashFlow float64 `json:"net_cash_flow"`
}

type ProjectionResult struct {
	Ledger          Ledger          `json:"ledger"`
	Metrics         Metrics         `json:"metrics"`
	MonthlyAverages MonthlyAverages `json:"monthly_averages"`
	Fidelity        string          `json:"fidelity"`
}

// Point is a single (year, value) pair of a chart series.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Slice is one labelled share of a composition chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

type ChartData struct {
	Cumulative    []Point `json:"cumulative"`
	RemainingDebt []Point `json:"remaining_debt"`
	CostBreakdown []Slice `json:"cost_breakdown"`
}

// SchemeOutcome summarises a scenario run under one repayment scheme.
type SchemeOutcome struct {
	Scheme             Scheme  `json:"scheme"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	TotalInterest      float64 `json:"total_interest"`
	CashOnCash         float64 `json:"cash_on_cash"`
	FinalDebt          float64 `json:"final_debt"`
	Error              string  `json:"error,omitempty"`
}

type SchemeComparison struct {
	Recommended Scheme          `json:"recommended"`
	Outcomes    []SchemeOutcome `json:"outcomes"`
}
