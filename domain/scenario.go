package domain

// Scheme is a mortgage repayment scheme.
type Scheme string

const (
	SchemeInterestOnly Scheme = "interest_only"
	SchemeLinear       Scheme = "linear"
	SchemeAnnuity      Scheme = "annuity"
)

// Schemes lists every supported repayment scheme in display order.
var Schemes = []Scheme{SchemeInterestOnly, SchemeLinear, SchemeAnnuity}

// RevenueModel selects how yearly revenue is derived.
type RevenueModel string

const (
	RevenueNightly RevenueModel = "nightly"
	RevenueMonthly RevenueModel = "monthly"
)

// Tranche is one part of a blended mortgage. Fraction is a percentage of the
// total loan; InterestRate is a nominal annual percentage.
type Tranche struct {
	Fraction     float64 `json:"fraction" yaml:"fraction"`
	Scheme       Scheme  `json:"scheme" yaml:"scheme"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	TermYears    int     `json:"term_years" yaml:"term_years"`
}

// Financing describes how the purchase is funded. When Financed is false the
// remaining fields are ignored.
type Financing struct {
	Financed    bool      `json:"financed" yaml:"financed"`
	LoanToValue float64   `json:"loan_to_value" yaml:"loan_to_value"`
	Tranches    []Tranche `json:"tranches" yaml:"tranches"`
}

// Operating holds the rental and running cost assumptions. Percentages are
// expressed as 0..100.
type Operating struct {
	RevenueModel RevenueModel `json:"revenue_model" yaml:"revenue_model"`

	// nightly model
	NightlyRate      float64 `json:"nightly_rate" yaml:"nightly_rate"`
	NightsPerBooking float64 `json:"nights_per_booking" yaml:"nights_per_booking"`
	CleaningFee      float64 `json:"cleaning_fee" yaml:"cleaning_fee"`
	TouristTax       float64 `json:"tourist_tax" yaml:"tourist_tax"`
	GuestsPerBooking float64 `json:"guests_per_booking" yaml:"guests_per_booking"`

	// monthly model
	MonthlyRent float64 `json:"monthly_rent" yaml:"monthly_rent"`

	Occupancy      float64 `json:"occupancy" yaml:"occupancy"`
	AssociationFee float64 `json:"association_fee" yaml:"association_fee"`
	ManagementFee  float64 `json:"management_fee" yaml:"management_fee"`
	Maintenance    float64 `json:"maintenance" yaml:"maintenance"`
	EnergyMonthly  float64 `json:"energy_monthly" yaml:"energy_monthly"`
	GroundLease    float64 `json:"ground_lease" yaml:"ground_lease"`
	Indexation     float64 `json:"indexation" yaml:"indexation"`
}

// ScenarioInput is everything a single projection run needs. It is treated as
// read-only by the engine.
type ScenarioInput struct {
	PurchasePrice    float64 `json:"purchase_price" yaml:"purchase_price"`
	AcquisitionCosts float64 `json:"acquisition_costs" yaml:"acquisition_costs"`
	// AppraisedValue, when positive, replaces the purchase price as the
	// loan-to-value basis.
	AppraisedValue float64 `json:"appraised_value,omitempty" yaml:"appraised_value"`

	Financing Financing `json:"financing" yaml:"financing"`
	Operating Operating `json:"operating" yaml:"operating"`
}

// TotalInvestment is the purchase price plus acquisition costs.
func (s ScenarioInput) TotalInvestment() float64 {
	return s.PurchasePrice + s.AcquisitionCosts
}

// LoanAmount is the total loan drawn, zero for all-cash purchases.
func (s ScenarioInput) LoanAmount() float64 {
	if !s.Financing.Financed {
		return 0
	}
	basis := s.PurchasePrice
	if s.AppraisedValue > 0 {
		basis = s.AppraisedValue
	}
	return basis * s.Financing.LoanToValue / 100
}
