package service

import (
	"fmt"
	"math"
	"strings"

	"rental-yield/domain"
)

// AnnuityFidelity selects how annuity interest is split per year. A run uses
// exactly one fidelity for every annuity tranche.
type AnnuityFidelity string

const (
	// FidelityExact sums the interest part of the twelve monthly payments.
	FidelityExact AnnuityFidelity = "exact"
	// FidelityApproximate reproduces the year-level approximation
	// interest = amount * rate * (1 - j/term*0.8).
	FidelityApproximate AnnuityFidelity = "approximate"
)

// ParseFidelity maps a config value to a fidelity. Empty means exact.
func ParseFidelity(s string) (AnnuityFidelity, error) {
	switch AnnuityFidelity(strings.ToLower(strings.TrimSpace(s))) {
	case "", FidelityExact:
		return FidelityExact, nil
	case FidelityApproximate:
		return FidelityApproximate, nil
	}
	return "", fmt.Errorf("unknown annuity fidelity %q", s)
}

// roundTo2Decimals rounds a float64 to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment returns the fixed monthly payment that amortizes amount over
// termYears at annualRate percent.
func MonthlyPayment(amount, annualRate float64, termYears int) float64 {
	months := float64(termYears * MonthsPerYear)
	monthlyRate := annualRate / 100 / MonthsPerYear
	if monthlyRate == 0 {
		return amount / months
	}
	factor := math.Pow(1+monthlyRate, months)
	return amount * monthlyRate * factor / (factor - 1)
}

type trancheState struct {
	scheme   domain.Scheme
	rate     float64 // annual, fraction
	term     int
	amount   float64
	balance  float64
	payment  float64 // monthly, annuity only
	interest float64
	repaid   float64
}

// ValidateTranches checks the tranche configuration against the total loan.
// Zero-amount tranches are never rejected for their term.
func ValidateTranches(loan float64, tranches []domain.Tranche) error {
	for i, t := range tranches {
		if t.Fraction < 0 {
			return &domain.TrancheError{Index: i, Err: fmt.Errorf("%w: fraction %.2f%% is negative", domain.ErrInvalidAllocation, t.Fraction)}
		}
		switch t.Scheme {
		case domain.SchemeInterestOnly:
		case domain.SchemeLinear, domain.SchemeAnnuity:
			if loan*t.Fraction/100 != 0 && t.TermYears <= 0 {
				return &domain.TrancheError{Index: i, Err: fmt.Errorf("%w: %s tranche needs a positive term, got %d", domain.ErrInvalidTerm, t.Scheme, t.TermYears)}
			}
		default:
			return &domain.TrancheError{Index: i, Err: fmt.Errorf("%w: %q", domain.ErrUnknownScheme, t.Scheme)}
		}
	}
	return nil
}

// BuildDebtSchedule runs every tranche through HorizonYears and returns one
// entry per year. Balances never increase and are floored at zero; nothing
// forces the debt to be repaid by the horizon.
func BuildDebtSchedule(
	loan float64,
	tranches []domain.Tranche,
	fidelity AnnuityFidelity,
) (DebtSchedule, error) {
	if err := ValidateTranches(loan, tranches); err != nil {
		return nil, err
	}
	if fidelity == "" {
		fidelity = FidelityExact
	}

	states := make([]*trancheState, len(tranches))
	for i, t := range tranches {
		amount := loan * t.Fraction / 100
		st := &trancheState{
			scheme:  t.Scheme,
			rate:    t.InterestRate / 100,
			term:    t.TermYears,
			amount:  amount,
			balance: amount,
		}
		if t.Scheme == domain.SchemeAnnuity && amount != 0 {
			st.payment = MonthlyPayment(amount, t.InterestRate, t.TermYears)
		}
		states[i] = st
	}

	schedule := make(DebtSchedule, 0, HorizonYears)
	for j := 0; j < HorizonYears; j++ {
		year := domain.DebtServiceYear{
			Year:     j + 1,
			Balances: make([]float64, len(states)),
		}
		for i, st := range states {
			st.advance(j, fidelity)
			year.Interest += st.interest
			year.Principal += st.repaid
			year.Balances[i] = st.balance
			year.RemainingDebt += st.balance
		}
		schedule = append(schedule, year)
	}
	return schedule, nil
}

// advance moves the tranche through year j (0-indexed).
func (s *trancheState) advance(j int, fidelity AnnuityFidelity) {
	s.interest, s.repaid = 0, 0
	if s.amount == 0 {
		return
	}

	switch s.scheme {
	case domain.SchemeInterestOnly:
		s.interest = s.balance * s.rate

	case domain.SchemeLinear:
		if j >= s.term {
			return
		}
		s.repaid = s.amount / float64(s.term)
		if j == s.term-1 {
			s.repaid = s.balance
		}
		s.interest = (s.balance - s.repaid/2) * s.rate
		s.balance = math.Max(0, s.balance-s.repaid)
		if j == s.term-1 {
			s.balance = 0
		}

	case domain.SchemeAnnuity:
		if j >= s.term {
			return
		}
		if fidelity == FidelityApproximate {
			s.advanceApproximate(j)
			return
		}
		s.advanceExact(j)
	}
}

func (s *trancheState) advanceExact(j int) {
	monthlyRate := s.rate / MonthsPerYear
	for m := 0; m < MonthsPerYear; m++ {
		interest := s.balance * monthlyRate
		principal := s.payment - interest
		last := j == s.term-1 && m == MonthsPerYear-1
		if last || principal > s.balance {
			principal = s.balance
		}
		s.interest += interest
		s.repaid += principal
		s.balance -= principal
	}
	if s.balance < 0 {
		s.balance = 0
	}
}

func (s *trancheState) advanceApproximate(j int) {
	annual := s.payment * MonthsPerYear
	s.interest = s.amount * s.rate * (1 - float64(j)/float64(s.term)*approximateInterestDecay)
	s.repaid = annual - s.interest
	s.balance = math.Max(0, s.balance-s.repaid)
}

// DebtSchedule is the per-year mortgage series, year 1 first.
type DebtSchedule []domain.DebtServiceYear

// For returns the debt service of a 1-based year. Years outside the horizon
// yield a zero value.
func (d DebtSchedule) For(year int) domain.DebtServiceYear {
	if year < 1 || year > len(d) {
		return domain.DebtServiceYear{Year: year}
	}
	return d[year-1]
}

