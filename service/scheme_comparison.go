package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"rental-yield/domain"
)

type SchemeComparisonService struct {
	projections *ProjectionService
}

func NewSchemeComparisonService(projections *ProjectionService) *SchemeComparisonService {
	return &SchemeComparisonService{projections: projections}
}

// Compare reruns a financed scenario once per repayment scheme, with every
// tranche switched to that scheme, and ranks the outcomes by 30-year
// cumulative cash flow. Tranches without a term get defaultTerm for the
// amortizing schemes.
func (s *SchemeComparisonService) Compare(
	ctx context.Context,
	input domain.ScenarioInput,
	defaultTerm int,
) (domain.SchemeComparison, error) {
	if !input.Financing.Financed {
		return domain.SchemeComparison{}, errors.New("scheme comparison needs a financed scenario")
	}
	if len(input.Financing.Tranches) == 0 {
		return domain.SchemeComparison{}, errors.New("scheme comparison needs at least one tranche")
	}

	outcomes := make([]domain.SchemeOutcome, 0, len(domain.Schemes))
	for _, scheme := range domain.Schemes {
		candidate := withScheme(input, scheme, defaultTerm)

		outcome := domain.SchemeOutcome{Scheme: scheme}
		result, err := s.projections.Compute(ctx, candidate)
		if err != nil {
			log.Printf("Warning: scheme %s could not be projected: %v", scheme, err)
			outcome.Error = err.Error()
			outcomes = append(outcomes, outcome)
			continue
		}

		last := result.Ledger[len(result.Ledger)-1]
		for _, row := range result.Ledger {
			outcome.TotalInterest += row.MortgageInterest
		}
		outcome.CumulativeCashFlow = roundTo2Decimals(last.CumulativeCashFlow)
		outcome.TotalInterest = roundTo2Decimals(outcome.TotalInterest)
		outcome.CashOnCash = roundTo2Decimals(result.Metrics.CashOnCash)
		outcome.FinalDebt = roundTo2Decimals(last.RemainingDebt)
		outcomes = append(outcomes, outcome)
	}

	// failed schemes sink to the bottom, the rest by cumulative cash flow
	sort.SliceStable(outcomes, func(i, j int) bool {
		if (outcomes[i].Error == "") != (outcomes[j].Error == "") {
			return outcomes[i].Error == ""
		}
		return outcomes[i].CumulativeCashFlow > outcomes[j].CumulativeCashFlow
	})

	if outcomes[0].Error != "" {
		return domain.SchemeComparison{}, errors.New("no repayment scheme could be projected")
	}

	return domain.SchemeComparison{
		Recommended: outcomes[0].Scheme,
		Outcomes:    outcomes,
	}, nil
}

func withScheme(input domain.ScenarioInput, scheme domain.Scheme, defaultTerm int) domain.ScenarioInput {
	tranches := make([]domain.Tranche, len(input.Financing.Tranches))
	for i, t := range input.Financing.Tranches {
		t.Scheme = scheme
		if scheme != domain.SchemeInterestOnly && t.TermYears <= 0 {
			t.TermYears = defaultTerm
		}
		tranches[i] = t
	}
	input.Financing.Tranches = tranches
	return input
}
