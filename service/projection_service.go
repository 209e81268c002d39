package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"rental-yield/domain"
	"rental-yield/repository"
)

type ProjectionService struct {
	cache    repository.CacheRepository
	fidelity AnnuityFidelity
}

// NewProjectionService creates a ProjectionService. cache may be nil to
// disable result caching.
func NewProjectionService(
	cache repository.CacheRepository,
	fidelity AnnuityFidelity,
) *ProjectionService {
	if fidelity == "" {
		fidelity = FidelityExact
	}
	return &ProjectionService{cache: cache, fidelity: fidelity}
}

// Fidelity reports the annuity fidelity used by this service.
func (s *ProjectionService) Fidelity() AnnuityFidelity {
	return s.fidelity
}

// Compute runs the mortgage model, the cash-flow projector and the metrics
// summarizer for one scenario.
func (s *ProjectionService) Compute(
	ctx context.Context,
	input domain.ScenarioInput,
) (domain.ProjectionResult, error) {
	key, keyErr := s.cacheKey(input)
	if keyErr == nil && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.ProjectionResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			log.Printf("Warning: discarding unreadable cached projection %s", key)
		}
	}

	result, err := Compute(input, s.fidelity)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	if keyErr == nil && s.cache != nil {
		payload, err := json.Marshal(result)
		if err == nil {
			err = s.cache.Set(ctx, key, string(payload))
		}
		// caching is best effort
		if err != nil {
			log.Printf("Warning: failed to cache projection: %v", err)
		}
	}
	return result, nil
}

func (s *ProjectionService) cacheKey(input domain.ScenarioInput) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	h := xxhash.New()
	h.WriteString(string(s.fidelity))
	h.Write(payload)
	return "projection:" + strconv.FormatUint(h.Sum64(), 16), nil
}

// Compute is the pure projection pipeline without caching.
func Compute(input domain.ScenarioInput, fidelity AnnuityFidelity) (domain.ProjectionResult, error) {
	switch input.Operating.RevenueModel {
	case "", domain.RevenueNightly, domain.RevenueMonthly:
	default:
		return domain.ProjectionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownRevenueModel, input.Operating.RevenueModel)
	}
	if fidelity == "" {
		fidelity = FidelityExact
	}

	loan := input.LoanAmount()
	var debt DebtSchedule
	if input.Financing.Financed {
		var err error
		debt, err = BuildDebtSchedule(loan, input.Financing.Tranches, fidelity)
		if err != nil {
			return domain.ProjectionResult{}, fmt.Errorf("mortgage: %w", err)
		}
	}

	ledger := ProjectLedger(input, debt)
	return domain.ProjectionResult{
		Ledger:          ledger,
		Metrics:         Summarize(input, loan, ledger[0]),
		MonthlyAverages: AverageMonthly(ledger),
		Fidelity:        string(fidelity),
	}, nil
}
