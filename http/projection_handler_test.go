package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-yield/domain"
	"rental-yield/repository"
	"rental-yield/service"
)

const scenarioBody = `{
	"purchase_price": 175000,
	"acquisition_costs": 25000,
	"financing": {
		"financed": true,
		"loan_to_value": 75,
		"tranches": [
			{"fraction": 100, "scheme": "annuity", "interest_rate": 4.9, "term_years": 30}
		]
	},
	"operating": {
		"revenue_model": "nightly",
		"nightly_rate": 138,
		"occupancy": 72,
		"nights_per_booking": 4,
		"cleaning_fee": 75,
		"tourist_tax": 2.3,
		"association_fee": 2600,
		"management_fee": 20,
		"maintenance": 1.8,
		"energy_monthly": 180,
		"indexation": 2.5
	}
}`

func newTestHandler() *ProjectionHandler {
	projections := service.NewProjectionService(repository.NewMemoryCache(), service.FidelityExact)
	comparison := service.NewSchemeComparisonService(projections)
	return NewProjectionHandler(projections, comparison, 30, "")
}

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestComputeHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Compute(w, post("/projection/compute", scenarioBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ProjectionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Ledger) != 30 {
		t.Errorf("expected 30 ledger rows, got %d", len(result.Ledger))
	}
	if result.Metrics.LoanAmount != 131250 {
		t.Errorf("expected loan 131250, got %.2f", result.Metrics.LoanAmount)
	}
}

func TestComputeHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/projection/compute", nil)
	w := httptest.NewRecorder()

	handler.Compute(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestComputeHandler_BadRequest(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Compute(w, post("/projection/compute", `{invalid-json}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestComputeHandler_UnsupportedMediaType(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/projection/compute", bytes.NewBufferString(scenarioBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.Compute(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestComputeHandler_InvalidTerm(t *testing.T) {
	handler := newTestHandler()
	body := strings.Replace(scenarioBody, `"term_years": 30`, `"term_years": 0`, 1)
	w := httptest.NewRecorder()

	handler.Compute(w, post("/projection/compute", body))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid term") {
		t.Errorf("expected invalid term message, got %q", w.Body.String())
	}
}

func TestExportHandler_CSV(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Export(w, post("/projection/export", scenarioBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("unexpected content type %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 31 {
		t.Errorf("expected 31 csv lines, got %d", len(lines))
	}
}

func TestExportHandler_XLSX(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Export(w, post("/projection/export?format=xlsx", scenarioBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), ".xlsx") {
		t.Errorf("expected xlsx attachment, got %q", w.Header().Get("Content-Disposition"))
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Errorf("expected zip payload")
	}
}

func TestExportHandler_UnknownFormat(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Export(w, post("/projection/export?format=pdf", scenarioBody))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChartsHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Charts(w, post("/projection/charts", scenarioBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var charts domain.ChartData
	if err := json.NewDecoder(w.Body).Decode(&charts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(charts.Cumulative) != 30 || len(charts.RemainingDebt) != 30 {
		t.Errorf("expected 30-point series, got %d and %d", len(charts.Cumulative), len(charts.RemainingDebt))
	}
	if len(charts.CostBreakdown) == 0 {
		t.Errorf("expected a cost breakdown")
	}
}

func TestCompareHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Compare(w, post("/projection/compare", scenarioBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.SchemeComparison
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Outcomes) != 3 {
		t.Errorf("expected 3 outcomes, got %d", len(result.Outcomes))
	}
}

func TestRouter_RequestIDAndRateLimit(t *testing.T) {
	limiter := newRateLimiter(1, time.Minute, time.Now)
	router := NewRouter(newTestHandler(), limiter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, post("/projection/compute", scenarioBody))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Errorf("expected a request id header")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, post("/projection/compute", scenarioBody))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}
}

func TestRequestIDMiddleware_KeepsValidID(t *testing.T) {
	const id = "6f1c0c59-7a1e-4b9e-9a51-3c1f1d2b7c10"
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if seen != id || w.Header().Get(RequestIDHeader) != id {
		t.Errorf("expected id %s to be kept, got %s", id, seen)
	}
}
