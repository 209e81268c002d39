package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rental-yield/domain"
	"rental-yield/report"
	"rental-yield/service"
)

type ProjectionHandler struct {
	service     *service.ProjectionService
	comparison  *service.SchemeComparisonService
	defaultTerm int
	sheetName   string
}

func NewProjectionHandler(
	projections *service.ProjectionService,
	comparison *service.SchemeComparisonService,
	defaultTerm int,
	sheetName string,
) *ProjectionHandler {
	return &ProjectionHandler{
		service:     projections,
		comparison:  comparison,
		defaultTerm: defaultTerm,
		sheetName:   sheetName,
	}
}

// decodeScenario enforces POST with a JSON body. It writes the error response
// itself and reports whether the handler may continue.
func decodeScenario(w http.ResponseWriter, r *http.Request) (domain.ScenarioInput, bool) {
	var input domain.ScenarioInput

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return input, false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return input, false
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("[%s] Error decoding request body: %v", RequestID(r.Context()), err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return input, false
	}
	return input, true
}

// engineStatus maps engine errors to a status code. Configuration errors are
// the caller's fault and reported as 422.
func engineStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTerm),
		errors.Is(err, domain.ErrInvalidAllocation),
		errors.Is(err, domain.ErrUnknownScheme),
		errors.Is(err, domain.ErrUnknownRevenueModel):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("[%s] Error encoding response: %v", RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[%s] Error writing response: %v", RequestID(r.Context()), err)
	}
}

func (h *ProjectionHandler) compute(w http.ResponseWriter, r *http.Request) (domain.ProjectionResult, bool) {
	input, ok := decodeScenario(w, r)
	if !ok {
		return domain.ProjectionResult{}, false
	}

	result, err := h.service.Compute(r.Context(), input)
	if err != nil {
		log.Printf("[%s] Error computing projection: %v", RequestID(r.Context()), err)
		http.Error(w, err.Error(), engineStatus(err))
		return domain.ProjectionResult{}, false
	}
	return result, true
}

// Compute returns the ledger, metrics and monthly averages.
func (h *ProjectionHandler) Compute(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compute(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, result)
}

// Charts returns the cumulative, debt and cost breakdown series.
func (h *ProjectionHandler) Charts(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compute(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, report.Charts(result.Ledger))
}

// Export streams the ledger as CSV (default) or XLSX, picked by ?format=.
func (h *ProjectionHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
		return
	}

	result, ok := h.compute(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	var err error
	contentType := "text/csv; charset=utf-8"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = report.WriteXLSX(&buf, result.Ledger, h.sheetName)
	} else {
		err = report.WriteCSV(&buf, result.Ledger)
	}
	if err != nil {
		log.Printf("[%s] Error exporting projection: %v", RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"projection_%s.%s\"",
		time.Now().Format("20060102"), format))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[%s] Error writing export: %v", RequestID(r.Context()), err)
	}
}

// Compare ranks the repayment schemes for a financed scenario.
func (h *ProjectionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeScenario(w, r)
	if !ok {
		return
	}

	result, err := h.comparison.Compare(r.Context(), input, h.defaultTerm)
	if err != nil {
		log.Printf("[%s] Error comparing schemes: %v", RequestID(r.Context()), err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, r, result)
}
