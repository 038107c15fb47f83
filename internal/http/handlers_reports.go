package http

import "net/http"

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.store.Summary(r.Context(), requestMonth(r))
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleExpenseBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := s.store.ExpenseBreakdown(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) handleMonthlyComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := s.store.MonthlyComparison(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}
