package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/apratimrana/FInTracker/internal/core"
)

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	month := requestMonth(r)

	monthlyBudget, err := s.store.MonthlyBudget(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}

	categoryBudgets, err := s.store.CategoryBudgets(r.Context(), month)
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, core.BudgetView{
		MonthlyBudget:   monthlyBudget,
		CategoryBudgets: categoryBudgets,
		CurrentMonth:    month,
	})
}

func (s *Server) handleSetMonthlyBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := parseMonthlyBudget(r)
	if err != nil {
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
			return
		}
		s.handleStoreError(w, r, err, "An unexpected error occurred.")
		return
	}

	if err := s.store.SetMonthlyBudget(r.Context(), budget); err != nil {
		s.handleStoreError(w, r, err, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Monthly budget updated successfully!",
		"monthlyBudget": budget,
	})
}

func (s *Server) handleSetCategoryBudget(w http.ResponseWriter, r *http.Request) {
	category, budget, err := parseCategoryBudget(r)
	if err != nil {
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
			return
		}
		s.handleStoreError(w, r, err, "An unexpected error occurred.")
		return
	}

	if err := s.store.SetCategoryBudget(r.Context(), category, budget, requestMonth(r)); err != nil {
		s.handleStoreError(w, r, err, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  fmt.Sprintf("Budget for %s updated successfully!", category),
		"category": category,
		"budget":   budget,
	})
}

func (s *Server) handleDeleteCategoryBudget(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	// Deleting an absent budget is a no-op that still reports success,
	// keeping the operation idempotent for the frontend.
	if err := s.store.DeleteCategoryBudget(r.Context(), category, requestMonth(r)); err != nil {
		s.handleStoreError(w, r, err, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Budget for %s deleted successfully!", category),
	})
}
