package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.store.ListTransactions(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	in, err := parseTransactionInput(r)
	if err != nil {
		// The create endpoint reports a bare error following the
		// documented contract, without field-level details.
		writeError(w, http.StatusBadRequest, "Invalid or missing data provided. Please check your inputs.", "")
		return
	}

	id, err := s.store.CreateTransaction(r.Context(), in)
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected error occurred on the server.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Transaction added successfully!",
		"transactionId": id,
	})
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := s.transactionID(w, r)
	if !ok {
		return
	}

	tx, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := s.transactionID(w, r)
	if !ok {
		return
	}

	in, err := parseTransactionInput(r)
	if err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}

	if err := s.store.UpdateTransaction(r.Context(), id, in); err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Transaction with ID %d was successfully updated.", id),
		"transactionId": id,
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := s.transactionID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		s.handleStoreError(w, r, err, "An unexpected server error occurred while deleting.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Transaction with ID %d was successfully deleted.", id),
	})
}

// transactionID parses the {id} path value, writing a 404 when it is not a
// positive integer so malformed identifiers read the same as missing rows.
func (s *Server) transactionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		slog.WarnContext(r.Context(), "Rejecting malformed transaction id", "id", raw)
		writeError(w, http.StatusNotFound, "Not found", "")
		return 0, false
	}
	return id, true
}
