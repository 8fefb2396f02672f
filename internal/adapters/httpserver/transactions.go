package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
	"github.com/maderal/muebleria/internal/usecase"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var in usecase.CreateTransactionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		view, err := s.transactions.Create(r.Context(), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, view)

	case http.MethodGet:
		views, err := s.transactions.List(r.Context())
		if err != nil {
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(views) == 0 {
			writeText(w, http.StatusNotFound, "No transactions found")
			return
		}
		writeJSON(w, http.StatusOK, views)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/transactions/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		view, err := s.transactions.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Transaction not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case http.MethodPatch:
		raw, fields, err := readBody(r)
		if err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		if !fieldsAllowed(fields, domain.TransactionUpdatableFields) {
			writeText(w, http.StatusBadRequest, "Update not permitted")
			return
		}
		var patch usecase.TransactionPatch
		if err := json.Unmarshal(raw, &patch); err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		view, err := s.transactions.Update(r.Context(), id, patch)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, err.Error())
				return
			}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				writeText(w, http.StatusBadRequest, ve.Error())
				return
			}
			// unexpected store failure
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, view)

	case http.MethodDelete:
		view, err := s.transactions.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Transaction not found")
				return
			}
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, view)

	default:
		s.handleNotImplemented(w, r)
	}
}
