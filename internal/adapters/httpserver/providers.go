package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var p domain.Provider
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := s.providers.Create(r.Context(), &p); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)

	case http.MethodGet:
		cif := r.URL.Query().Get("cif")
		if cif == "" {
			writeText(w, http.StatusBadRequest, "Cif not provided")
			return
		}
		p, err := s.providers.GetByCIF(r.Context(), cif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPatch:
		cif := r.URL.Query().Get("cif")
		if cif == "" {
			writeText(w, http.StatusBadRequest, "Cif not provided")
			return
		}
		p, err := s.providers.GetByCIF(r.Context(), cif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchProvider(w, r, p)

	case http.MethodDelete:
		cif := r.URL.Query().Get("cif")
		if cif == "" {
			writeText(w, http.StatusBadRequest, "Cif not provided")
			return
		}
		p, err := s.providers.DeleteByCIF(r.Context(), cif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) handleProviderByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/providers/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.providers.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPatch:
		p, err := s.providers.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchProvider(w, r, p)

	case http.MethodDelete:
		p, err := s.providers.DeleteByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Provider not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) patchProvider(w http.ResponseWriter, r *http.Request, p *domain.Provider) {
	raw, fields, err := readBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !fieldsAllowed(fields, domain.ProviderUpdatableFields) {
		writeText(w, http.StatusBadRequest, "Update not permitted")
		return
	}
	var patch struct {
		Name            *string `json:"name"`
		Address         *string `json:"address"`
		TelephoneNumber *string `json:"telephoneNumber"`
		Email           *string `json:"email"`
		Website         *string `json:"website"`
	}
	if err := json.Unmarshal(raw, &patch); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.TelephoneNumber != nil {
		p.TelephoneNumber = *patch.TelephoneNumber
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if err := s.providers.Update(r.Context(), p); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
