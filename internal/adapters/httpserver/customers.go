package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var c domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := s.customers.Create(r.Context(), &c); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)

	case http.MethodGet:
		nif := r.URL.Query().Get("nif")
		if nif == "" {
			writeText(w, http.StatusBadRequest, "Nif not provided")
			return
		}
		c, err := s.customers.GetByNIF(r.Context(), nif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	case http.MethodPatch:
		nif := r.URL.Query().Get("nif")
		if nif == "" {
			writeText(w, http.StatusBadRequest, "Nif not provided")
			return
		}
		c, err := s.customers.GetByNIF(r.Context(), nif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchCustomer(w, r, c)

	case http.MethodDelete:
		nif := r.URL.Query().Get("nif")
		if nif == "" {
			writeText(w, http.StatusBadRequest, "Nif not provided")
			return
		}
		c, err := s.customers.DeleteByNIF(r.Context(), nif)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) handleCustomerByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/customers/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.customers.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	case http.MethodPatch:
		c, err := s.customers.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchCustomer(w, r, c)

	case http.MethodDelete:
		c, err := s.customers.DeleteByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Customer not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	default:
		s.handleNotImplemented(w, r)
	}
}

// patchCustomer applies an allow-listed PATCH body onto an already fetched
// record. Any key outside the allow-list rejects the update wholesale.
func (s *Server) patchCustomer(w http.ResponseWriter, r *http.Request, c *domain.Customer) {
	raw, fields, err := readBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !fieldsAllowed(fields, domain.CustomerUpdatableFields) {
		writeText(w, http.StatusBadRequest, "Update not permitted")
		return
	}
	var patch struct {
		Name            *string `json:"name"`
		Surname         *string `json:"surname"`
		TelephoneNumber *string `json:"telephoneNumber"`
		Email           *string `json:"email"`
		Address         *string `json:"address"`
		PostalCode      *int    `json:"postalCode"`
		City            *string `json:"city"`
		Gender          *string `json:"gender"`
	}
	if err := json.Unmarshal(raw, &patch); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Surname != nil {
		c.Surname = *patch.Surname
	}
	if patch.TelephoneNumber != nil {
		c.TelephoneNumber = *patch.TelephoneNumber
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.PostalCode != nil {
		c.PostalCode = *patch.PostalCode
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.Gender != nil {
		c.Gender = *patch.Gender
	}
	if err := s.customers.Update(r.Context(), c); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
