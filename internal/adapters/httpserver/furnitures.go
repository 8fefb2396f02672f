package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

func furnitureFilter(r *http.Request) domain.FurnitureFilter {
	q := r.URL.Query()
	return domain.FurnitureFilter{
		Name:        q.Get("name"),
		Color:       q.Get("color"),
		Description: q.Get("description"),
	}
}

func (s *Server) handleFurnitures(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var f domain.Furniture
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := s.furnitures.Create(r.Context(), &f); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, f)

	case http.MethodGet:
		filter := furnitureFilter(r)
		if filter.Empty() {
			writeText(w, http.StatusBadRequest, "Query params not provided")
			return
		}
		list, err := s.furnitures.Filter(r.Context(), filter)
		if err != nil {
			writeErr(w, err)
			return
		}
		if len(list) == 0 {
			writeText(w, http.StatusNotFound, "Furniture not found")
			return
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPatch:
		filter := furnitureFilter(r)
		if filter.Empty() {
			writeText(w, http.StatusBadRequest, "Query params not provided")
			return
		}
		f, err := s.furnitures.FirstByFilter(r.Context(), filter)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Furniture not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchFurniture(w, r, f)

	case http.MethodDelete:
		filter := furnitureFilter(r)
		if filter.Empty() {
			writeText(w, http.StatusBadRequest, "Query params not provided")
			return
		}
		f, err := s.furnitures.DeleteFirstByFilter(r.Context(), filter)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Furniture not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) handleFurnitureByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/furnitures/")

	// catalog bulk endpoints share the prefix
	switch rest {
	case "export":
		s.handleFurnitureExport(w, r)
		return
	case "import":
		s.handleFurnitureImport(w, r)
		return
	}

	id, err := uuid.Parse(rest)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		f, err := s.furnitures.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Furniture not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)

	case http.MethodPatch:
		f, err := s.furnitures.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Furniture not found")
				return
			}
			writeErr(w, err)
			return
		}
		s.patchFurniture(w, r, f)

	case http.MethodDelete:
		f, err := s.furnitures.DeleteByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeText(w, http.StatusNotFound, "Furniture not found")
				return
			}
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)

	default:
		s.handleNotImplemented(w, r)
	}
}

func (s *Server) patchFurniture(w http.ResponseWriter, r *http.Request, f *domain.Furniture) {
	raw, fields, err := readBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !fieldsAllowed(fields, domain.FurnitureUpdatableFields) {
		writeText(w, http.StatusBadRequest, "Update not permitted")
		return
	}
	var patch struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Dimensions  *string  `json:"dimensions"`
		Materials   []string `json:"materials"`
		Color       *string  `json:"color"`
		Style       *string  `json:"style"`
		Price       *float64 `json:"price"`
		ImageURL    *string  `json:"imageUrl"`
		Quantity    *int     `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &patch); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Dimensions != nil {
		f.Dimensions = *patch.Dimensions
	}
	if patch.Materials != nil {
		f.Materials = patch.Materials
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	if patch.Style != nil {
		f.Style = *patch.Style
	}
	if patch.Price != nil {
		f.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		f.ImageURL = *patch.ImageURL
	}
	if patch.Quantity != nil {
		f.Quantity = *patch.Quantity
	}
	if err := s.furnitures.Update(r.Context(), f); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
