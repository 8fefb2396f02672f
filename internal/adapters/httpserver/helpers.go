package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/maderal/muebleria/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

// readBody returns the raw bytes plus the top-level keys, so PATCH handlers
// can reject disallowed fields before decoding into the typed patch.
func readBody(r *http.Request) ([]byte, map[string]json.RawMessage, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, err
	}
	return raw, fields, nil
}

func fieldsAllowed(fields map[string]json.RawMessage, allowed []string) bool {
	for k := range fields {
		if !slices.Contains(allowed, k) {
			return false
		}
	}
	return true
}

// writeErr maps domain errors to the boundary statuses: validation and
// duplicates are 400, missing records 404, the rest defaults to 400 (the
// old API folded unexpected store errors into the catch-all 400 too).
func writeErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeText(w, http.StatusBadRequest, ve.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeText(w, http.StatusNotFound, err.Error())
		return
	}
	writeText(w, http.StatusBadRequest, err.Error())
}
