package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case apperrors.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperrors.IsProvider(err):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
	}
}

// parseDateParam reads a YYYY-MM-DD query parameter; ok is false when it is absent.
func parseDateParam(r *http.Request, name string) (t time.Time, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err = models.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, &apperrors.ErrValidation{Field: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	return t, true, nil
}
