package httpapi

import (
	"database/sql"
	"net/http"

	"skijobs-engine/internal/store"
)

type HealthHandler struct {
	DB *sql.DB
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := store.Count(r.Context(), h.DB)
	writeJSON(w, map[string]any{
		"ok":   err == nil,
		"jobs": n,
	})
}
