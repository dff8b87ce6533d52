package httpapi

import (
	"net/http"
	"strings"

	"skijobs-engine/internal/refresh"
)

type RefreshHandler struct {
	Refresh *refresh.Service
	Token   func() (string, error)
}

// Run forces a full pipeline pass. Guarded by a bearer token so only the
// operator's cron (or the operator) can trigger scrapes remotely.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	want, err := h.Token()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, "token_unavailable", "refresh token not configured")
		return
	}

	got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if got == "" || got != want {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid bearer token")
		return
	}

	jobs, err := h.Refresh.Run(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "count": len(jobs)})
}
