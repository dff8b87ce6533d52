package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"skijobs-engine/internal/cache"
	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/refresh"
	"skijobs-engine/internal/store"
)

type JobsHandler struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Refresh *refresh.Service
}

type jobsEnvelope struct {
	Count  int          `json:"count"`
	Source string       `json:"source"`
	Jobs   []domain.Job `json:"jobs"`
}

// List serves the aggregate job set: cache first, then the persisted
// snapshot, then a live scrape as the last resort. ?q= filters by substring
// over title, resort, location, and description.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	if jobs, ok := h.Cache.Get(); ok {
		jobs = filterJobs(jobs, q)
		writeJSON(w, jobsEnvelope{Count: len(jobs), Source: "cache", Jobs: jobs})
		return
	}

	if n, err := store.Count(r.Context(), h.DB); err == nil && n > 0 {
		jobs, err := store.List(r.Context(), h.DB, q)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, jobsEnvelope{Count: len(jobs), Source: "store", Jobs: jobs})
		return
	}

	jobs, err := h.Refresh.Run(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	jobs = filterJobs(jobs, q)
	writeJSON(w, jobsEnvelope{Count: len(jobs), Source: "live", Jobs: jobs})
}

func filterJobs(jobs []domain.Job, q string) []domain.Job {
	if q == "" {
		return jobs
	}
	needle := strings.ToLower(q)
	var out []domain.Job
	for _, j := range jobs {
		hay := strings.ToLower(j.Title + " " + j.Resort + " " + j.Location + " " + j.Description)
		if strings.Contains(hay, needle) {
			out = append(out, j)
		}
	}
	return out
}
