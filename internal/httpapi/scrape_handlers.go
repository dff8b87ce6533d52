package httpapi

import (
	"net/http"
	"strings"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/normalize"
	"skijobs-engine/internal/refresh"
	"skijobs-engine/internal/scrape"
	"skijobs-engine/internal/scrape/vail"
)

type ScrapeHandler struct {
	Runner  *scrape.Runner
	Refresh *refresh.Service
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Refresh.Status())
}

// Run scrapes one named source on demand, or "everything" for the full
// cache-aware aggregate. Single-source results are never cached.
func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("source"))
	if name == "" || name == "everything" {
		jobs, source, err := h.Refresh.Jobs(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, jobsEnvelope{Count: len(jobs), Source: source, Jobs: jobs})
		return
	}

	var (
		postings []domain.Posting
		err      error
	)
	switch name {
	case "ski-school":
		// legacy path: Vail ski & snowboard school department only
		postings, err = h.Runner.Vail().SkiSchool(r.Context())
	default:
		src, ok := h.Runner.Source(name)
		if !ok {
			WriteError(w, r, http.StatusNotFound, "unknown_source",
				"unknown source; valid: "+strings.Join(h.Runner.Names(), ", "))
			return
		}
		postings, err = src.Scrape(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	jobs := normalize.Convert(postings)
	writeJSON(w, jobsEnvelope{Count: len(jobs), Source: name, Jobs: jobs})
}

// Categories lists the Vail departments scraped by the multi-category
// adapter, label to board URL.
func (h ScrapeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]string, len(vail.Categories))
	for _, c := range vail.Categories {
		out[c.Label] = c.URL
	}
	writeJSON(w, out)
}
