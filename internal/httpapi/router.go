package httpapi

import "net/http"

// NewMux returns the raw mux so main() can wrap it with middleware and still
// attach server-lifecycle routes.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{DB: d.DB, Cache: d.Cache, Refresh: d.Refresh}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))

	sch := ScrapeHandler{Runner: d.Runner, Refresh: d.Refresh}
	mux.HandleFunc("/scrape/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.Status,
	}))
	mux.HandleFunc("/scrape/run", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.Run,
	}))
	mux.HandleFunc("/scrape/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.Categories,
	}))

	rh := RefreshHandler{Refresh: d.Refresh, Token: d.RefreshToken}
	mux.HandleFunc("/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	hh := HealthHandler{DB: d.DB}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
