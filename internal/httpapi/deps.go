package httpapi

import (
	"database/sql"

	"skijobs-engine/internal/cache"
	"skijobs-engine/internal/refresh"
	"skijobs-engine/internal/scrape"
)

type Deps struct {
	DB *sql.DB

	Cache   *cache.Cache
	Runner  *scrape.Runner
	Refresh *refresh.Service

	// Bearer token lookup for the forced-refresh endpoint (inject for testability)
	RefreshToken func() (string, error)
}
