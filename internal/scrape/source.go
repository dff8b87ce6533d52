package scrape

import (
	"context"

	"skijobs-engine/internal/domain"
)

// Source is one upstream career site. Scrape returns whatever it could
// extract; a total failure is an error, which the aggregator absorbs.
type Source interface {
	Name() string
	Scrape(ctx context.Context) ([]domain.Posting, error)
}

// StaticFallback marks sources that can retry with a plain GET when their
// rendered pass comes back empty.
type StaticFallback interface {
	ScrapeStatic(ctx context.Context) ([]domain.Posting, error)
}
