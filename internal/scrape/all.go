package scrape

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"skijobs-engine/internal/config"
	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/alterra"
	"skijobs-engine/internal/scrape/bigbear"
	"skijobs-engine/internal/scrape/boyne"
	"skijobs-engine/internal/scrape/portal"
	"skijobs-engine/internal/scrape/powdr"
	"skijobs-engine/internal/scrape/util"
	"skijobs-engine/internal/scrape/vail"
	"skijobs-engine/internal/scrape/workday"
)

// Runner owns the fixed source set. Concatenation order follows the slice,
// so aggregate output is deterministic given deterministic adapter output.
type Runner struct {
	sources []Source
	vail    *vail.Scraper
}

func NewRunner(cfg config.Config) *Runner {
	limiter := util.NewHostLimiter(cfg.Scrape.HostReqPerSec, 1)

	v := vail.New(limiter)
	v.DescriptionLimit = cfg.Scrape.VailDescriptionLimit

	return &Runner{
		vail: v,
		sources: []Source{
			v,
			alterra.New(),
			boyne.New(),
			powdr.New(),
			workday.New(workday.Mammoth),
			workday.New(workday.DeerValley),
			bigbear.New(),
			portal.New(portal.JacksonHole),
			portal.New(portal.SunValley),
			portal.New(portal.Paycom),
		},
	}
}

// Vail exposes the multi-department adapter; the API layer uses it for the
// legacy ski-school path and the category listing.
func (r *Runner) Vail() *vail.Scraper { return r.vail }

// Source looks an adapter up by name for single-source scrapes.
func (r *Runner) Source(name string) (Source, bool) {
	for _, s := range r.sources {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (r *Runner) Names() []string {
	out := make([]string, len(r.sources))
	for i, s := range r.sources {
		out[i] = s.Name()
	}
	return out
}

func sourceDeadline(name string) time.Duration {
	switch name {
	case "vail":
		// six sequential department fetches plus pacing
		return 2 * time.Minute
	case "alterra", "boyne", "powdr":
		return 90 * time.Second
	case "bigbear":
		return 45 * time.Second
	default:
		return 60 * time.Second
	}
}

// All runs every source concurrently under its own deadline, retries empty
// rendered sources with their static fallback, and concatenates the results
// in fixed source order. It never fails as a whole: a dead source simply
// contributes nothing.
func (r *Runner) All(ctx context.Context) []domain.Posting {
	return r.run(ctx, r.sources)
}

func (r *Runner) run(ctx context.Context, sources []Source) []domain.Posting {
	results := make([][]domain.Posting, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = withDeadline(ctx, sourceDeadline(src.Name()), src.Name(), func(ctx context.Context) []domain.Posting {
				jobs, err := src.Scrape(ctx)
				if err != nil {
					log.Printf("[%s] error: %v", src.Name(), err)
					return nil
				}
				return jobs
			})
			return nil
		})
	}
	_ = g.Wait()

	// Serial fallback pass for rendered sources that came back empty.
	for i, src := range sources {
		if len(results[i]) > 0 {
			continue
		}
		fb, ok := src.(StaticFallback)
		if !ok {
			continue
		}
		log.Printf("[%s] rendered pass empty, retrying with static fetch", src.Name())
		jobs, err := fb.ScrapeStatic(ctx)
		if err != nil {
			log.Printf("[%s] static fallback error: %v", src.Name(), err)
			continue
		}
		if len(jobs) > 0 {
			results[i] = jobs
		}
	}

	var out []domain.Posting
	for i, src := range sources {
		log.Printf("[scrape] %-12s %4d jobs", src.Name(), len(results[i]))
		out = append(out, results[i]...)
	}
	log.Printf("[scrape] total %d jobs", len(out))
	return out
}
