// Package boyne scrapes the Boyne Resorts board, an Angular app that paints
// its job list client-side. Rendered pass first, plain GET as fallback.
package boyne

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/render"
	"skijobs-engine/internal/scrape/util"
)

const (
	Origin   = "https://careers.boyneresorts.com"
	boardURL = Origin + "/all/jobs"
	maxJobs  = 150
)

// The board mixes postings from every Boyne property into one feed.
var knownResorts = []string{
	"Big Sky", "Boyne Mountain", "Brighton", "Cypress Mountain",
	"Loon Mountain", "Sugarloaf", "Summit at Snoqualmie", "Sunday River",
}

type Scraper struct {
	hc *http.Client
}

func New() *Scraper {
	return &Scraper{hc: &http.Client{Timeout: 15 * time.Second}}
}

func (s *Scraper) Name() string { return "boyne" }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	links, err := render.CollectLinks(ctx, render.Options{
		URL:         boardURL,
		Origin:      Origin,
		LinkPattern: "/job",
		WaitSelectors: []string{
			`a[href*="/job"]`,
			".job-item",
			".job-listing",
			`[class*="job"]`,
			".search-result-item",
			"table tbody tr",
		},
		WaitTimeout: 20 * time.Second,
		SettleDelay: 3 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Posting, 0, len(links))
	for _, l := range links {
		out = append(out, s.posting(l.Title, l.Location, l.URL))
	}
	return capJobs(out), nil
}

func (s *Scraper) ScrapeStatic(ctx context.Context) ([]domain.Posting, error) {
	doc, err := util.FetchDocument(ctx, s.hc, boardURL)
	if err != nil {
		return nil, err
	}

	var out []domain.Posting
	seen := map[string]bool{}
	doc.Find(`a[href*="/job"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title := util.CleanText(a.Text())
		if title == "" {
			title = util.CleanText(a.Find(`.job-title, .jobtitle, [class*="title"]`).Text())
		}
		if href == "" || len(title) < 3 {
			return
		}
		u := util.AbsoluteURL(Origin, href)
		if seen[u] {
			return
		}
		seen[u] = true
		out = append(out, s.posting(title, "", u))
	})
	return capJobs(out), nil
}

func (s *Scraper) posting(title, location, jobURL string) domain.Posting {
	resort := util.MatchResort(knownResorts, location, title)
	if resort == "" {
		resort = "Boyne Resort"
	}
	if location == "" {
		location = "Various Locations"
	}
	return domain.Posting{
		Title:     title,
		Resort:    resort,
		Location:  location,
		ShiftType: "Seasonal/Year-round",
		URL:       jobURL,
		Category:  "All Departments",
		Company:   domain.CompanyBoyne,
	}
}

func capJobs(in []domain.Posting) []domain.Posting {
	if len(in) > maxJobs {
		return in[:maxJobs]
	}
	return in
}
