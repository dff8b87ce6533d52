// Package powdr scrapes the Powdr Workday board (Copper, Killington,
// Snowbird and the rest). Workday career pages are fully JS-rendered.
package powdr

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
	Origin   = "https://powdr.wd12.myworkdayjobs.com"
	boardURL = Origin + "/POWDR_Careers?locations=861bc65ed43610015f9b8f72eceb0000&locations=861bc65ed43610015f9b32f525580000"
	maxJobs  = 200
)

var knownResorts = []string{
	"Copper", "Killington", "Snowbird", "Boreal",
	"Soda Springs", "Mt. Bachelor", "Lee Canyon", "Woodward",
}

type Scraper struct {
	hc *http.Client
}

func New() *Scraper {
	return &Scraper{hc: &http.Client{Timeout: 15 * time.Second}}
}

func (s *Scraper) Name() string { return "powdr" }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	links, err := render.CollectLinks(ctx, render.Options{
		URL:         boardURL,
		Origin:      Origin,
		LinkPattern: "/job/",
		WaitSelectors: []string{
			`a[href*="/job/"]`,
			`[data-automation-id="jobPosting"]`,
			`li[class*="job"]`,
			".wd-List",
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
	doc.Find(`a[href*="/job/"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title := util.CleanText(a.Text())
		if title == "" {
			title = util.CleanText(a.Closest("li").Find(`[data-automation-id="jobPosting"]`).Text())
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
		resort = "Powdr Resort"
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
		Company:   domain.CompanyPowdr,
	}
}

func capJobs(in []domain.Posting) []domain.Posting {
	if len(in) > maxJobs {
		return in[:maxJobs]
	}
	return in
}
