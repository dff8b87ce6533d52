// Package alterra scrapes the company-wide Alterra board. The site is
// client-rendered (ChangeState platform), so the main pass uses the headless
// browser; a plain-GET fallback exists for when rendering yields nothing.
package alterra

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/render"
	"skijobs-engine/internal/scrape/util"
)

const (
	Origin   = "https://jobs.alterramtnco.com"
	boardURL = Origin + "/jobs?qu=&geo=&lo=&dp="
	maxJobs  = 80
)

type Scraper struct {
	hc *http.Client
}

func New() *Scraper {
	return &Scraper{hc: &http.Client{Timeout: 15 * time.Second}}
}

func (s *Scraper) Name() string { return "alterra" }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	links, err := render.CollectLinks(ctx, render.Options{
		URL:         boardURL,
		Origin:      Origin,
		LinkPattern: "/job/",
		WaitSelectors: []string{
			`a[href*="/job/"]`,
			`[class*="job"] a`,
			`[class*="listing"] a`,
			`[class*="result"] a`,
		},
		WaitTimeout: 20 * time.Second,
		Scroll:      true,
		SettleDelay: 4 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Posting, 0, len(links))
	for _, l := range links {
		out = append(out, s.posting(l.Title, l.URL))
	}
	return capJobs(out), nil
}

// ScrapeStatic is the lightweight retry: one GET, parse whatever job links
// made it into the initial HTML.
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
		if href == "" || len(title) < 3 {
			return
		}
		u := util.AbsoluteURL(Origin, href)
		if seen[u] {
			return
		}
		seen[u] = true
		out = append(out, s.posting(title, u))
	})
	return capJobs(out), nil
}

// One board covers 19 resorts; the resort is the URL path segment before
// /job/, e.g. /palisades/job/123 -> Palisades.
var resortSegment = regexp.MustCompile(`/([^/]+)/job/`)

func (s *Scraper) posting(title, jobURL string) domain.Posting {
	resort := "Alterra Resort"
	if m := resortSegment.FindStringSubmatch(jobURL); m != nil {
		resort = util.TitleCase(strings.ReplaceAll(m[1], "-", " "))
	}
	return domain.Posting{
		Title:     title,
		Resort:    resort,
		Location:  "Various Locations",
		ShiftType: "Seasonal/Year-round",
		URL:       jobURL,
		Category:  "All Departments",
		Company:   domain.CompanyAlterra,
	}
}

func capJobs(in []domain.Posting) []domain.Posting {
	if len(in) > maxJobs {
		return in[:maxJobs]
	}
	return in
}
