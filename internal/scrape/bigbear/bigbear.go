// Package bigbear handles the Big Bear Mountain Resort employment page.
// The page is mostly informational copy, so the adapter harvests apply and
// career links and always emits at least one canonical apply entry.
package bigbear

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/util"
)

const (
	Origin  = "https://www.bigbearmountainresort.com"
	pageURL = Origin + "/employment"
	maxJobs = 40
)

type Scraper struct {
	hc *http.Client
}

func New() *Scraper {
	return &Scraper{hc: &http.Client{Timeout: 20 * time.Second}}
}

func (s *Scraper) Name() string { return "bigbear" }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	doc, err := util.FetchDocument(ctx, s.hc, pageURL)
	if err != nil {
		return nil, err
	}

	var out []domain.Posting
	seen := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		text := util.CleanText(a.Text())
		u := util.AbsoluteURL(Origin, href)
		if seen[u] {
			return
		}
		blob := strings.ToLower(u + " " + text)
		if !strings.Contains(blob, "apply") &&
			!strings.Contains(blob, "employment") &&
			!strings.Contains(blob, "career") &&
			!strings.Contains(blob, "job") {
			return
		}
		seen[u] = true
		title := text
		if len(title) < 3 {
			title = "Apply to Work at Big Bear Mountain Resort"
		}
		out = append(out, s.posting(title, u))
	})

	// page sometimes carries only informational copy; keep one actionable entry
	if len(out) == 0 {
		out = append(out, s.posting("Apply to Work at Big Bear Mountain Resort", pageURL))
	}
	if len(out) > maxJobs {
		out = out[:maxJobs]
	}
	return out, nil
}

func (s *Scraper) posting(title, u string) domain.Posting {
	return domain.Posting{
		Title:     title,
		Resort:    "Big Bear Mountain Resort",
		Location:  "Big Bear Lake, CA",
		ShiftType: "Seasonal/Year-round",
		URL:       u,
		Category:  "All Departments",
		Company:   domain.CompanyAlterra,
	}
}
