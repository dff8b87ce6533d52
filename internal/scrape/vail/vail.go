// Package vail scrapes the Vail Resorts career board. The board is
// server-rendered: each department page carries a plain job table, so a
// lightweight GET plus HTML parse is enough. Departments are fetched one at
// a time, paced by the host limiter, to stay inside the single origin's
// rate tolerance.
package vail

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/util"
)

const Origin = "https://jobs.vailresortscareers.com"

// Category is one department board on the Vail careers site.
type Category struct {
	Label string
	URL   string
}

// Categories lists every department board in scrape order.
var Categories = []Category{
	{"Ski & Snowboard School", Origin + "/go/Ski-&-Snowboard-School/7906500/"},
	{"Restaurant Operations", Origin + "/go/Restaurant-Operations/7906600/"},
	{"Hotel Operations", Origin + "/go/Hotel-Operations/7906700/"},
	{"Mountain Operations", Origin + "/go/Mountain-Operations/7906300/"},
	{"Transportation", Origin + "/go/Transportation/7906400/"},
	{"Retail Operations", Origin + "/go/Retail-Operations/7906800/"},
}

type Scraper struct {
	hc      *http.Client
	limiter *util.HostLimiter

	// DescriptionLimit caps how many postings per category get their
	// description page fetched. Zero disables hydration.
	DescriptionLimit int
}

func New(limiter *util.HostLimiter) *Scraper {
	return &Scraper{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "vail" }

// Scrape walks every department board sequentially. A failed department
// yields nothing for that department only.
func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	var out []domain.Posting
	for _, c := range Categories {
		jobs, err := s.ScrapeCategory(ctx, c)
		if err != nil {
			log.Printf("[vail] category %q: %v", c.Label, err)
			continue
		}
		log.Printf("[vail] category %q: %d jobs", c.Label, len(jobs))
		out = append(out, jobs...)
	}
	return out, nil
}

// SkiSchool scrapes only the ski school board.
func (s *Scraper) SkiSchool(ctx context.Context) ([]domain.Posting, error) {
	return s.ScrapeCategory(ctx, Categories[0])
}

// ScrapeCategory fetches one department board and extracts its job table.
// Table columns: title (with link), resort, shift type, location.
func (s *Scraper) ScrapeCategory(ctx context.Context, c Category) ([]domain.Posting, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, c.URL); err != nil {
			return nil, err
		}
	}

	doc, err := util.FetchDocument(ctx, s.hc, c.URL)
	if err != nil {
		return nil, err
	}

	var out []domain.Posting
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		link := cells.Eq(0).Find("a").First()

		title := util.CleanText(link.Text())
		href, _ := link.Attr("href")
		resort := util.CleanText(cells.Eq(1).Text())
		shift := util.CleanText(cells.Eq(2).Text())
		location := util.CleanText(cells.Eq(3).Text())

		if title == "" || resort == "" {
			return
		}
		out = append(out, domain.Posting{
			Title:     title,
			Resort:    resort,
			Location:  location,
			ShiftType: shift,
			URL:       util.AbsoluteURL(Origin, href),
			Category:  c.Label,
			Company:   domain.CompanyVail,
		})
	})

	if s.DescriptionLimit > 0 {
		for i := range out {
			if i >= s.DescriptionLimit {
				break
			}
			out[i].Description = s.description(ctx, out[i].URL)
		}
	}
	return out, nil
}

// Selectors tried in order on an individual posting page.
var descriptionSelectors = []string{
	".job-description",
	"#job-description",
	`[class*="description"]`,
	`[class*="job-details"]`,
	".jobdescription",
	`div[itemprop="description"]`,
}

// description fetches a posting's own page and pulls a short summary.
// Best-effort: any failure yields a fixed fallback line.
func (s *Scraper) description(ctx context.Context, jobURL string) string {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, jobURL); err != nil {
			return "Click to view full job details."
		}
	}
	hc := &http.Client{Timeout: 5 * time.Second}
	doc, err := util.FetchDocument(ctx, hc, jobURL)
	if err != nil {
		log.Printf("[vail] description %s: %v", jobURL, err)
		return "Click to view full job details."
	}

	var text string
	for _, sel := range descriptionSelectors {
		t := util.CleanText(doc.Find(sel).First().Text())
		if len(t) > 50 {
			text = t
			break
		}
	}
	if text == "" {
		// fall back to the first few substantial paragraphs
		count := 0
		doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			t := util.CleanText(p.Text())
			if len(t) > 50 {
				if text != "" {
					text += " "
				}
				text += t
				count++
			}
			return count < 3
		})
	}
	if text == "" {
		return "Job description available on application page."
	}
	return util.Truncate(text, 200)
}
