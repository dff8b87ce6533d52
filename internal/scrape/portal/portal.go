// Package portal scrapes hosted ATS portals (ADP, UltiPro, Paycom) that
// serve a single resort's postings from a client-rendered page. The portals
// differ only in URL and link shape, so one adapter covers them.
package portal

import (
	"context"
	"net/url"
	"time"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/render"
)

type Portal struct {
	Source        string
	URL           string
	LinkPattern   string
	WaitSelectors []string
	Resort        string
	Location      string
	Company       domain.Company
	Limit         int
}

var (
	JacksonHole = Portal{
		Source:      "jacksonhole",
		URL:         "https://myjobs.adp.com/jhmremploymentcenter/cx/job-listing",
		LinkPattern: "job",
		Resort:      "Jackson Hole Mountain Resort",
		Location:    "Teton Village, WY",
		Company:     domain.CompanyOther,
		Limit:       150,
	}
	SunValley = Portal{
		Source:      "sunvalley",
		URL:         "https://recruiting2.ultipro.com/GRA1027GAMH/JobBoard/fea69ac9-edad-4702-8369-9285d60cc4f0/?q=&o=postedDateDesc",
		LinkPattern: "JobBoard",
		Resort:      "Sun Valley Resort",
		Location:    "Sun Valley, ID",
		Company:     domain.CompanyOther,
		Limit:       150,
	}
	Paycom = Portal{
		Source:      "paycom",
		URL:         "https://www.paycomonline.net/v4/ats/web.php/portal/90FB33A7DE87561260286F9271F860DB/career-page",
		LinkPattern: "career|job",
		Resort:      "Resort",
		Location:    "Various",
		Company:     domain.CompanyOther,
		Limit:       100,
	}
)

type Scraper struct {
	portal Portal
	origin string
}

func New(p Portal) *Scraper {
	origin := p.URL
	if u, err := url.Parse(p.URL); err == nil {
		origin = u.Scheme + "://" + u.Host
	}
	return &Scraper{portal: p, origin: origin}
}

func (s *Scraper) Name() string { return s.portal.Source }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	links, err := render.CollectLinks(ctx, render.Options{
		URL:           s.portal.URL,
		Origin:        s.origin,
		LinkPattern:   s.portal.LinkPattern,
		WaitSelectors: s.portal.WaitSelectors,
		SettleDelay:   4 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Posting, 0, len(links))
	for _, l := range links {
		loc := l.Location
		if loc == "" {
			loc = s.portal.Location
		}
		out = append(out, domain.Posting{
			Title:     l.Title,
			Resort:    s.portal.Resort,
			Location:  loc,
			ShiftType: "Seasonal/Year-round",
			URL:       l.URL,
			Category:  "All Departments",
			Company:   s.portal.Company,
		})
	}
	if s.portal.Limit > 0 && len(out) > s.portal.Limit {
		out = out[:s.portal.Limit]
	}
	return out, nil
}
