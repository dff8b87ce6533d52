// Package workday scrapes single-resort Workday career boards. Several
// operators park individual resorts on their own Workday tenant site, all
// with the same rendered markup, so one adapter covers them via Board.
package workday

import (
	"context"
	"time"

	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/scrape/render"
)

// Board identifies one Workday career site and the fixed resort it serves.
type Board struct {
	Source          string // aggregator source name
	URL             string
	Origin          string
	Resort          string
	DefaultLocation string // used when a row carries no location
	Company         domain.Company
	Limit           int
}

// Alterra runs Mammoth and Deer Valley on dedicated Workday boards separate
// from the company-wide feed.
var (
	Mammoth = Board{
		Source:          "mammoth",
		URL:             "https://alterra.wd1.myworkdayjobs.com/MammothMountain",
		Origin:          "https://alterra.wd1.myworkdayjobs.com",
		Resort:          "Mammoth Mountain",
		DefaultLocation: "Mammoth Lakes, CA",
		Company:         domain.CompanyAlterra,
		Limit:           150,
	}
	DeerValley = Board{
		Source:          "deervalley",
		URL:             "https://alterra.wd1.myworkdayjobs.com/DeerValleyResort",
		Origin:          "https://alterra.wd1.myworkdayjobs.com",
		Resort:          "Deer Valley Resort",
		DefaultLocation: "Park City, UT",
		Company:         domain.CompanyAlterra,
		Limit:           150,
	}
)

type Scraper struct {
	board Board
}

func New(b Board) *Scraper { return &Scraper{board: b} }

func (s *Scraper) Name() string { return s.board.Source }

func (s *Scraper) Scrape(ctx context.Context) ([]domain.Posting, error) {
	links, err := render.CollectLinks(ctx, render.Options{
		URL:           s.board.URL,
		Origin:        s.board.Origin,
		LinkPattern:   "/job/",
		WaitSelectors: []string{`a[href*="/job/"]`},
		WaitTimeout:   15 * time.Second,
		SettleDelay:   3 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Posting, 0, len(links))
	for _, l := range links {
		loc := l.Location
		if loc == "" {
			loc = s.board.DefaultLocation
		}
		out = append(out, domain.Posting{
			Title:     l.Title,
			Resort:    s.board.Resort,
			Location:  loc,
			ShiftType: "Seasonal/Year-round",
			URL:       l.URL,
			Category:  "All Departments",
			Company:   s.board.Company,
		})
	}
	if s.board.Limit > 0 && len(out) > s.board.Limit {
		out = out[:s.board.Limit]
	}
	return out, nil
}
