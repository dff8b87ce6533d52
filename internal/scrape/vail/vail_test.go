package vail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"skijobs-engine/internal/domain"
)

const boardHTML = `<!doctype html>
<html><body>
<table>
<tbody>
<tr>
  <td><a href="/job/ski-instructor/123">Ski&nbsp;Instructor</a></td>
  <td>Vail</td>
  <td>Winter Seasonal</td>
  <td>Vail, CO</td>
</tr>
<tr>
  <td><a href="https://jobs.vailresortscareers.com/job/456">Lift Operator</a></td>
  <td>Breckenridge</td>
  <td>Winter Seasonal</td>
  <td>Breckenridge, CO</td>
</tr>
<tr>
  <td><a href="/job/789">Orphan Posting</a></td>
  <td></td>
  <td>Seasonal</td>
  <td>Somewhere</td>
</tr>
</tbody>
</table>
</body></html>`

func TestScrapeCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := New(nil)
	jobs, err := s.ScrapeCategory(context.Background(), Category{
		Label: "Ski & Snowboard School",
		URL:   srv.URL,
	})
	if err != nil {
		t.Fatal(err)
	}

	// the row without a resort is dropped
	if len(jobs) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Title != "Ski Instructor" {
		t.Errorf("Title = %q", j.Title)
	}
	if j.Resort != "Vail" || j.Location != "Vail, CO" || j.ShiftType != "Winter Seasonal" {
		t.Errorf("unexpected fields: %+v", j)
	}
	if j.URL != Origin+"/job/ski-instructor/123" {
		t.Errorf("URL = %q, relative href should resolve against the board origin", j.URL)
	}
	if j.Category != "Ski & Snowboard School" {
		t.Errorf("Category = %q", j.Category)
	}
	if j.Company != domain.CompanyVail {
		t.Errorf("Company = %q", j.Company)
	}

	if jobs[1].URL != "https://jobs.vailresortscareers.com/job/456" {
		t.Errorf("absolute href should pass through, got %q", jobs[1].URL)
	}
}

func TestScrapeCategoryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(nil)
	_, err := s.ScrapeCategory(context.Background(), Category{Label: "X", URL: srv.URL})
	if err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestCategoriesOrder(t *testing.T) {
	if len(Categories) != 6 {
		t.Fatalf("expected 6 department boards, got %d", len(Categories))
	}
	if Categories[0].Label != "Ski & Snowboard School" {
		t.Errorf("ski school must lead the scrape order, got %q", Categories[0].Label)
	}
}
