package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skijobs-engine/internal/cache"
	"skijobs-engine/internal/config"
	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/refresh"
	"skijobs-engine/internal/scrape"
)

func cachedDeps(t *testing.T) Deps {
	t.Helper()
	c := cache.New(time.Hour)
	c.Put([]domain.Job{
		{ID: "vail-1", Title: "Ski Instructor", Resort: "Vail", Company: domain.CompanyVail},
		{ID: "alterra-2", Title: "Line Cook", Resort: "Mammoth Mountain", Company: domain.CompanyAlterra},
	})
	runner := scrape.NewRunner(config.Config{})
	return Deps{
		Cache:   c,
		Runner:  runner,
		Refresh: refresh.New(runner, c, nil),
		RefreshToken: func() (string, error) {
			return "sekrit", nil
		},
	}
}

func TestJobsFromCache(t *testing.T) {
	mux := NewMux(cachedDeps(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env jobsEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Source != "cache" || env.Count != 2 {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestJobsFilter(t *testing.T) {
	mux := NewMux(cachedDeps(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs?q=instructor", nil))

	var env jobsEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Count != 1 || env.Jobs[0].ID != "vail-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestJobsMethodNotAllowed(t *testing.T) {
	mux := NewMux(cachedDeps(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/jobs", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestScrapeRunUnknownSource(t *testing.T) {
	mux := NewMux(cachedDeps(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scrape/run?source=nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "vail") {
		t.Fatalf("error should list valid sources, got %s", rec.Body.String())
	}
}

func TestScrapeCategories(t *testing.T) {
	mux := NewMux(cachedDeps(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scrape/categories", nil))

	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(out))
	}
	if !strings.Contains(out["Ski & Snowboard School"], "vailresortscareers.com") {
		t.Fatalf("categories = %v", out)
	}
}

func TestRefreshAuth(t *testing.T) {
	deps := cachedDeps(t)
	mux := NewMux(deps)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d", rec.Code)
	}
}

func TestRefreshTokenUnavailable(t *testing.T) {
	deps := cachedDeps(t)
	deps.RefreshToken = func() (string, error) { return "", errors.New("no keychain") }
	mux := NewMux(deps)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer anything")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}
