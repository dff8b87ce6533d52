package scrape

import (
	"context"
	"errors"
	"testing"

	"skijobs-engine/internal/domain"
)

type fakeSource struct {
	name string
	jobs []domain.Posting
	err  error
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Scrape(ctx context.Context) ([]domain.Posting, error) {
	return f.jobs, f.err
}

type fakeFallback struct {
	fakeSource
	static []domain.Posting
}

func (f fakeFallback) ScrapeStatic(ctx context.Context) ([]domain.Posting, error) {
	return f.static, nil
}

func posting(title string) domain.Posting {
	return domain.Posting{Title: title, Resort: "R"}
}

func TestRunIsolatesFailures(t *testing.T) {
	r := &Runner{}
	out := r.run(context.Background(), []Source{
		fakeSource{name: "a", jobs: []domain.Posting{posting("a1")}},
		fakeSource{name: "b", err: errors.New("boom")},
		fakeSource{name: "c", jobs: []domain.Posting{posting("c1")}},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(out))
	}
	if out[0].Title != "a1" || out[1].Title != "c1" {
		t.Fatalf("unexpected order: %v", out)
	}
}

func TestRunConcatOrderIsFixed(t *testing.T) {
	r := &Runner{}
	out := r.run(context.Background(), []Source{
		fakeSource{name: "first", jobs: []domain.Posting{posting("f1"), posting("f2")}},
		fakeSource{name: "second", jobs: []domain.Posting{posting("s1")}},
		fakeSource{name: "third", jobs: []domain.Posting{posting("t1")}},
	})

	want := []string{"f1", "f2", "s1", "t1"}
	if len(out) != len(want) {
		t.Fatalf("expected %d postings, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i].Title != w {
			t.Errorf("out[%d] = %q, want %q", i, out[i].Title, w)
		}
	}
}

func TestRunStaticFallbackOnEmpty(t *testing.T) {
	r := &Runner{}
	out := r.run(context.Background(), []Source{
		fakeFallback{
			fakeSource: fakeSource{name: "rendered"},
			static:     []domain.Posting{posting("static1")},
		},
	})

	if len(out) != 1 || out[0].Title != "static1" {
		t.Fatalf("expected static fallback result, got %v", out)
	}
}

func TestRunFallbackNotUsedWhenRenderedSucceeds(t *testing.T) {
	r := &Runner{}
	out := r.run(context.Background(), []Source{
		fakeFallback{
			fakeSource: fakeSource{name: "rendered", jobs: []domain.Posting{posting("live1")}},
			static:     []domain.Posting{posting("static1")},
		},
	})

	if len(out) != 1 || out[0].Title != "live1" {
		t.Fatalf("expected rendered result, got %v", out)
	}
}
