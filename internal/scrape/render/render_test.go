package render

import (
	"context"
	"testing"
	"time"
)

func TestDecodeLinks(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"title": "Ski Instructor", "location": "Vail, CO", "url": "https://example.com/job/1"},
		map[string]interface{}{"title": "", "location": "", "url": "https://example.com/job/2"}, // no title, dropped
		map[string]interface{}{"title": "Cook", "url": ""},                                      // no url, dropped
		"not a map",
		map[string]interface{}{"title": "Lift Operator", "url": "https://example.com/job/3"},
	}

	links := decodeLinks(raw)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Title != "Ski Instructor" || links[0].Location != "Vail, CO" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if links[1].URL != "https://example.com/job/3" {
		t.Errorf("links[1] = %+v", links[1])
	}
}

func TestDecodeLinksNonSlice(t *testing.T) {
	if got := decodeLinks("garbage"); got != nil {
		t.Fatalf("expected nil for non-slice input, got %v", got)
	}
	if got := decodeLinks(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %v", got)
	}
}

// integration test: launches a real headless browser
func TestCollectLinksReal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	links, err := CollectLinks(ctx, Options{
		URL:         "https://careers.boyneresorts.com/all/jobs",
		Origin:      "https://careers.boyneresorts.com",
		LinkPattern: "/job",
		WaitTimeout: 15 * time.Second,
	})
	if err != nil {
		t.Skipf("browser unavailable or site unreachable: %v", err)
	}
	t.Logf("collected %d links", len(links))
}
