// Package render drives a headless browser for career boards that only
// build their job list client-side (Workday, Angular, ADP, UltiPro).
package render

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options describes one rendered-page collection pass.
type Options struct {
	URL           string
	Origin        string        // base for resolving relative hrefs in-page
	LinkPattern   string        // href substring marking a job link, e.g. "/job/"; "|" separates alternatives
	WaitSelectors []string      // candidate selectors; any one appearing is enough
	WaitTimeout   time.Duration // bounded wait for WaitSelectors
	Scroll        bool          // scroll to the bottom to trigger lazy lists
	SettleDelay   time.Duration // extra settle time after navigation
}

// Link is one job anchor pulled out of the rendered DOM.
type Link struct {
	Title    string
	Location string
	URL      string
}

// collectScript runs in-page. It resolves hrefs against the origin, keeps
// anchors matching the pattern, dedupes by resolved URL, and pulls the title
// and location from the enclosing row when the anchor text is empty.
const collectScript = `({ origin, pattern }) => {
  const out = [];
  const seen = new Set();
  document.querySelectorAll('a[href]').forEach((a) => {
    const href = a.href || a.getAttribute('href') || '';
    if (!href) return;
    const url = href.startsWith('http') ? href : origin + (href.startsWith('/') ? href : '/' + href);
    if (!pattern.split('|').some((p) => url.includes(p)) || seen.has(url)) return;
    const row = a.closest('li, tr, [role="row"], [role="listitem"], [class*="job"], [class*="result"], [class*="listing"]');
    let title = (a.textContent || '').trim();
    if (!title && row) {
      const el = row.querySelector('[class*="title"], h2, h3, [data-automation-id="jobPosting"]');
      title = ((el && el.textContent) || '').trim();
    }
    if (!title || title.length < 3 || title.length > 150) return;
    let location = '';
    if (row) {
      const el = row.querySelector('[data-automation-id="locations"], .location, [class*="location"]');
      location = ((el && el.textContent) || '').trim();
    }
    seen.add(url);
    out.push({ title, location, url });
  });
  return out;
}`

// CollectLinks navigates a fresh headless browser to opts.URL and harvests
// job links from the rendered DOM. Each call launches and owns a private
// browser instance; it is released on every exit path. The context is
// honored between steps, not mid-navigation.
func CollectLinks(ctx context.Context, opts Options) ([]Link, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("playwright start: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     []string{"--no-sandbox", "--disable-setuid-sandbox"},
	})
	if err != nil {
		return nil, fmt.Errorf("chromium launch: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	})
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}

	if _, err := page.Goto(opts.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("goto %s: %w", opts.URL, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Wait for any candidate selector; tolerate not-found and extract anyway.
	if len(opts.WaitSelectors) > 0 {
		wait := opts.WaitTimeout
		if wait <= 0 {
			wait = 15 * time.Second
		}
		sel := opts.WaitSelectors[0]
		for _, s := range opts.WaitSelectors[1:] {
			sel += ", " + s
		}
		if _, err := page.WaitForSelector(sel, playwright.PageWaitForSelectorOptions{
			Timeout: playwright.Float(float64(wait.Milliseconds())),
		}); err != nil {
			// selector never showed up; the page may still hold links
		}
	}

	if opts.SettleDelay > 0 {
		select {
		case <-time.After(opts.SettleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if opts.Scroll {
		if _, err := page.Evaluate(`() => window.scrollTo(0, document.body.scrollHeight)`); err == nil {
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	raw, err := page.Evaluate(collectScript, map[string]interface{}{
		"origin":  opts.Origin,
		"pattern": opts.LinkPattern,
	})
	if err != nil {
		return nil, fmt.Errorf("extract links: %w", err)
	}
	return decodeLinks(raw), nil
}

func decodeLinks(raw interface{}) []Link {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]Link, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		l := Link{
			Title:    asString(m["title"]),
			Location: asString(m["location"]),
			URL:      asString(m["url"]),
		}
		if l.Title == "" || l.URL == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
