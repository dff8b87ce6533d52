package util

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves href against origin. Absolute and protocol-relative
// hrefs pass through; anything else is joined to the origin.
func AbsoluteURL(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	base, err := url.Parse(origin)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		if !strings.HasPrefix(href, "/") {
			href = "/" + href
		}
		return strings.TrimRight(origin, "/") + href
	}
	return base.ResolveReference(ref).String()
}
