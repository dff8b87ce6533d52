package util

import "testing"

func TestAbsoluteURL(t *testing.T) {
	origin := "https://example.com"
	cases := []struct {
		href string
		want string
	}{
		{"/go/foo", "https://example.com/go/foo"},
		{"go/foo", "https://example.com/go/foo"},
		{"https://other.com/a", "https://other.com/a"},
		{"http://other.com/a", "http://other.com/a"},
		{"//cdn.example.com/asset", "https://cdn.example.com/asset"},
	}
	for _, tc := range cases {
		if got := AbsoluteURL(origin, tc.href); got != tc.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}
