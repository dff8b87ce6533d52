package util

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Ski   Instructor \n", "Ski Instructor"},
		{"Vail, CO", "Vail, CO"},
		{"", ""},
		{"\t\n ", ""},
	}
	for _, tc := range cases {
		if got := CleanText(tc.in); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"crystal mountain", "Crystal Mountain"},
		{"deer valley resort", "Deer Valley Resort"},
		{"mammoth", "Mammoth"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	got := Truncate("a long description that keeps going", 10)
	if got != "a long des..." {
		t.Errorf("Truncate = %q", got)
	}
}
