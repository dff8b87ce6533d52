package util

import "testing"

func TestMatchResort(t *testing.T) {
	known := []string{"Big Sky", "Killington", "Sunday River"}

	cases := []struct {
		name   string
		fields []string
		want   string
	}{
		{"resort inside field", []string{"Big Sky Resort, MT"}, "Big Sky"},
		{"field inside resort", []string{"Killington Resort"}, "Killington"},
		{"match from second field", []string{"Lift Operator", "Sunday River, ME"}, "Sunday River"},
		{"no match", []string{"Somewhere Else"}, ""},
		{"short junk field skipped", []string{"Sky"}, ""},
		{"empty fields", []string{"", "  "}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchResort(known, tc.fields...); got != tc.want {
				t.Errorf("MatchResort(%v) = %q, want %q", tc.fields, got, tc.want)
			}
		})
	}
}
