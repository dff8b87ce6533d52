package util

import "strings"

// MatchResort returns the first known resort found in any of the fields.
// Matching is a case-insensitive substring test in both directions, so a
// bare "Killington" location still hits "Killington Resort". Short fields
// are skipped to avoid junk matches. Empty string means no match.
func MatchResort(known []string, fields ...string) string {
	for _, r := range known {
		lr := strings.ToLower(r)
		for _, f := range fields {
			lf := strings.ToLower(strings.TrimSpace(f))
			if lf == "" {
				continue
			}
			if strings.Contains(lf, lr) {
				return r
			}
			if len(lf) >= 4 && strings.Contains(lr, lf) {
				return r
			}
		}
	}
	return ""
}
