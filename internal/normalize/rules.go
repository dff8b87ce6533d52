package normalize

import (
	"strings"

	"skijobs-engine/internal/domain"
)

var (
	seniorKeywords     = []string{"certified", "lead", "coach", "senior"}
	managementKeywords = []string{"director", "manager", "supervisor", "executive"}
)

// difficultyFor maps a lowercased title to a trail-style tier:
// 1 green, 2 blue, 3 black. Management keywords outrank senior ones.
func difficultyFor(title string) int {
	if containsAny(title, managementKeywords) {
		return 3
	}
	if containsAny(title, seniorKeywords) {
		return 2
	}
	return 1
}

var (
	housingKeywords  = []string{"housing", "lodging", "accommodation", "employee housing", "dorm"}
	mountainRoles    = []string{"instructor", "patrol", "lift"}
	visaKeywords     = []string{"international", "j-1", "visa"}
	housingOperators = []domain.Company{domain.CompanyVail, domain.CompanyAlterra, domain.CompanyPowdr}
)

// housingFor guesses whether a posting comes with employee housing.
// Explicit mention wins; otherwise seasonal mountain roles at the major
// operators usually include it, as do international/visa positions.
func housingFor(p domain.Posting, title, category string) bool {
	if containsAny(title, housingKeywords) || containsAny(category, housingKeywords) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ShiftType), "seasonal") &&
		isHousingOperator(p.Company) &&
		containsAny(title, mountainRoles) {
		return true
	}
	return containsAny(title, visaKeywords)
}

func isHousingOperator(c domain.Company) bool {
	for _, op := range housingOperators {
		if c == op {
			return true
		}
	}
	return false
}
