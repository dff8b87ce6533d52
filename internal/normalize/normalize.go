// Package normalize maps raw postings into canonical jobs, filling in the
// attributes the career sites never publish (difficulty tier, salary band,
// housing) from keyword heuristics over title and category.
package normalize

import (
	"fmt"
	"strings"

	"skijobs-engine/internal/domain"
)

// Convert is pure: no I/O, same input gives same output. Input order is
// preserved and drives both the id suffix and the featured flag.
func Convert(in []domain.Posting) []domain.Job {
	out := make([]domain.Job, 0, len(in))
	for i, p := range in {
		out = append(out, convertOne(p, i))
	}
	return out
}

func convertOne(p domain.Posting, idx int) domain.Job {
	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)

	difficulty := difficultyFor(title)
	housing := housingFor(p, title, category)

	company := strings.ToLower(string(p.Company))
	if company == "" {
		company = "job"
	}

	description := p.Description
	if description == "" {
		description = fmt.Sprintf(
			"Join the team at %s! This is an excellent opportunity to work at one of %s's world-class ski destinations.",
			p.Resort, companyName(p))
	}

	return domain.Job{
		ID:           fmt.Sprintf("%s-%d", company, idx+1),
		Title:        p.Title,
		Resort:       p.Resort,
		Location:     p.Location,
		Salary:       salaryFor(title, category, difficulty),
		Type:         p.ShiftType,
		Difficulty:   difficulty,
		Image:        imageFor(p.Resort),
		Featured:     idx < 3,
		URL:          p.URL,
		Company:      p.Company,
		Housing:      housing,
		Description:  description,
		Requirements: requirementsFor(title, category),
		Benefits:     benefitsFor(p.Company, category, housing),
	}
}

func companyName(p domain.Posting) string {
	if p.Company == domain.CompanyOther {
		return p.Resort
	}
	return p.Company.DisplayName()
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
