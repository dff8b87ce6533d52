package normalize

import (
	"strings"

	"skijobs-engine/internal/domain"
)

const defaultImage = "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800&q=80"

var resortImages = map[string]string{
	"Beaver Creek": "https://images.unsplash.com/photo-1605540436563-5bca919ae766?w=800&q=80",
	"Vail":         "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800&q=80",
	"Breckenridge": "https://images.unsplash.com/photo-1551524559-8af4e6624178?w=800&q=80",
	"Heavenly":     "https://images.unsplash.com/photo-1519315901367-f34ff9154487?w=800&q=80",
	"Northstar":    "https://images.unsplash.com/photo-1454496522488-7a8e488e8606?w=800&q=80",
	"Kirkwood":     "https://images.unsplash.com/photo-1418985991508-e47386d96a71?w=800&q=80",
	"Park City":    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80",
}

// imageFor looks the resort's first word up in the stock-photo map.
// Multi-word keys like "Beaver Creek" therefore never match and fall to the
// default; kept as-is for output compatibility.
func imageFor(resort string) string {
	key := resort
	if i := strings.IndexByte(resort, ' '); i >= 0 {
		key = resort[:i]
	}
	if img, ok := resortImages[key]; ok {
		return img
	}
	return defaultImage
}

func requirementsFor(title, category string) []string {
	first := "Experience preferred"
	if strings.Contains(title, "certified") {
		first = "PSIA/AASI Certification required"
	}
	second := "Physical fitness required"
	if strings.Contains(category, "ski") {
		second = "Intermediate+ skiing/riding ability"
	}
	return []string{
		first,
		second,
		"Excellent customer service skills",
		"Flexible schedule availability",
	}
}

func passBenefit(c domain.Company) string {
	switch c {
	case domain.CompanyVail:
		return "Free Epic Pass (ski 41+ resorts worldwide)"
	case domain.CompanyAlterra:
		return "Free Ikon Pass (ski 50+ resorts worldwide)"
	case domain.CompanyPowdr:
		return "Season pass at Powdr resorts (Copper, Killington, Snowbird, etc.)"
	case domain.CompanyOther:
		return "Resort benefits"
	default:
		return "Season pass benefits"
	}
}

func benefitsFor(c domain.Company, category string, housing bool) []string {
	training := "On-the-job training"
	if strings.Contains(category, "ski") {
		training = "Free training & certification reimbursement"
	}
	out := []string{
		passBenefit(c),
		"20-40% retail discounts",
		training,
		"Health & wellness benefits",
	}
	if housing {
		out = append(out, "Employee housing available or assistance")
	}
	return out
}
