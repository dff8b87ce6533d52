package normalize

import "strings"

// Salary bands are fixed industry-standard estimates keyed on role family,
// not derived from any live wage data. Rules run top-down; first match wins.

type salaryInput struct {
	title      string // lowercased
	category   string // lowercased
	difficulty int
}

type salaryRule struct {
	applies func(salaryInput) bool
	amount  func(salaryInput) string
}

func fixed(s string) func(salaryInput) string {
	return func(salaryInput) string { return s }
}

func titleHas(in salaryInput, needles ...string) bool {
	return containsAny(in.title, needles)
}

var salaryRules = []salaryRule{
	// management and directors
	{
		applies: func(in salaryInput) bool {
			return in.difficulty == 3 || titleHas(in, "director", "manager")
		},
		amount: fixed("$50,000 - $80,000/year"),
	},
	// ski/snowboard instructors, the most common role on the mountain
	{
		applies: func(in salaryInput) bool {
			return titleHas(in, "instructor") ||
				strings.Contains(in.category, "ski") ||
				strings.Contains(in.category, "snowboard school")
		},
		amount: func(in salaryInput) string {
			switch {
			case titleHas(in, "certified", "level 2", "level 3"):
				return "$20 - $35/hour"
			case titleHas(in, "children", "kids"):
				return "$18 - $25/hour"
			default:
				return "$16 - $24/hour"
			}
		},
	},
	// ski patrol: higher paying, requires certification
	{
		applies: func(in salaryInput) bool { return titleHas(in, "patrol") },
		amount:  fixed("$18 - $28/hour"),
	},
	// lift operations
	{
		applies: func(in salaryInput) bool { return titleHas(in, "lift") },
		amount:  fixed("$15 - $19/hour"),
	},
	// food service and restaurants
	{
		applies: func(in salaryInput) bool {
			return strings.Contains(in.category, "restaurant") ||
				titleHas(in, "cook", "chef", "server", "bartender", "food")
		},
		amount: func(in salaryInput) string {
			switch {
			case titleHas(in, "chef", "sous", "executive"):
				return "$45,000 - $65,000/year"
			case titleHas(in, "cook", "line"):
				return "$16 - $22/hour"
			case titleHas(in, "server", "bartender"):
				return "$13 - $16/hour + tips"
			default:
				return "$15 - $19/hour"
			}
		},
	},
	// retail
	{
		applies: func(in salaryInput) bool {
			return strings.Contains(in.category, "retail") || titleHas(in, "retail", "shop")
		},
		amount: func(in salaryInput) string {
			if titleHas(in, "manager", "lead") {
				return "$18 - $25/hour"
			}
			return "$14 - $18/hour"
		},
	},
	// hotel and hospitality
	{
		applies: func(in salaryInput) bool {
			return strings.Contains(in.category, "hotel") ||
				titleHas(in, "front desk", "housekeeping", "guest service", "concierge")
		},
		amount: func(in salaryInput) string {
			switch {
			case titleHas(in, "manager"):
				return "$45,000 - $60,000/year"
			case titleHas(in, "front desk", "concierge"):
				return "$16 - $22/hour"
			default:
				return "$15 - $19/hour"
			}
		},
	},
	// transportation: shuttles and bus routes; CDL drivers earn more
	{
		applies: func(in salaryInput) bool {
			return strings.Contains(in.category, "transportation") ||
				titleHas(in, "driver", "shuttle", "bus")
		},
		amount: fixed("$17 - $24/hour"),
	},
	// mountain operations: grooming, snowmaking, maintenance
	{
		applies: func(in salaryInput) bool {
			return strings.Contains(in.category, "mountain") ||
				titleHas(in, "groomer", "snowmaking", "maintenance", "mechanic")
		},
		amount: func(in salaryInput) string {
			if titleHas(in, "mechanic", "groomer") {
				return "$20 - $32/hour"
			}
			return "$16 - $24/hour"
		},
	},
}

const defaultSalary = "$15 - $22/hour"

func salaryFor(title, category string, difficulty int) string {
	in := salaryInput{title: title, category: category, difficulty: difficulty}
	for _, r := range salaryRules {
		if r.applies(in) {
			return r.amount(in)
		}
	}
	return defaultSalary
}
