package domain

// Company is the resort operator a posting came from.
type Company string

const (
	CompanyVail    Company = "Vail"
	CompanyAlterra Company = "Alterra"
	CompanyBoyne   Company = "Boyne"
	CompanyPowdr   Company = "Powdr"
	CompanyOther   Company = "Other"
)

// DisplayName is the operator's full name for generated copy. CompanyOther
// has no fixed name; callers substitute the resort name instead.
func (c Company) DisplayName() string {
	switch c {
	case CompanyVail:
		return "Vail Resorts"
	case CompanyAlterra:
		return "Alterra Mountain Company"
	case CompanyBoyne:
		return "Boyne Resorts"
	case CompanyPowdr:
		return "Powdr"
	default:
		return "the resort"
	}
}

// Posting is one job as extracted from a career site, before normalization.
type Posting struct {
	Title       string
	Resort      string
	Location    string
	ShiftType   string
	URL         string
	Category    string
	Company     Company
	Description string // optional; most sources don't provide one
}

// Job is the canonical record persisted and served to the UI.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Resort       string   `json:"resort"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Difficulty   int      `json:"difficulty"` // 1 green, 2 blue, 3 black
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
	URL          string   `json:"url"`
	Company      Company  `json:"company"`
	Housing      bool     `json:"housing"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}
