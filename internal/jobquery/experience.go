package jobquery

// ExperienceBrackets is the closed list of labels the experience filter
// matches against. Submissions are normalized onto this list so free-form
// input and the filter's value domain always intersect.
var ExperienceBrackets = []string{
	"0-5 years",
	"5-10 years",
	"10-15 years",
	"15+ years",
}

// KnownExperienceBracket reports whether label is one of the canonical brackets.
func KnownExperienceBracket(label string) bool {
	for _, b := range ExperienceBrackets {
		if b == label {
			return true
		}
	}
	return false
}

// NormalizeExperience maps a raw label or a min/max pair onto a canonical
// bracket. A recognized raw label wins; otherwise the bracket is derived
// from maxYears.
func NormalizeExperience(raw string, maxYears int) string {
	if KnownExperienceBracket(raw) {
		return raw
	}
	switch {
	case maxYears <= 5:
		return "0-5 years"
	case maxYears <= 10:
		return "5-10 years"
	case maxYears <= 15:
		return "10-15 years"
	default:
		return "15+ years"
	}
}
