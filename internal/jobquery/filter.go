package jobquery

import (
	"strings"

	"jobboard_backend/internal/models"
)

// Filter carries the optional listing criteria. All set criteria are
// combined with AND; zero values are no-ops, so the zero Filter (with
// IncludeExpired true) is the identity.
type Filter struct {
	Location        string // case-insensitive substring
	Company         string // case-insensitive substring
	EmploymentType  string // exact, case-sensitive
	ExperienceRange string // exact bracket label
	IncludeExpired  bool   // false drops jobs with Expired == true
}

// Apply narrows jobs by the filter. The input slice is never mutated; the
// result is a fresh slice preserving input order.
func (f Filter) Apply(jobs []models.Job) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if f.matches(&job) {
			out = append(out, job)
		}
	}
	return out
}

func (f Filter) matches(j *models.Job) bool {
	if !f.IncludeExpired && j.Expired {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Company != "" && !containsFold(j.Company, f.Company) {
		return false
	}
	if f.EmploymentType != "" && j.EmploymentType != f.EmploymentType {
		return false
	}
	if f.ExperienceRange != "" && j.ExperienceRange != f.ExperienceRange {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
