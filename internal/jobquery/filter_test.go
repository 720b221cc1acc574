package jobquery

import (
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{PublicID: "JOB-1", Title: "Go Engineer", Company: "Acme Corp", Location: "Remote (Europe)", EmploymentType: "Full-time", ExperienceRange: "0-5 years"},
		{PublicID: "JOB-2", Title: "SRE", Company: "Globex", Location: "Berlin", EmploymentType: "Contract", ExperienceRange: "5-10 years"},
		{PublicID: "JOB-3", Title: "Data Engineer", Company: "Initech", Location: "remote", EmploymentType: "Full-time", ExperienceRange: "0-5 years", Expired: true},
		{PublicID: "JOB-4", Title: "Frontend Dev", Company: "Acme Labs", Location: "London", EmploymentType: "Part-time", ExperienceRange: "0-5 years"},
	}
}

func publicIDs(jobs []models.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.PublicID)
	}
	return ids
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	jobs := sampleJobs()

	got := Filter{IncludeExpired: true}.Apply(jobs)

	assert.Equal(t, publicIDs(jobs), publicIDs(got), "no criteria must return the input unchanged and in order")
}

func TestFilter_ExpiredExcludedByDefault(t *testing.T) {
	got := Filter{}.Apply(sampleJobs())

	assert.Equal(t, []string{"JOB-1", "JOB-2", "JOB-4"}, publicIDs(got))
}

func TestFilter_LocationSubstringCaseInsensitive(t *testing.T) {
	got := Filter{Location: "Remote", IncludeExpired: true}.Apply(sampleJobs())

	// Matches both "Remote (Europe)" and lowercase "remote"
	assert.Equal(t, []string{"JOB-1", "JOB-3"}, publicIDs(got))
}

func TestFilter_CompanySubstringCaseInsensitive(t *testing.T) {
	got := Filter{Company: "acme"}.Apply(sampleJobs())

	assert.Equal(t, []string{"JOB-1", "JOB-4"}, publicIDs(got))
}

func TestFilter_EmploymentTypeExactMatch(t *testing.T) {
	got := Filter{EmploymentType: "Full-time"}.Apply(sampleJobs())
	assert.Equal(t, []string{"JOB-1"}, publicIDs(got))

	// Exact means case-sensitive; no normalization happens here
	got = Filter{EmploymentType: "full-time"}.Apply(sampleJobs())
	assert.Empty(t, got)
}

func TestFilter_ExperienceBracketExactMatch(t *testing.T) {
	got := Filter{ExperienceRange: "5-10 years"}.Apply(sampleJobs())
	assert.Equal(t, []string{"JOB-2"}, publicIDs(got))
}

func TestFilter_CriteriaCombineWithAND(t *testing.T) {
	got := Filter{Company: "acme", EmploymentType: "Part-time"}.Apply(sampleJobs())
	assert.Equal(t, []string{"JOB-4"}, publicIDs(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	original := make([]models.Job, len(jobs))
	copy(original, jobs)

	_ = Filter{Location: "berlin"}.Apply(jobs)

	assert.Equal(t, original, jobs)
}
