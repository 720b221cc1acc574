package jobquery

import (
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSortForDisplay_PriorityBeatsRecency(t *testing.T) {
	userID := "11111111-1111-4111-8111-111111111111"
	jobs := []models.Job{
		{PublicID: "B", PostedAt: ts("2024-05-02T00:00:00Z")}, // imported, newer
		{PublicID: "A", PostedAt: ts("2024-05-01T00:00:00Z"), PostedByUserID: &userID}, // user-submitted, older
	}

	got := SortForDisplay(jobs)

	assert.Equal(t, []string{"A", "B"}, publicIDs(got), "a user submission outranks a newer import")
}

func TestSortForDisplay_SourceAloneGrantsPriority(t *testing.T) {
	jobs := []models.Job{
		{PublicID: "imported", PostedAt: ts("2024-05-03T00:00:00Z")},
		{PublicID: "submitted", Source: models.SourceUserSubmitted, PostedAt: ts("2024-05-01T00:00:00Z")},
	}

	got := SortForDisplay(jobs)

	assert.Equal(t, []string{"submitted", "imported"}, publicIDs(got))
}

func TestSortForDisplay_RecencyWithinTier(t *testing.T) {
	jobs := []models.Job{
		{PublicID: "old", PostedAt: ts("2024-01-01T00:00:00Z")},
		{PublicID: "new", PostedAt: ts("2024-06-01T00:00:00Z")},
		{PublicID: "mid", PostedAt: ts("2024-03-01T00:00:00Z")},
	}

	got := SortForDisplay(jobs)

	assert.Equal(t, []string{"new", "mid", "old"}, publicIDs(got))
}

func TestSortForDisplay_MissingPostedAtSortsLast(t *testing.T) {
	jobs := []models.Job{
		{PublicID: "undated"},
		{PublicID: "dated", PostedAt: ts("2024-01-01T00:00:00Z")},
	}

	got := SortForDisplay(jobs)

	assert.Equal(t, []string{"dated", "undated"}, publicIDs(got))
}

func TestSortForDisplay_StableForEqualKeys(t *testing.T) {
	when := ts("2024-05-01T00:00:00Z")
	jobs := []models.Job{
		{PublicID: "first", PostedAt: when},
		{PublicID: "second", PostedAt: when},
		{PublicID: "third"},
		{PublicID: "fourth"},
	}

	got := SortForDisplay(jobs)

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, publicIDs(got),
		"equal-priority jobs with identical or missing timestamps keep input order")
}

func TestSortForDisplay_DoesNotMutateInput(t *testing.T) {
	jobs := []models.Job{
		{PublicID: "old", PostedAt: ts("2024-01-01T00:00:00Z")},
		{PublicID: "new", PostedAt: ts("2024-06-01T00:00:00Z")},
	}

	_ = SortForDisplay(jobs)

	assert.Equal(t, []string{"old", "new"}, publicIDs(jobs))
}
