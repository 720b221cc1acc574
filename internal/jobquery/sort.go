package jobquery

import (
	"sort"
	"time"

	"jobboard_backend/internal/models"
)

// SortForDisplay orders jobs for listing views: user-submitted postings
// first, then by posting time descending. Jobs without a posting time sort
// as epoch 0, i.e. last within their tier. The sort is stable, so jobs that
// compare equal keep their input order. A new slice is returned.
func SortForDisplay(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := submissionPriority(&out[i]), submissionPriority(&out[j])
		if pi != pj {
			return pi > pj
		}
		return postedAt(&out[i]).After(postedAt(&out[j]))
	})

	return out
}

// submissionPriority: 1 for jobs posted through the board, 0 for imported
// or seeded listings.
func submissionPriority(j *models.Job) int {
	if j.UserSubmitted() {
		return 1
	}
	return 0
}

func postedAt(j *models.Job) time.Time {
	if j.PostedAt == nil {
		return time.Unix(0, 0)
	}
	return *j.PostedAt
}
