package jobquery

import (
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolve_StorageIDBranch(t *testing.T) {
	tests := []struct {
		name           string
		identifier     string
		wantStorageID  bool
		wantClauseArgs int
	}{
		{
			name:           "public job id is not a uuid",
			identifier:     "JOB-1715000000000-42",
			wantStorageID:  false,
			wantClauseArgs: 2,
		},
		{
			name:           "uuid enables the storage id branch",
			identifier:     "8f14e45f-ceea-4672-a1f5-5e3b61d9ca22",
			wantStorageID:  true,
			wantClauseArgs: 3,
		},
		{
			name:           "almost-uuid garbage stays on two branches",
			identifier:     "8f14e45f-ceea-4672-a1f5-5e3b61d9ca2z",
			wantStorageID:  false,
			wantClauseArgs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Resolve(tt.identifier)
			assert.Equal(t, tt.wantStorageID, ref.MatchStorageID)

			clause, args := ref.Clause()
			assert.Len(t, args, tt.wantClauseArgs)
			assert.NotEmpty(t, clause)
			for _, arg := range args {
				assert.Equal(t, tt.identifier, arg)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	a := Resolve("JOB-1715000000000-42")
	b := Resolve("JOB-1715000000000-42")
	assert.Equal(t, a, b)
}

func TestJobRef_MatchesAllThreeIdentifiers(t *testing.T) {
	job := models.Job{
		BaseModel: models.BaseModel{ID: "8f14e45f-ceea-4672-a1f5-5e3b61d9ca22"},
		PublicID:  "JOB-1715000000000-42",
		LegacyID:  "JOB-1715000000000-42",
		Title:     "Backend Engineer",
		Company:   "Acme",
		Location:  "Remote",
	}

	assert.True(t, Resolve(job.PublicID).Matches(&job), "primary id must resolve")
	assert.True(t, Resolve(job.LegacyID).Matches(&job), "legacy alias must resolve")
	assert.True(t, Resolve(job.ID).Matches(&job), "storage id must resolve")

	assert.False(t, Resolve("JOB-0-0").Matches(&job))
}

func TestJobRef_EmptyLegacyIDNeverMatchesEmptyInput(t *testing.T) {
	job := models.Job{
		PublicID: "JOB-1715000000000-42",
		LegacyID: "",
	}
	// A job with no legacy alias must not match an unrelated identifier.
	assert.False(t, Resolve("other").Matches(&job))
}

func TestJobRef_UUIDDoesNotMatchDifferentJob(t *testing.T) {
	job := models.Job{
		BaseModel: models.BaseModel{ID: "11111111-1111-4111-8111-111111111111"},
		PublicID:  "JOB-1-1",
	}
	assert.False(t, Resolve("22222222-2222-4222-8222-222222222222").Matches(&job))
}
