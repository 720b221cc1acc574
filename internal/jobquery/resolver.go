// Package jobquery holds the pure query logic of the board: resolving a
// caller-supplied job identifier of unknown provenance, narrowing a job set
// by filter criteria, and ordering it for display. Nothing in this package
// touches the database or mutates its inputs.
package jobquery

import (
	"jobboard_backend/internal/models"

	"github.com/google/uuid"
)

// JobRef is the resolved form of a caller-supplied identifier. It matches a
// job whose public id, legacy id or storage id equals the raw string. The
// storage-id branch is only active when the raw string is syntactically a
// uuid; anything else silently skips that branch instead of erroring.
//
// Resolution is deterministic and side-effect-free: the same input always
// yields the same JobRef.
type JobRef struct {
	Identifier     string
	MatchStorageID bool
}

// Resolve builds a JobRef from a raw identifier string.
func Resolve(identifier string) JobRef {
	ref := JobRef{Identifier: identifier}
	if _, err := uuid.Parse(identifier); err == nil {
		ref.MatchStorageID = true
	}
	return ref
}

// Clause renders the ref as a SQL condition plus arguments, an OR of two or
// three equality checks.
func (r JobRef) Clause() (string, []interface{}) {
	if r.MatchStorageID {
		return "public_id = ? OR legacy_id = ? OR id = ?",
			[]interface{}{r.Identifier, r.Identifier, r.Identifier}
	}
	return "public_id = ? OR legacy_id = ?",
		[]interface{}{r.Identifier, r.Identifier}
}

// Matches is the in-memory form of the same predicate.
func (r JobRef) Matches(j *models.Job) bool {
	if j.PublicID == r.Identifier {
		return true
	}
	if j.LegacyID != "" && j.LegacyID == r.Identifier {
		return true
	}
	return r.MatchStorageID && j.ID == r.Identifier
}
