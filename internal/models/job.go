package models

import "time"

// SourceUserSubmitted marks jobs created through the board, as opposed to
// imported or seeded listings. Only these may be expired or deleted.
const SourceUserSubmitted = "User Submitted"

// Job is the central posting record.
//
// A job is addressable by any of three identifiers: PublicID (the
// application-assigned "JOB-<ts>-<n>" string), LegacyID (an alias kept for
// records imported from the old board, always equal to PublicID when set)
// and the storage-assigned uuid primary key. All three resolve to the same
// row; see internal/jobquery.
type Job struct {
	BaseModel
	PublicID string `gorm:"uniqueIndex;not null" json:"jobId"`
	LegacyID string `gorm:"index" json:"legacyId,omitempty"`

	Title    string `gorm:"not null" json:"title"`
	Company  string `gorm:"not null" json:"company"`
	Location string `gorm:"not null" json:"location"`

	EmploymentType     string `json:"employmentType,omitempty"`
	ExperienceRange    string `json:"experience,omitempty"`
	MinExperienceYears int    `json:"minExp"`
	MaxExperienceYears int    `json:"maxExp"`
	SeniorityLevel     string `json:"seniorityLevel,omitempty"`
	CompanyType        string `json:"companyType,omitempty"`
	Country            string `json:"country,omitempty"`
	Source             string `json:"source,omitempty"`

	CompanyURL     string `json:"companyUrl,omitempty"`
	CompanyLogoURL string `json:"companyLogoUrl,omitempty"`
	ApplyURL       string `json:"applyUrl,omitempty"`
	Description    string `json:"description,omitempty"`

	PostedAt *time.Time `json:"postedAt,omitempty"`
	Expired  bool       `gorm:"default:false" json:"expired"`

	// Weak reference to the submitting user; set only for user-submitted jobs.
	PostedByUserID *string `gorm:"type:uuid;index" json:"postedBy,omitempty"`
}

// UserSubmitted reports whether the job came in through the board.
func (j *Job) UserSubmitted() bool {
	return j.PostedByUserID != nil || j.Source == SourceUserSubmitted
}
