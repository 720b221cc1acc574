package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateJobRequest - partial job payload; every field is optional and gets
// a documented default on submission.
type CreateJobRequest struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	EmploymentType     string `json:"employmentType"`
	ExperienceRange    string `json:"experience"`
	MinExperienceYears *int   `json:"minExp" binding:"omitempty,min=0"`
	MaxExperienceYears *int   `json:"maxExp" binding:"omitempty,min=0"`
	SeniorityLevel     string `json:"seniorityLevel"`
	CompanyType        string `json:"companyType"`
	Country            string `json:"country"`
	CompanyURL         string `json:"companyUrl" binding:"omitempty,url"`
	CompanyLogoURL     string `json:"companyLogoUrl" binding:"omitempty,url"`
	ApplyURL           string `json:"applyUrl" binding:"omitempty,url"`
	Description        string `json:"description"`
}

// JobListQuery - listing filter parameters
type JobListQuery struct {
	Location        string `form:"location"`
	Company         string `form:"company"`
	EmploymentType  string `form:"employmentType"`
	ExperienceRange string `form:"experience"`
	IncludeExpired  bool   `form:"includeExpired"`
}

// JobResponse - job representation returned to clients
type JobResponse struct {
	ID              string     `json:"id"`
	JobID           string     `json:"jobId"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	EmploymentType  string     `json:"employmentType,omitempty"`
	ExperienceRange string     `json:"experience,omitempty"`
	MinExp          int        `json:"minExp"`
	MaxExp          int        `json:"maxExp"`
	SeniorityLevel  string     `json:"seniorityLevel,omitempty"`
	CompanyType     string     `json:"companyType,omitempty"`
	Country         string     `json:"country,omitempty"`
	Source          string     `json:"source,omitempty"`
	CompanyURL      string     `json:"companyUrl,omitempty"`
	CompanyLogoURL  string     `json:"companyLogoUrl,omitempty"`
	ApplyURL        string     `json:"applyUrl,omitempty"`
	Description     string     `json:"description,omitempty"`
	PostedAt        *time.Time `json:"postedAt,omitempty"`
	Expired         bool       `json:"expired"`
	PostedBy        *string    `json:"postedBy,omitempty"`
}

// CreateJobResponse - envelope for a successful submission
type CreateJobResponse struct {
	Success bool         `json:"success"`
	Job     *JobResponse `json:"job"`
}

// NewJobResponse maps a Job model to its client representation.
func NewJobResponse(j *models.Job) *JobResponse {
	return &JobResponse{
		ID:              j.ID,
		JobID:           j.PublicID,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		EmploymentType:  j.EmploymentType,
		ExperienceRange: j.ExperienceRange,
		MinExp:          j.MinExperienceYears,
		MaxExp:          j.MaxExperienceYears,
		SeniorityLevel:  j.SeniorityLevel,
		CompanyType:     j.CompanyType,
		Country:         j.Country,
		Source:          j.Source,
		CompanyURL:      j.CompanyURL,
		CompanyLogoURL:  j.CompanyLogoURL,
		ApplyURL:        j.ApplyURL,
		Description:     j.Description,
		PostedAt:        j.PostedAt,
		Expired:         j.Expired,
		PostedBy:        j.PostedByUserID,
	}
}

// NewJobResponseList maps a slice of jobs preserving order.
func NewJobResponseList(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *NewJobResponse(&jobs[i]))
	}
	return out
}
