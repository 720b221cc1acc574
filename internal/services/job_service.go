package services

import (
	"fmt"
	"math/rand"
	"time"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// Submission defaults, applied field by field to partial payloads.
const (
	defaultTitle          = "Untitled Position"
	defaultCompany        = "Unknown Company"
	defaultLocation       = "Remote"
	defaultEmploymentType = "Full-time"
	defaultSeniorityLevel = "Entry Level"
	defaultCompanyType    = "Startup"
	defaultCountry        = "Global"
	defaultMinExp         = 0
	defaultMaxExp         = 5
)

const similarJobsLimit = 6

type JobService interface {
	List(filter jobquery.Filter) ([]dto.JobResponse, error)
	Get(identifier string) (*dto.JobResponse, error)
	Similar(identifier string) ([]dto.JobResponse, error)
	Locations() ([]string, error)
	Create(userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Expire(identifier string) error
	Delete(identifier string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// List runs the full listing pipeline: fetch, filter, sort for display.
func (s *JobServiceImpl) List(filter jobquery.Filter) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs = filter.Apply(jobs)
	jobs = jobquery.SortForDisplay(jobs)

	return dto.NewJobResponseList(jobs), nil
}

func (s *JobServiceImpl) Get(identifier string) (*dto.JobResponse, error) {
	job, err := s.findByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(job), nil
}

// Similar returns active jobs from the same location or company.
func (s *JobServiceImpl) Similar(identifier string) ([]dto.JobResponse, error) {
	job, err := s.findByIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	similar, err := s.jobRepo.FindSimilar(job, similarJobsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobResponseList(jobquery.SortForDisplay(similar)), nil
}

func (s *JobServiceImpl) Locations() ([]string, error) {
	locations, err := s.jobRepo.DistinctLocations()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

// Create fills defaults for every omitted field, generates the public job
// id and persists. A public-id collision is reported as a creation failure;
// the unique index is the authoritative guard and there is no retry.
func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	now := time.Now()
	publicID := generatePublicID(now)

	minExp := defaultMinExp
	if req.MinExperienceYears != nil {
		minExp = *req.MinExperienceYears
	}
	maxExp := defaultMaxExp
	if req.MaxExperienceYears != nil {
		maxExp = *req.MaxExperienceYears
	}

	job := &models.Job{
		PublicID:           publicID,
		LegacyID:           publicID,
		Title:              orDefault(req.Title, defaultTitle),
		Company:            orDefault(req.Company, defaultCompany),
		Location:           orDefault(req.Location, defaultLocation),
		EmploymentType:     orDefault(req.EmploymentType, defaultEmploymentType),
		ExperienceRange:    jobquery.NormalizeExperience(req.ExperienceRange, maxExp),
		MinExperienceYears: minExp,
		MaxExperienceYears: maxExp,
		SeniorityLevel:     orDefault(req.SeniorityLevel, defaultSeniorityLevel),
		CompanyType:        orDefault(req.CompanyType, defaultCompanyType),
		Country:            orDefault(req.Country, defaultCountry),
		Source:             models.SourceUserSubmitted,
		CompanyURL:         req.CompanyURL,
		CompanyLogoURL:     req.CompanyLogoURL,
		ApplyURL:           req.ApplyURL,
		Description:        req.Description,
		PostedAt:           &now,
		PostedByUserID:     &userID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		if apperrors.Is(err, repositories.ErrJobAlreadyExists) {
			return nil, apperrors.ErrJobIDCollision(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobResponse(job), nil
}

// Expire flips the expired flag. Only user-submitted jobs may be expired;
// expiring an already-expired job is a no-op success.
func (s *JobServiceImpl) Expire(identifier string) error {
	ref := jobquery.Resolve(identifier)

	job, err := s.jobRepo.FindByRef(ref)
	if err != nil {
		return translateLookupError(err)
	}

	if !job.UserSubmitted() {
		return apperrors.ErrJobNotUserSubmitted
	}

	if job.Expired {
		return nil
	}

	if err := s.jobRepo.SetExpired(ref); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			// Lost a race with a concurrent delete
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete permanently removes a job. Restricted to user-submitted jobs, same
// as Expire.
func (s *JobServiceImpl) Delete(identifier string) error {
	ref := jobquery.Resolve(identifier)

	job, err := s.jobRepo.FindByRef(ref)
	if err != nil {
		return translateLookupError(err)
	}

	if !job.UserSubmitted() {
		return apperrors.ErrJobNotUserSubmitted
	}

	if err := s.jobRepo.Delete(ref); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) findByIdentifier(identifier string) (*models.Job, error) {
	job, err := s.jobRepo.FindByRef(jobquery.Resolve(identifier))
	if err != nil {
		return nil, translateLookupError(err)
	}
	return job, nil
}

func translateLookupError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrJobNotFound
	case apperrors.Is(err, repositories.ErrMultipleJobMatches):
		return apperrors.ErrAmbiguousJobID(err)
	default:
		return apperrors.InternalError(err)
	}
}

// generatePublicID composes the timestamp with a small random suffix, the
// same scheme the legacy board used. Collisions are possible but negligible
// and the unique index catches them.
func generatePublicID(now time.Time) string {
	return fmt.Sprintf("JOB-%d-%d", now.UnixMilli(), rand.Intn(1000))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
