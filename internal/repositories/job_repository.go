package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobAlreadyExists = errors.New("job already exists")
	// ErrMultipleJobMatches signals a data-integrity fault: a supposedly
	// unique identifier resolved to more than one row.
	ErrMultipleJobMatches = errors.New("identifier matched multiple jobs")
)

type JobRepository interface {
	FindAll() ([]models.Job, error)
	FindByRef(ref jobquery.JobRef) (*models.Job, error)
	Create(job *models.Job) error
	SetExpired(ref jobquery.JobRef) error
	Delete(ref jobquery.JobRef) error
	DistinctLocations() ([]string, error)
	FindSimilar(job *models.Job, limit int) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByRef fetches the single job matching the resolved identifier. Two
// rows matching the same identifier means the uniqueness invariant is
// broken, which is reported rather than silently picking one.
func (r *JobRepositoryImpl) FindByRef(ref jobquery.JobRef) (*models.Job, error) {
	clause, args := ref.Clause()

	var jobs []models.Job
	if err := r.db.Where(clause, args...).Limit(2).Find(&jobs).Error; err != nil {
		return nil, err
	}

	switch len(jobs) {
	case 0:
		return nil, ErrJobNotFound
	case 1:
		return &jobs[0], nil
	default:
		return nil, ErrMultipleJobMatches
	}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	// The unique index on public_id is the authoritative collision guard;
	// this pre-check just gives a clean error on the common path.
	var existing models.Job
	if err := r.db.Where("public_id = ?", job.PublicID).First(&existing).Error; err == nil {
		return ErrJobAlreadyExists
	}

	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) SetExpired(ref jobquery.JobRef) error {
	clause, args := ref.Clause()
	result := r.db.Model(&models.Job{}).Where(clause, args...).Updates(map[string]interface{}{
		"expired":    true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ref jobquery.JobRef) error {
	clause, args := ref.Clause()
	result := r.db.Where(clause, args...).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DistinctLocations() ([]string, error) {
	var locations []string
	err := r.db.Model(&models.Job{}).
		Distinct("location").
		Where("location <> ''").
		Order("location").
		Pluck("location", &locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// FindSimilar returns active jobs sharing the location or company of the
// given job, excluding the job itself.
func (r *JobRepositoryImpl) FindSimilar(job *models.Job, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("(location = ? OR company = ?)", job.Location, job.Company).
		Where("id <> ?", job.ID).
		Where("expired = ?", false).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
