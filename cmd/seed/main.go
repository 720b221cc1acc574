// Command seed imports board jobs from a JSON file into the database.
// Imported listings keep their original identifiers and are NOT marked as
// user-submitted, so they sort below board submissions and cannot be
// expired or deleted through the API.
//
// Usage: seed -file jobs.json
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

type seedJob struct {
	JobID          string  `json:"jobId"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Location       string  `json:"location"`
	EmploymentType string  `json:"employmentType"`
	Experience     string  `json:"experience"`
	MinExp         int     `json:"minExp"`
	MaxExp         int     `json:"maxExp"`
	SeniorityLevel string  `json:"seniorityLevel"`
	CompanyType    string  `json:"companyType"`
	Country        string  `json:"country"`
	Source         string  `json:"source"`
	CompanyURL     string  `json:"companyUrl"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
	ApplyURL       string  `json:"applyUrl"`
	Description    string  `json:"description"`
	PostedAt       *string `json:"postedAt"`
}

func main() {
	filePath := flag.String("file", "jobs.json", "path to the JSON file with job listings")
	flag.Parse()

	config.LoadConfig()
	logger.Init(config.AppConfig.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Fatal("Failed to read seed file", "file", *filePath, "error", err)
	}

	var seedJobs []seedJob
	if err := json.Unmarshal(data, &seedJobs); err != nil {
		logger.Fatal("Failed to parse seed file", "file", *filePath, "error", err)
	}

	imported, skipped := 0, 0
	for _, sj := range seedJobs {
		if sj.JobID == "" {
			logger.Warn("Skipping seed job without jobId", "title", sj.Title)
			skipped++
			continue
		}

		var existing models.Job
		if err := db.Where("public_id = ?", sj.JobID).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		job := models.Job{
			PublicID:           sj.JobID,
			LegacyID:           sj.JobID,
			Title:              sj.Title,
			Company:            sj.Company,
			Location:           sj.Location,
			EmploymentType:     sj.EmploymentType,
			ExperienceRange:    sj.Experience,
			MinExperienceYears: sj.MinExp,
			MaxExperienceYears: sj.MaxExp,
			SeniorityLevel:     sj.SeniorityLevel,
			CompanyType:        sj.CompanyType,
			Country:            sj.Country,
			Source:             sj.Source,
			CompanyURL:         sj.CompanyURL,
			CompanyLogoURL:     sj.CompanyLogoURL,
			ApplyURL:           sj.ApplyURL,
			Description:        sj.Description,
			PostedAt:           parsePostedAt(sj.PostedAt),
		}

		if err := db.Create(&job).Error; err != nil {
			logger.Error("Failed to import job", "jobId", sj.JobID, "error", err)
			skipped++
			continue
		}
		imported++
	}

	logger.Info("Seeding finished", "imported", imported, "skipped", skipped)
}

func parsePostedAt(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	return &t
}
