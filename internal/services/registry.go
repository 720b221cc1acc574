package services

import (
	"jobboard_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService  AuthService
	JobService   JobService
	EmailService email.Provider
}
