package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors of the job board.
*/

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a unique-constraint style failure into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Jobs ---

// ErrJobNotFound: no job matched the supplied identifier.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrJobNotUserSubmitted: expire/delete is only allowed on jobs that were
// submitted through the board, never on imported listings.
var ErrJobNotUserSubmitted = New(
	CodeForbidden,
	"job",
	"Only user-submitted jobs can be modified",
	http.StatusForbidden,
)

// ErrJobIDCollision: the generated public job id already exists. The unique
// index is the authoritative guard; the caller sees a creation failure.
func ErrJobIDCollision(err error) *AppError {
	return Wrap(err, CodeConflict, "job", "Failed to create job: identifier collision", http.StatusConflict)
}

// ErrAmbiguousJobID: more than one job matched a supposedly unique
// identifier. Data-integrity fault, reported as internal.
func ErrAmbiguousJobID(err error) *AppError {
	return Wrap(err, CodeInternalError, "job", "Identifier matched multiple jobs", http.StatusInternalServerError)
}

// --- Users / Auth ---

// ErrEmailAlreadyExists: registration with a taken email. The legacy API
// contract returns 400 here, not 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already in use",
	http.StatusBadRequest,
)

// ErrInvalidCredentials is shared by "unknown email" and "wrong password"
// so the response never leaks which accounts exist.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole: registration with a role outside jobseeker/employer.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"user",
	"Invalid user role",
	http.StatusBadRequest,
)

// ErrInvalidToken: malformed, expired or otherwise unverifiable JWT.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
