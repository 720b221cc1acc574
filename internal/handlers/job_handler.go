package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes wires the job endpoints. Listing and lookup are public;
// submission, expiry and deletion require a signed-in user.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/locations", h.Locations)
		jobs.GET("/:id", h.Get)
		jobs.GET("/:id/similar", h.Similar)
	}

	protected := rg.Group("/jobs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.PATCH("/:id/expire", h.Expire)
		protected.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary      List jobs, filtered and sorted for display
// @Tags         jobs
// @Produce      json
// @Param        location        query  string  false  "location substring, case-insensitive"
// @Param        company         query  string  false  "company substring, case-insensitive"
// @Param        employmentType  query  string  false  "exact employment type"
// @Param        experience      query  string  false  "exact experience bracket"
// @Param        includeExpired  query  bool    false  "include expired jobs"
// @Success      200  {array}  dto.JobResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	filter := jobquery.Filter{
		Location:        query.Location,
		Company:         query.Company,
		EmploymentType:  query.EmploymentType,
		ExperienceRange: query.ExperienceRange,
		IncludeExpired:  query.IncludeExpired,
	}

	jobs, err := h.jobService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(jobs)))
	c.JSON(http.StatusOK, jobs)
}

// Locations godoc
// @Summary      Distinct job locations for filter dropdowns
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  string
// @Router       /jobs/locations [get]
func (h *JobHandler) Locations(c *gin.Context) {
	locations, err := h.jobService.Locations()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Get godoc
// @Summary      Fetch one job by any of its identifiers
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "job identifier (public, legacy or storage id)"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Similar godoc
// @Summary      Active jobs from the same location or company
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "job identifier"
// @Success      200  {array}  dto.JobResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /jobs/{id}/similar [get]
func (h *JobHandler) Similar(c *gin.Context) {
	jobs, err := h.jobService.Similar(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Create godoc
// @Summary      Submit a new job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateJobRequest  true  "partial job payload"
// @Success      201  {object}  dto.CreateJobResponse
// @Failure      409  {object}  apperrors.ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateJobResponse{Success: true, Job: job})
}

// Expire godoc
// @Summary      Mark a user-submitted job as expired
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "job identifier"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /jobs/{id}/expire [patch]
func (h *JobHandler) Expire(c *gin.Context) {
	if err := h.jobService.Expire(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job successfully marked as expired"})
}

// Delete godoc
// @Summary      Permanently delete a user-submitted job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "job identifier"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job successfully deleted"})
}
