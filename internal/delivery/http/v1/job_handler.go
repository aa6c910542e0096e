package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Listing/search is public
	public.GET("/jobs", handler.List)

	// Posting requires an authenticated recruiter
	protected.POST("/jobs", handler.Create)
}

type CreateJobRequest struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	Type           string `json:"type"`
	EmploymentType string `json:"employment_type"`
	WorkMode       string `json:"work_mode"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	Description    string `json:"description"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Create a new job posting (recruiters only). Validation errors are reported per field.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	job := &domain.JobPosting{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         toPtr(req.Salary),
		Type:           req.Type,
		EmploymentType: toPtr(req.EmploymentType),
		WorkMode:       toPtr(req.WorkMode),
		Experience:     req.Experience,
		Skills:         req.Skills,
		Description:    toPtr(req.Description),
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, role, job); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created",
		"job":     job,
	})
}

// List godoc
// @Summary      List job postings
// @Description  Search and paginate job postings, newest first
// @Tags         jobs
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10)"
// @Param        search    query     string  false  "Matches title, company or description"
// @Param        location  query     string  false  "Matches location"
// @Success      200       {object}  domain.JobList
// @Failure      500       {object}  map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.jobUC.ListJobs(c.Request.Context(), domain.JobListQuery{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Location: c.Query("location"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}
