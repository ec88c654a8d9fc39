// Package jobs provides HTTP handlers for the job listing, search, detail
// and saved-job endpoints.
package jobs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manthan270/hirelite/internal/model"
	"github.com/manthan270/hirelite/internal/pipeline"
	"github.com/manthan270/hirelite/internal/store"
	"github.com/manthan270/hirelite/internal/utilities"
)

// JobController handles job related endpoints
type JobController struct {
	Store *store.Store

	now func() time.Time
}

// NewJobController creates a new instance of JobController
func NewJobController(s *store.Store) *JobController {
	return &JobController{
		Store: s,
		now:   time.Now,
	}
}

// ListJobs runs the full filter/sort/paginate pipeline over the repository.
// @Summary Get one page of jobs matching the listing filters
// @Description Every query param is optional; missing params mean no constraint for their stage
// @Tags Jobs
// @Produce json
// @Param search query string false "Substring match (case insensitive) against title or company"
// @Param location query string false "Substring match (case insensitive) against location"
// @Param category query string false "Posting-age bucket: today, week or month"
// @Param type query []string false "Job type filters, repeatable; Full-time and Freelance carry aliases"
// @Param exp query []string false "Experience levels, repeatable: Entry level, Intermediate, Expert"
// @Param salary_range query []string false "Salary buckets, repeatable"
// @Param salary_min query integer false "Salary floor slider in lakh, 5 to 50"
// @Param sort query string false "Most Relevant, Highest Salary, Newest First or Match Score"
// @Param page query integer false "Page number, clamped into range"
// @Success 200 {object} pipeline.Result "One page of jobs plus pagination info"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric salary_min"
// @Router /jobs [get]
func (jc *JobController) ListJobs(c *gin.Context) {
	st := pipeline.Default()

	st.Search = c.Query("search")
	st.Location = c.Query("location")
	st.Category = c.Query("category")
	st.Types = c.QueryArray("type")
	st.ExperienceLevels = c.QueryArray("exp")
	st.SalaryRanges = c.QueryArray("salary_range")

	if raw := c.Query("salary_min"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid salary_min: %s", err.Error()),
			})
			return
		}
		if floor < pipeline.SliderMin {
			floor = pipeline.SliderMin
		}
		if floor > pipeline.SliderMax {
			floor = pipeline.SliderMax
		}
		st.SalaryFloor = floor
	}

	if raw := c.Query("sort"); raw != "" {
		st.SortBy = raw
	}

	// Out-of-range pages self-correct inside the pipeline, so a bad page
	// value falls back to 1 rather than erroring.
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		st.Page = page
	}

	c.JSON(http.StatusOK, pipeline.Run(jc.Store.Jobs.List(), st, jc.now()))
}

// SearchJobs is the navbar quick search over the whole repository.
// @Summary Search jobs by title, company or location substring
// @Description Empty query returns every job
// @Tags Jobs
// @Produce json
// @Param q query string false "Case-insensitive substring"
// @Success 200 {array} model.Job "Matching jobs in seed order"
// @Router /jobs/search [get]
func (jc *JobController) SearchJobs(c *gin.Context) {
	c.JSON(http.StatusOK, jc.Store.Jobs.Search(c.Query("q")))
}

// GetJobByID fetches a single job for the detail page.
// @Summary Get job by ID
// @Tags Jobs
// @Produce json
// @Param id path string true "ID of desired job"
// @Success 200 {object} model.Job "The job with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	job, err := jc.Store.Jobs.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ApplicationsForJob lists a job's applications for the employer dashboard.
// @Summary Get applications submitted to a job
// @Description Only employer users can access this endpoint
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "ID of desired job"
// @Success 200 {array} model.Application "Applications in submission order"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (jc *JobController) ApplicationsForJob(c *gin.Context) {
	id := c.Param("id")

	if _, err := jc.Store.Jobs.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	c.JSON(http.StatusOK, jc.Store.Applications.ApplicationsFor(id))
}

type savedResponse struct {
	JobID string `json:"job_id"`
	Saved bool   `json:"saved"`
}

// ToggleSave flips the saved state of a job for the signed-in candidate.
// @Summary Save or unsave a job
// @Description Only candidate users can access this endpoint
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "ID of desired job"
// @Success 200 {object} savedResponse "The new saved state"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/save [post]
func (jc *JobController) ToggleSave(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")
	if _, err := jc.Store.Jobs.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	c.JSON(http.StatusOK, savedResponse{
		JobID: id,
		Saved: jc.Store.Saved.Toggle(user.Email, id),
	})
}

// ListSaved returns the candidate's saved jobs in save order.
// @Summary Get the signed-in candidate's saved jobs
// @Description Only candidate users can access this endpoint
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "Saved jobs in save order"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Router /jobs/saved [get]
func (jc *JobController) ListSaved(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	saved := []model.Job{}
	for _, id := range jc.Store.Saved.List(user.Email) {
		if job, err := jc.Store.Jobs.GetByID(id); err == nil {
			saved = append(saved, job)
		}
	}

	c.JSON(http.StatusOK, saved)
}
