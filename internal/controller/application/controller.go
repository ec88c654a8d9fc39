// Package application provides HTTP handlers for job application operations.
package application

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manthan270/hirelite/internal/store"
	"github.com/manthan270/hirelite/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Store *store.Store
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided store.
func NewApplicationController(s *store.Store) *ApplicationController {
	return &ApplicationController{
		Store: s,
	}
}

type applyInfo struct {
	JobID string `json:"job_id" binding:"required"`
}

// ApplyHandler records a job application for the signed-in candidate.
// Re-applying to the same job is a no-op, not an error.
// @Summary Apply to a job
// @Description Only candidate users can access this endpoint; duplicate applications are idempotent
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body applyInfo true "Job to apply to"
// @Success 201 {object} model.Application "Application recorded"
// @Success 200 {object} model.Application "Already applied, existing application returned"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /applications [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if _, err := ac.Store.Jobs.GetByID(info.JobID); err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	app, created := ac.Store.Applications.Apply(info.JobID, user.Name)
	if !created {
		c.JSON(http.StatusOK, app)
		return
	}

	c.JSON(http.StatusCreated, app)
}

type appliedResponse struct {
	JobID   string `json:"job_id"`
	Applied bool   `json:"applied"`
}

// CheckHandler reports whether the signed-in candidate already applied.
// @Summary Check whether the candidate applied to a job
// @Description Only candidate users can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id query string true "Job to check"
// @Success 200 {object} appliedResponse "Whether an application exists"
// @Failure 400 {object} utilities.ErrorResponse "Missing job_id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /applications/check [get]
func (ac *ApplicationController) CheckHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID := c.Query("job_id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "job_id is required"})
		return
	}

	c.JSON(http.StatusOK, appliedResponse{
		JobID:   jobID,
		Applied: ac.Store.Applications.HasApplied(jobID, user.Name),
	})
}

// MineHandler lists the signed-in candidate's applications.
// @Summary Get the candidate's own applications
// @Description Only candidate users can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications in submission order"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /applications/mine [get]
func (ac *ApplicationController) MineHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ac.Store.Applications.ApplicationsBy(user.Name))
}
