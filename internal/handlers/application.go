// internal/handlers/application.go
package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/jobtracker/internal/models"
	"github.com/javajoker/jobtracker/internal/services"
	"github.com/javajoker/jobtracker/internal/utils"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// GET /applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	params := services.ApplicationListParams{
		PaginationParams: utils.GetPaginationParams(c),
		Query:            c.Query("q"),
	}

	if status := c.Query("status"); status != "" {
		applicationStatus := models.ApplicationStatus(status)
		params.Status = &applicationStatus
	}

	applications, total, err := h.applicationService.ListApplications(c.Request.Context(), params)
	if err != nil {
		h.internalError(c, err)
		return
	}

	if params.Enabled() {
		utils.SetPaginationHeaders(c, utils.CreatePaginationResult(total, params.PaginationParams))
	}

	if applications == nil {
		applications = []models.Application{}
	}
	utils.SuccessResponse(c, applications)
}

// GET /applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		utils.NotFoundResponse(c)
		return
	}

	application, err := h.applicationService.GetApplication(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, application)
}

// POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req services.ApplicationParams
	if !bindParams(c, &req) {
		return
	}

	application, err := h.applicationService.CreateApplication(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.CreatedResponse(c, application)
}

// PATCH /applications/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		utils.NotFoundResponse(c)
		return
	}

	var req services.ApplicationParams
	if !bindParams(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateApplication(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, application)
}

// DELETE /applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		utils.NotFoundResponse(c)
		return
	}

	if err := h.applicationService.DeleteApplication(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ApplicationHandler) handleError(c *gin.Context, err error) {
	var validationErrors utils.ValidationErrors
	switch {
	case errors.Is(err, services.ErrApplicationNotFound):
		utils.NotFoundResponse(c)
	case errors.As(err, &validationErrors):
		utils.ValidationErrorResponse(c, validationErrors)
	default:
		h.internalError(c, err)
	}
}

func (h *ApplicationHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logrus.WithError(err).
		WithField("request_id", utils.GetRequestIDFromContext(c)).
		Error("Application request failed")
	utils.InternalErrorResponse(c)
}

// bindParams decodes the request body. An empty body means no fields were
// supplied.
func bindParams(c *gin.Context, req *services.ApplicationParams) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c)
		return false
	}
	return true
}

// A non-numeric id can never match a record, so it is reported as not found.
func applicationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
