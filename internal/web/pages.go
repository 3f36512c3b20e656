// internal/web/pages.go
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/jobtracker/internal/client"
	"github.com/javajoker/jobtracker/internal/models"
	"github.com/javajoker/jobtracker/internal/utils"
)

// pageData is shared by every template. Pages fill in what they render.
type pageData struct {
	Title        string
	Query        string
	Status       string
	Statuses     []models.ApplicationStatus
	Applications []models.Application
	Application  *models.Application
	Form         applicationForm
	Errors       map[string][]string
	Action       string
	SubmitLabel  string
	CancelURL    string
	Message      string
}

type PageHandler struct {
	api   API
	today func() models.Date
}

func NewPageHandler(api API) *PageHandler {
	return &PageHandler{
		api:   api,
		today: models.Today,
	}
}

// GET /applications
func (h *PageHandler) Index(c *gin.Context) {
	opts := client.ListOptions{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}

	applications, err := h.api.List(h.requestContext(c), opts)
	if err != nil {
		h.failure(c, err)
		return
	}

	c.HTML(http.StatusOK, "applications/index", pageData{
		Title:        "Applications",
		Query:        opts.Query,
		Status:       opts.Status,
		Statuses:     models.ApplicationStatuses,
		Applications: applications,
	})
}

// GET /applications/new
func (h *PageHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, newFormPage(newApplicationForm(h.today()), nil))
}

// POST /applications
func (h *PageHandler) Create(c *gin.Context) {
	form := formFromRequest(c)

	application, err := h.api.Create(h.requestContext(c), form.Payload())
	if err != nil {
		var validationErr *client.ValidationError
		if errors.As(err, &validationErr) {
			h.renderForm(c, http.StatusUnprocessableEntity, newFormPage(form, validationErr.Details))
			return
		}
		h.failure(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, applicationURL(application.ID))
}

// GET /applications/:id
func (h *PageHandler) Show(c *gin.Context) {
	application, ok := h.load(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "applications/show", pageData{
		Title:       application.CompanyName,
		Application: application,
	})
}

// GET /applications/:id/edit
func (h *PageHandler) Edit(c *gin.Context) {
	application, ok := h.load(c)
	if !ok {
		return
	}

	h.renderForm(c, http.StatusOK, editFormPage(application.ID, formFromApplication(application), nil))
}

// POST /applications/:id
func (h *PageHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.notFound(c)
		return
	}

	form := formFromRequest(c)
	if _, err := h.api.Update(h.requestContext(c), id, form.Payload()); err != nil {
		var validationErr *client.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.renderForm(c, http.StatusUnprocessableEntity, editFormPage(id, form, validationErr.Details))
		case errors.Is(err, client.ErrNotFound):
			h.notFound(c)
		default:
			h.failure(c, err)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, applicationURL(id))
}

// POST /applications/:id/delete
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.notFound(c)
		return
	}

	if err := h.api.Delete(h.requestContext(c), id); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.failure(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/applications")
}

func (h *PageHandler) load(c *gin.Context) (*models.Application, bool) {
	id, ok := pathID(c)
	if !ok {
		h.notFound(c)
		return nil, false
	}

	application, err := h.api.Get(h.requestContext(c), id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			h.notFound(c)
		} else {
			h.failure(c, err)
		}
		return nil, false
	}
	return application, true
}

func (h *PageHandler) renderForm(c *gin.Context, status int, page pageData) {
	page.Statuses = models.ApplicationStatuses
	c.HTML(status, "applications/form", page)
}

func (h *PageHandler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found", pageData{Title: "Not found"})
}

// failure renders a generic error page; the cause is only logged.
func (h *PageHandler) failure(c *gin.Context, err error) {
	_ = c.Error(err)
	logrus.WithError(err).
		WithField("request_id", utils.GetRequestIDFromContext(c)).
		Error("API request failed")
	c.HTML(http.StatusBadGateway, "error", pageData{
		Title:   "Error",
		Message: "The application service could not complete the request. Please try again.",
	})
}

// requestContext forwards the browser's language preference to the API.
func (h *PageHandler) requestContext(c *gin.Context) context.Context {
	return client.WithLanguage(c.Request.Context(), c.GetHeader("Accept-Language"))
}

func newFormPage(form applicationForm, errs map[string][]string) pageData {
	return pageData{
		Title:       "New application",
		Form:        form,
		Errors:      errs,
		Action:      "/applications",
		SubmitLabel: "Create",
		CancelURL:   "/applications",
	}
}

func editFormPage(id int64, form applicationForm, errs map[string][]string) pageData {
	return pageData{
		Title:       "Edit application",
		Form:        form,
		Errors:      errs,
		Action:      applicationURL(id),
		SubmitLabel: "Save",
		CancelURL:   applicationURL(id),
	}
}

func applicationURL(id int64) string {
	return fmt.Sprintf("/applications/%d", id)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
