package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/jobtracker/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFormatDate(t *testing.T) {
	d := models.NewDate(2024, time.March, 5)

	assert.Equal(t, "5 Mar 2024", formatDate(d))
	assert.Equal(t, "5 Mar 2024", formatDate(&d))
	assert.Equal(t, "-", formatDate((*models.Date)(nil)))
	assert.Equal(t, "-", formatDate(models.Date{}))
	assert.Equal(t, "-", formatDate("2024-03-05"))
}

func TestHostFromURL(t *testing.T) {
	assert.Equal(t, "example.com", hostFromURL(strPtr("https://www.example.com/jobs/1")))
	assert.Equal(t, "jobs.lever.co", hostFromURL(strPtr("https://jobs.lever.co/acme")))
	assert.Equal(t, "not a url", hostFromURL(strPtr("not a url")))
	assert.Equal(t, "-", hostFromURL(nil))
	assert.Equal(t, "-", hostFromURL(strPtr("")))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "pill pill-blue", statusClass(models.ApplicationStatusApplied))
	assert.Equal(t, "pill pill-amber", statusClass(models.ApplicationStatusInterview))
	assert.Equal(t, "pill pill-purple", statusClass(models.ApplicationStatusOffer))
	assert.Equal(t, "pill pill-rose", statusClass(models.ApplicationStatusRejected))
	assert.Equal(t, "pill pill-zinc", statusClass(models.ApplicationStatusWithdrawn))
	assert.Equal(t, "pill pill-muted", statusClass(models.ApplicationStatusDraft))
}

func TestOrDashAndFirstError(t *testing.T) {
	assert.Equal(t, "-", orDash(nil))
	assert.Equal(t, "120k", orDash(strPtr("120k")))

	errs := map[string][]string{"company_name": {"can't be blank", "other"}}
	assert.Equal(t, "can't be blank", firstError(errs, "company_name"))
	assert.Equal(t, "", firstError(errs, "role_title"))
	assert.Equal(t, "", firstError(nil, "role_title"))
}

func TestFormFromApplication(t *testing.T) {
	followUp := models.NewDate(2024, time.March, 1)
	app := &models.Application{
		CompanyName: "Acme",
		RoleTitle:   "Engineer",
		Status:      models.ApplicationStatusOffer,
		AppliedOn:   models.NewDate(2024, time.February, 1),
		FollowUpOn:  &followUp,
		Salary:      strPtr("120k"),
	}

	form := formFromApplication(app)

	assert.Equal(t, "Acme", form["company_name"])
	assert.Equal(t, "offer", form["status"])
	assert.Equal(t, "2024-02-01", form["applied_on"])
	assert.Equal(t, "2024-03-01", form["follow_up_on"])
	assert.Equal(t, "120k", form["salary"])
	assert.NotContains(t, form, "notes")
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := parseTemplates()
	assert.NoError(t, err)
	for _, name := range []string{"applications/index", "applications/show", "applications/form", "not_found", "error"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
