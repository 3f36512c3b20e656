package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/jobtracker/internal/i18n"
	"github.com/javajoker/jobtracker/internal/models"
)

func strPtr(s string) *string { return &s }

func validApplication() *models.Application {
	app := models.NewApplication()
	app.CompanyName = "Acme"
	app.RoleTitle = "Engineer"
	app.AppliedOn = models.NewDate(2024, time.January, 1)
	return app
}

func pinnedCtx() context.Context {
	return WithToday(context.Background(), models.NewDate(2024, time.March, 15))
}

func TestValidateApplicationAcceptsValidRecord(t *testing.T) {
	app := validApplication()
	app.FollowUpOn = models.NewDate(2024, time.January, 1).Ptr()
	app.LastFollowedUpOn = models.NewDate(2024, time.March, 15).Ptr()
	app.JobURL = strPtr("https://jobs.example.com/123")
	app.ContactEmail = strPtr("recruiter@example.com")
	app.Notes = strPtr("anything goes")

	assert.Empty(t, ValidateApplication(pinnedCtx(), app))
}

func TestValidateApplicationReportsEveryRule(t *testing.T) {
	app := &models.Application{
		CompanyName:  "   ",
		Status:       "ghosted",
		JobURL:       strPtr("ftp://example.com/file"),
		ContactEmail: strPtr("not-an-email"),
	}

	details := ValidateApplication(pinnedCtx(), app).Details("en")

	assert.Equal(t, map[string][]string{
		"company_name":  {"can't be blank"},
		"role_title":    {"can't be blank"},
		"status":        {"is not included in the list"},
		"applied_on":    {"can't be blank"},
		"job_url":       {"is invalid"},
		"contact_email": {"is invalid"},
	}, details)
}

func TestValidateApplicationBlankStatus(t *testing.T) {
	app := validApplication()
	app.Status = ""

	errs := ValidateApplication(pinnedCtx(), app)
	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Field: "status", Key: i18n.KeyValidationBlank}, errs[0])
	assert.Equal(t, FieldError{Field: "status", Key: i18n.KeyValidationInclusion}, errs[1])

	assert.Equal(t, map[string][]string{
		"status": {"can't be blank", "is not included in the list"},
	}, errs.Details("en"))
}

func TestValidateApplicationContactEmail(t *testing.T) {
	valid := []string{
		"recruiter@example.com",
		"first.last+jobs@mail.example.co.uk",
		"user@localhost",
		"a@b",
	}
	for _, email := range valid {
		app := validApplication()
		app.ContactEmail = strPtr(email)
		assert.Empty(t, ValidateApplication(pinnedCtx(), app), email)
	}

	invalid := []string{
		"not-an-email",
		"@example.com",
		"user@",
		"user@-example.com",
		"user@exa mple.com",
		"user@@example.com",
	}
	for _, email := range invalid {
		app := validApplication()
		app.ContactEmail = strPtr(email)
		assert.Equal(t, map[string][]string{
			"contact_email": {"is invalid"},
		}, ValidateApplication(pinnedCtx(), app).Details("en"), email)
	}
}

func TestValidateApplicationAcceptsEveryStatus(t *testing.T) {
	for _, status := range models.ApplicationStatuses {
		app := validApplication()
		app.Status = status
		assert.Empty(t, ValidateApplication(pinnedCtx(), app), status)
	}
}

func TestValidateApplicationFollowUpBeforeApplied(t *testing.T) {
	app := validApplication()
	app.FollowUpOn = models.NewDate(2023, time.December, 31).Ptr()

	assert.Equal(t, map[string][]string{
		"follow_up_on": {"must be on or after applied_on"},
	}, ValidateApplication(pinnedCtx(), app).Details("en"))
}

func TestValidateApplicationLastFollowedUpInFuture(t *testing.T) {
	app := validApplication()
	app.LastFollowedUpOn = models.NewDate(2024, time.March, 16).Ptr()

	assert.Equal(t, map[string][]string{
		"last_followed_up_on": {"cannot be in the future"},
	}, ValidateApplication(pinnedCtx(), app).Details("en"))
}

func TestValidateApplicationLastFollowedUpDefaultsToRealToday(t *testing.T) {
	app := validApplication()
	app.LastFollowedUpOn = models.DateOf(time.Now().AddDate(0, 0, 2)).Ptr()

	errs := ValidateApplication(context.Background(), app)
	assert.True(t, errs.Has("last_followed_up_on"))
}

func TestValidateApplicationLastFollowedUpBothRules(t *testing.T) {
	app := validApplication()
	app.AppliedOn = models.NewDate(2024, time.June, 1)
	app.LastFollowedUpOn = models.NewDate(2024, time.May, 1).Ptr()

	assert.Equal(t, map[string][]string{
		"last_followed_up_on": {"must be on or after applied_on", "cannot be in the future"},
	}, ValidateApplication(pinnedCtx(), app).Details("en"))
}

func TestValidateApplicationSkipsDateComparisonWithoutAppliedOn(t *testing.T) {
	app := validApplication()
	app.AppliedOn = models.Date{}
	app.FollowUpOn = models.NewDate(2000, time.January, 1).Ptr()

	details := ValidateApplication(pinnedCtx(), app).Details("en")
	assert.Equal(t, map[string][]string{"applied_on": {"can't be blank"}}, details)
}

func TestValidationErrorsDetailsTranslates(t *testing.T) {
	var errs ValidationErrors
	errs.Add("company_name", i18n.KeyValidationBlank)

	assert.Equal(t, []string{"不能為空白"}, errs.Details("zh_TW")["company_name"])
	assert.Contains(t, errs.Error(), "company_name can't be blank")
	assert.True(t, errs.Has("company_name"))
	assert.False(t, errs.Has("role_title"))
}
