// internal/web/form.go
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/jobtracker/internal/client"
	"github.com/javajoker/jobtracker/internal/models"
)

// applicationFields lists the form inputs forwarded to the API.
var applicationFields = []string{
	"company_name",
	"role_title",
	"status",
	"applied_on",
	"follow_up_on",
	"last_followed_up_on",
	"job_url",
	"contact_email",
	"salary",
	"next_action",
	"notes",
}

// applicationForm holds the raw strings shown in the form inputs.
type applicationForm map[string]string

func newApplicationForm(today models.Date) applicationForm {
	return applicationForm{
		"status":     string(models.ApplicationStatusApplied),
		"applied_on": today.String(),
	}
}

func formFromApplication(app *models.Application) applicationForm {
	form := applicationForm{
		"company_name": app.CompanyName,
		"role_title":   app.RoleTitle,
		"status":       string(app.Status),
	}
	if !app.AppliedOn.IsZero() {
		form["applied_on"] = app.AppliedOn.String()
	}
	setDate(form, "follow_up_on", app.FollowUpOn)
	setDate(form, "last_followed_up_on", app.LastFollowedUpOn)
	setString(form, "job_url", app.JobURL)
	setString(form, "contact_email", app.ContactEmail)
	setString(form, "salary", app.Salary)
	setString(form, "next_action", app.NextAction)
	setString(form, "notes", app.Notes)
	return form
}

func formFromRequest(c *gin.Context) applicationForm {
	form := applicationForm{}
	for _, field := range applicationFields {
		if value, ok := c.GetPostForm(field); ok {
			form[field] = value
		}
	}
	return form
}

// Payload converts the submitted inputs. Fields absent from the request are
// left out so the API keeps their stored values.
func (f applicationForm) Payload() client.Payload {
	payload := make(client.Payload, len(f))
	for field, value := range f {
		payload[field] = value
	}
	return payload
}

func setDate(form applicationForm, field string, d *models.Date) {
	if d != nil && !d.IsZero() {
		form[field] = d.String()
	}
}

func setString(form applicationForm, field string, s *string) {
	if s != nil {
		form[field] = *s
	}
}
