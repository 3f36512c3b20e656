// internal/services/params.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/javajoker/jobtracker/internal/i18n"
	"github.com/javajoker/jobtracker/internal/models"
	"github.com/javajoker/jobtracker/internal/utils"
)

// OptionalString distinguishes an absent JSON key from an explicit null.
// Numbers and booleans are accepted and kept as their literal text.
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		o.Null = true
		o.Value = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		o.Null = false
		return json.Unmarshal(data, &o.Value)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("expected a string, got %s", data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			o.Value = n.String()
			return nil
		}
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		o.Value = fmt.Sprint(b)
		return nil
	}
}

// Blank reports whether the field was sent as null, empty or whitespace.
func (o OptionalString) Blank() bool {
	return o.Null || strings.TrimSpace(o.Value) == ""
}

func Present(value string) OptionalString {
	return OptionalString{Set: true, Value: value}
}

func Null() OptionalString {
	return OptionalString{Set: true, Null: true}
}

// ApplicationParams is the permitted set of writable fields. Keys outside
// this set are ignored by the JSON decoder.
type ApplicationParams struct {
	CompanyName      OptionalString `json:"company_name"`
	RoleTitle        OptionalString `json:"role_title"`
	Status           OptionalString `json:"status"`
	AppliedOn        OptionalString `json:"applied_on"`
	FollowUpOn       OptionalString `json:"follow_up_on"`
	LastFollowedUpOn OptionalString `json:"last_followed_up_on"`
	JobURL           OptionalString `json:"job_url"`
	ContactEmail     OptionalString `json:"contact_email"`
	Salary           OptionalString `json:"salary"`
	NextAction       OptionalString `json:"next_action"`
	Notes            OptionalString `json:"notes"`
}

// ApplyTo copies every supplied field onto app. Fields that were not sent are
// left alone. Unparseable dates are returned as validation errors and leave
// the target field unchanged.
func (p *ApplicationParams) ApplyTo(app *models.Application) utils.ValidationErrors {
	var errs utils.ValidationErrors

	if p.CompanyName.Set {
		app.CompanyName = p.CompanyName.Value
	}
	if p.RoleTitle.Set {
		app.RoleTitle = p.RoleTitle.Value
	}
	if p.Status.Set {
		app.Status = models.ApplicationStatus(p.Status.Value)
	}

	if p.AppliedOn.Set {
		if p.AppliedOn.Blank() {
			app.AppliedOn = models.Date{}
		} else if d, err := models.ParseDate(strings.TrimSpace(p.AppliedOn.Value)); err == nil {
			app.AppliedOn = d
		} else {
			errs.Add("applied_on", i18n.KeyValidationInvalidDate)
		}
	}
	applyOptionalDate(&app.FollowUpOn, p.FollowUpOn, "follow_up_on", &errs)
	applyOptionalDate(&app.LastFollowedUpOn, p.LastFollowedUpOn, "last_followed_up_on", &errs)

	applyOptionalString(&app.JobURL, p.JobURL)
	applyOptionalString(&app.ContactEmail, p.ContactEmail)
	applyOptionalString(&app.Salary, p.Salary)
	applyOptionalString(&app.NextAction, p.NextAction)
	applyOptionalString(&app.Notes, p.Notes)

	return errs
}

func applyOptionalDate(target **models.Date, value OptionalString, field string, errs *utils.ValidationErrors) {
	if !value.Set {
		return
	}
	if value.Blank() {
		*target = nil
		return
	}
	d, err := models.ParseDate(strings.TrimSpace(value.Value))
	if err != nil {
		errs.Add(field, i18n.KeyValidationInvalidDate)
		return
	}
	*target = &d
}

// Blank optional strings are stored as NULL.
func applyOptionalString(target **string, value OptionalString) {
	if !value.Set {
		return
	}
	if value.Blank() {
		*target = nil
		return
	}
	v := value.Value
	*target = &v
}
