// internal/web/funcs.go
package web

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/javajoker/jobtracker/internal/models"
)

const displayDateLayout = "2 Jan 2006"

const placeholder = "-"

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":  formatDate,
		"host":        hostFromURL,
		"statusClass": statusClass,
		"orDash":      orDash,
		"firstError":  firstError,
		"field":       newInputField,
	}
}

// formatDate accepts a Date or *Date so templates can pass either field kind.
func formatDate(v interface{}) string {
	var d models.Date
	switch t := v.(type) {
	case models.Date:
		d = t
	case *models.Date:
		if t == nil {
			return placeholder
		}
		d = *t
	default:
		return placeholder
	}
	if d.IsZero() {
		return placeholder
	}
	return d.In(time.UTC).Format(displayDateLayout)
}

func hostFromURL(raw *string) string {
	if raw == nil || *raw == "" {
		return placeholder
	}
	u, err := url.Parse(*raw)
	if err != nil || u.Host == "" {
		return *raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func statusClass(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusApplied:
		return "pill pill-blue"
	case models.ApplicationStatusInterview:
		return "pill pill-amber"
	case models.ApplicationStatusOffer:
		return "pill pill-purple"
	case models.ApplicationStatusRejected:
		return "pill pill-rose"
	case models.ApplicationStatusWithdrawn:
		return "pill pill-zinc"
	default:
		return "pill pill-muted"
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}

func firstError(errs map[string][]string, field string) string {
	if msgs := errs[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// inputField is the view model for a single labelled form input.
type inputField struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

func newInputField(p pageData, name, label, inputType string) inputField {
	return inputField{
		Name:  name,
		Label: label,
		Type:  inputType,
		Value: p.Form[name],
		Error: firstError(p.Errors, name),
	}
}
