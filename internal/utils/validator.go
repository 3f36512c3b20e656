// internal/utils/validator.go
package utils

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/jobtracker/internal/i18n"
	"github.com/javajoker/jobtracker/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("present", validatePresent)
	validate.RegisterValidation("mailto_email", validateMailtoEmail)
	validate.RegisterStructValidationCtx(validateApplicationRules, models.Application{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateApplication runs every rule against app and returns all failures.
// The reference date for "not in the future" comes from ctx (see WithToday).
func ValidateApplication(ctx context.Context, app *models.Application) ValidationErrors {
	return GetValidationErrors(validate.StructCtx(ctx, app))
}

type todayKey struct{}

// WithToday pins the date used by date rules during validation.
func WithToday(ctx context.Context, today models.Date) context.Context {
	return context.WithValue(ctx, todayKey{}, today)
}

func todayFrom(ctx context.Context) models.Date {
	if today, ok := ctx.Value(todayKey{}).(models.Date); ok && !today.IsZero() {
		return today
	}
	return models.Today()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// present rejects empty and whitespace-only strings.
func validatePresent(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// mailtoEmailPattern follows RFC 6068 addr-spec as browsers and most
// mailers accept it; dotless domains such as "user@localhost" are valid.
var mailtoEmailPattern = regexp.MustCompile(
	`\A[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\z`,
)

func validateMailtoEmail(fl validator.FieldLevel) bool {
	return mailtoEmailPattern.MatchString(fl.Field().String())
}

const (
	tagApplicationStatus = "application_status"
	tagAppliedOnRequired = "applied_on_required"
	tagOnOrAfterApplied  = "on_or_after_applied_on"
	tagNotInFuture       = "not_in_future"
)

// validateApplicationRules runs after the field tags, so a blank status
// reports both "blank" and "not included".
func validateApplicationRules(ctx context.Context, sl validator.StructLevel) {
	app := sl.Current().Interface().(models.Application)

	if !app.Status.Valid() {
		sl.ReportError(app.Status, "status", "Status", tagApplicationStatus, "")
	}

	if app.AppliedOn.IsZero() {
		sl.ReportError(app.AppliedOn, "applied_on", "AppliedOn", tagAppliedOnRequired, "")
	}

	if app.FollowUpOn != nil && !app.AppliedOn.IsZero() && app.FollowUpOn.Before(app.AppliedOn) {
		sl.ReportError(*app.FollowUpOn, "follow_up_on", "FollowUpOn", tagOnOrAfterApplied, "")
	}

	if app.LastFollowedUpOn != nil {
		if !app.AppliedOn.IsZero() && app.LastFollowedUpOn.Before(app.AppliedOn) {
			sl.ReportError(*app.LastFollowedUpOn, "last_followed_up_on", "LastFollowedUpOn", tagOnOrAfterApplied, "")
		}
		if app.LastFollowedUpOn.After(todayFrom(ctx)) {
			sl.ReportError(*app.LastFollowedUpOn, "last_followed_up_on", "LastFollowedUpOn", tagNotInFuture, "")
		}
	}
}

// FieldError is a single failed rule. Key is an i18n message key.
type FieldError struct {
	Field string `json:"field"`
	Key   string `json:"key"`
}

// ValidationErrors is the ordered list of failed rules for one record.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+" "+i18n.T(i18n.DefaultLanguage, fe.Key))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (v *ValidationErrors) Add(field, key string) {
	*v = append(*v, FieldError{Field: field, Key: key})
}

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Details groups messages by field, keeping rule order within each field.
func (v ValidationErrors) Details(lang string) map[string][]string {
	details := make(map[string][]string, len(v))
	for _, fe := range v {
		details[fe.Field] = append(details[fe.Field], i18n.T(lang, fe.Key))
	}
	return details
}

func GetValidationErrors(err error) ValidationErrors {
	var validationErrors ValidationErrors

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors.Add(e.Field(), getValidationMessageKey(e))
		}
	}

	return validationErrors
}

func getValidationMessageKey(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "present", tagAppliedOnRequired:
		return i18n.KeyValidationBlank
	case tagApplicationStatus, "oneof":
		return i18n.KeyValidationInclusion
	case tagOnOrAfterApplied:
		return i18n.KeyValidationOnOrAfterApplied
	case tagNotInFuture:
		return i18n.KeyValidationNotInFuture
	default:
		return i18n.KeyValidationInvalid
	}
}
