// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Applications
	KeyApplicationNotFound = "application.not_found"
	KeyApplicationCreated  = "application.created"
	KeyApplicationUpdated  = "application.updated"
	KeyApplicationDeleted  = "application.deleted"

	// Validation
	KeyValidationBlank            = "validation.blank"
	KeyValidationInclusion        = "validation.inclusion"
	KeyValidationInvalid          = "validation.invalid"
	KeyValidationInvalidDate      = "validation.invalid_date"
	KeyValidationOnOrAfterApplied = "validation.on_or_after_applied_on"
	KeyValidationNotInFuture      = "validation.not_in_future"

	// Requests
	KeyRequestMalformed   = "request.malformed"
	KeyRequestRateLimited = "request.rate_limited"
	KeyInternalError      = "internal.error"
)
