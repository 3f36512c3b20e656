// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/jobtracker/internal/i18n"
)

// Error codes returned in the "error" field of every error body.
const (
	ErrorCodeNotFound         = "not_found"
	ErrorCodeValidationFailed = "validation_failed"
	ErrorCodeBadRequest       = "bad_request"
	ErrorCodeRateLimited      = "rate_limited"
	ErrorCodeInternal         = "internal_error"
)

type APIError struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, APIError{
		Error:   code,
		Message: message,
		Details: details,
	})
}

func NotFoundResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, ErrorCodeNotFound, "", nil)
}

func BadRequestResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusBadRequest, ErrorCodeBadRequest, i18n.T(lang, i18n.KeyRequestMalformed), nil)
}

func ValidationErrorResponse(c *gin.Context, errors ValidationErrors) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusUnprocessableEntity, ErrorCodeValidationFailed, "", errors.Details(lang))
}

func TooManyRequestsResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusTooManyRequests, ErrorCodeRateLimited, i18n.T(lang, i18n.KeyRequestRateLimited), nil)
}

func InternalErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, ErrorCodeInternal, "", nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLanguage
}

func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString("request_id")
}
