package dto

import "net/http"

// Standard error codes used in API responses
const (
	// General errors
	ErrCodeBadRequest  = "ERR_BAD_REQUEST"
	ErrCodeValidation  = "ERR_VALIDATION"
	ErrCodeNotFound    = "ERR_NOT_FOUND"
	ErrCodeConflict    = "ERR_CONFLICT"
	ErrCodeInternal    = "ERR_INTERNAL"
	ErrCodeRateLimited = "ERR_RATE_LIMITED"

	// Auth errors
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"

	// Verification errors
	ErrCodeCodeExpired  = "ERR_CODE_EXPIRED"
	ErrCodeCodeMismatch = "ERR_CODE_MISMATCH"

	// Business errors
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	ErrCodeUpstream     = "ERR_UPSTREAM"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeCodeExpired:  http.StatusGone,
	ErrCodeCodeMismatch: http.StatusUnprocessableEntity,
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeUpstream:     http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain-layer error codes to API error codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeConflict,
	"INVALID_INPUT":  ErrCodeValidation,
	"UNAUTHORIZED":   ErrCodeUnauthorized,
	"FORBIDDEN":      ErrCodeForbidden,
	"INVALID_STATE":  ErrCodeInvalidState,
	"INTERNAL_ERROR": ErrCodeInternal,

	"CODE_EXPIRED":   ErrCodeCodeExpired,
	"CODE_MISMATCH":  ErrCodeCodeMismatch,
	"UPSTREAM_ERROR": ErrCodeUpstream,

	"INVALID_CREDENTIALS": ErrCodeUnauthorized,
	"ACCOUNT_DEACTIVATED": ErrCodeUnauthorized,
	"TOKEN_EXPIRED":       ErrCodeUnauthorized,
	"TOKEN_INVALID":       ErrCodeUnauthorized,
	"TOKEN_MAX_REFRESH":   ErrCodeUnauthorized,
	"TOKEN_ERROR":         ErrCodeUnauthorized,
	"USER_NOT_FOUND":      ErrCodeNotFound,

	"INVALID_PURPOSE":  ErrCodeValidation,
	"INVALID_EMAIL":    ErrCodeValidation,
	"INVALID_NAME":     ErrCodeValidation,
	"INVALID_PASSWORD": ErrCodeValidation,
	"INVALID_LANGUAGE": ErrCodeValidation,
}

// NormalizeErrorCode converts a domain error code to the API error code
func NormalizeErrorCode(code string) string {
	if normalized, ok := LegacyErrorCodeMapping[code]; ok {
		return normalized
	}
	return code
}
