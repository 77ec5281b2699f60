package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	ErrCodeRateLimited  = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain
// error codes map directly so handlers can pass them through.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Webhook rejection codes. The gateway contract requires a 400 when
	// the signature or the payload cannot be accepted.
	"INVALID_SIGNATURE": http.StatusBadRequest,
	"MALFORMED_PAYLOAD": http.StatusBadRequest,
	"MISSING_FIELDS":    http.StatusBadRequest,

	// Membership
	"MEMBER_NOT_FOUND":      http.StatusNotFound,
	"MEMBER_NAME_REQUIRED":  http.StatusBadRequest,
	"MEMBER_EMAIL_REQUIRED": http.StatusBadRequest,
	"MEMBER_EMAIL_EXISTS":   http.StatusConflict,
	"PLAN_NOT_FOUND":        http.StatusNotFound,
	"PLAN_CODE_REQUIRED":    http.StatusBadRequest,
	"PLAN_NAME_REQUIRED":    http.StatusBadRequest,
	"PLAN_DURATION_INVALID": http.StatusBadRequest,
	"PLAN_PRICE_NEGATIVE":   http.StatusBadRequest,
	"PLAN_CODE_EXISTS":      http.StatusConflict,
	"PLAN_INACTIVE":         http.StatusUnprocessableEntity,
	"MEMBERSHIP_INACTIVE":   http.StatusUnprocessableEntity,

	// Billing
	"PAYMENT_NOT_FOUND":      http.StatusNotFound,
	"PAYMENT_NOT_PENDING":    http.StatusConflict,
	"PAYMENT_AMOUNT_INVALID": http.StatusBadRequest,
	"PAYMENT_STATUS_INVALID": http.StatusBadRequest,

	// Identity
	"USER_NOT_FOUND":      http.StatusNotFound,
	"USER_EMAIL_REQUIRED": http.StatusBadRequest,
	"USER_EMAIL_EXISTS":   http.StatusConflict,
	"PASSWORD_TOO_SHORT":  http.StatusBadRequest,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_ROLE":        http.StatusBadRequest,
	"USER_DISABLED":       http.StatusForbidden,

	// Training
	"TRAINER_NOT_FOUND":      http.StatusNotFound,
	"TRAINER_NAME_REQUIRED":  http.StatusBadRequest,
	"CLASS_NOT_FOUND":        http.StatusNotFound,
	"CLASS_NAME_REQUIRED":    http.StatusBadRequest,
	"CLASS_CAPACITY_INVALID": http.StatusBadRequest,
	"CLASS_TIME_INVALID":     http.StatusBadRequest,
	"CLASS_FULL":             http.StatusUnprocessableEntity,

	// Notifications
	"NOTIFICATION_NOT_FOUND":     http.StatusNotFound,
	"NOTIFICATION_BODY_REQUIRED": http.StatusBadRequest,
}

// LegacyErrorCodeMapping maps shared domain error codes to the
// standardized ERR_ format.
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"INTERNAL_ERROR":       ErrCodeInternal,
}

// NormalizeErrorCode converts a shared domain error code to the
// standardized format. Context-specific codes pass through unchanged.
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
