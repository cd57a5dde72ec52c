package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"
)

// Catalog and store-platform error codes
const (
	ErrCodeInvalidImage          = "INVALID_IMAGE"
	ErrCodeAlreadyImported       = "ALREADY_IMPORTED"
	ErrCodeInvalidRemoteProduct  = "INVALID_REMOTE_PRODUCT"
	ErrCodePlatformNotConnected  = "PLATFORM_NOT_CONNECTED"
	ErrCodePlatformAuthFailed    = "PLATFORM_AUTH_FAILED"
	ErrCodePlatformUnavailable   = "PLATFORM_UNAVAILABLE"
	ErrCodePlatformRequestFailed = "PLATFORM_REQUEST_FAILED"
	ErrCodeImageRejected         = "IMAGE_REJECTED"
	ErrCodeRemoteProductNotFound = "REMOTE_PRODUCT_NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeInvalidToken:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeEmailTaken:         http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	ErrCodeInvalidImage:          http.StatusBadRequest,
	ErrCodeAlreadyImported:       http.StatusBadRequest,
	ErrCodeInvalidRemoteProduct:  http.StatusBadRequest,
	ErrCodePlatformNotConnected:  http.StatusBadRequest,
	ErrCodePlatformAuthFailed:    http.StatusBadRequest,
	ErrCodePlatformUnavailable:   http.StatusBadGateway,
	ErrCodePlatformRequestFailed: http.StatusBadGateway,
	ErrCodeImageRejected:         http.StatusUnprocessableEntity,
	ErrCodeRemoteProductNotFound: http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
