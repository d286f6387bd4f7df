package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by concern.
const (
	// Authentication (AUTH_*)
	ErrInvalidCredentials = "AUTH_001"
	ErrUserDisabled       = "AUTH_002"
	ErrUserNotFound       = "AUTH_003"
	ErrInvalidToken       = "AUTH_004"
	ErrExpiredToken       = "AUTH_005"
	ErrUserAlreadyExists  = "AUTH_006"

	// Validation (VAL_*)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Ingestion (SYNC_*)
	ErrSyncConfiguration = "SYNC_001" // missing campaign ids / api keys
	ErrSyncAuthFailed    = "SYNC_002" // upstream rejected every credential
	ErrSyncAlreadyActive = "SYNC_003" // a run for this project is in flight

	// Server (SRV_*)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusForbidden,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrSyncConfiguration:   http.StatusUnprocessableEntity,
	ErrSyncAuthFailed:      http.StatusBadGateway,
	ErrSyncAlreadyActive:   http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error payload with the status mapped from
// the code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
