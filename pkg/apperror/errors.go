package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ingestion (ING) ----

func ErrNoPaymentID() *AppError {
	return New("ING_001", "No payment id in webhook payload", http.StatusBadRequest)
}

// ---- Payment gateway upstream (GW) ----

func ErrGatewayFetch(err error) *AppError {
	return Wrap("GW_001", "Failed to confirm payment with gateway", http.StatusBadGateway, err)
}

// ---- Device notification (NTF) ----

func ErrNotifyFailed(err error) *AppError {
	return Wrap("NTF_001", "Device notification failed", http.StatusBadGateway, err)
}

// ---- Configuration (CFG) ----

func ErrNotifierUnconfigured() *AppError {
	return New("CFG_001", "Device base URL not configured", http.StatusInternalServerError)
}

func ErrMissingCredential(name string) *AppError {
	return New("CFG_002", fmt.Sprintf("Missing required credential: %s", name), http.StatusInternalServerError)
}

// ---- Device intake security (SEC) ----

func ErrBadDeviceSecret() *AppError {
	return New("SEC_001", "Missing or invalid device secret", http.StatusUnauthorized)
}

// ---- Device registry (DEV) ----

func ErrMissingDeviceID() *AppError {
	return New("DEV_001", "device_id is required", http.StatusBadRequest)
}

func ErrDeviceNotFound() *AppError {
	return New("DEV_002", "Device not found", http.StatusNotFound)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a 400 validation error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("ING_002", message, http.StatusBadRequest)
}
