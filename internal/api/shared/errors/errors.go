package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Ledger rejections (4xx)
	ErrCodeZeroAmount        ErrorCode = "zero_amount"
	ErrCodeNotEnoughShares   ErrorCode = "not_enough_shares"
	ErrCodeMathError         ErrorCode = "math_error"
	ErrCodeNotOwner          ErrorCode = "not_owner"
	ErrCodeNotListed         ErrorCode = "not_listed"
	ErrCodePriceTooLow       ErrorCode = "price_too_low"
	ErrCodeInsufficientFunds ErrorCode = "insufficient_funds"
	ErrCodePropertyExists    ErrorCode = "property_exists"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// ledgerErrors maps ledger sentinels to their HTTP status and code
var ledgerErrors = []struct {
	err    error
	status int
	code   ErrorCode
}{
	{domain.ErrZeroAmount, http.StatusBadRequest, ErrCodeZeroAmount},
	{domain.ErrNotEnoughShares, http.StatusConflict, ErrCodeNotEnoughShares},
	{domain.ErrMathError, http.StatusUnprocessableEntity, ErrCodeMathError},
	{domain.ErrNotOwner, http.StatusForbidden, ErrCodeNotOwner},
	{domain.ErrNotListed, http.StatusConflict, ErrCodeNotListed},
	{domain.ErrPriceTooLow, http.StatusBadRequest, ErrCodePriceTooLow},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrCodeInsufficientFunds},
	{domain.ErrPropertyAlreadyExists, http.StatusConflict, ErrCodePropertyExists},
	{domain.ErrPropertyNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrShareUnitNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrInvalidAddress, http.StatusBadRequest, ErrCodeBadRequest},
}

// FromError converts err into an HTTP status and APIError. Ledger rejections keep their
// message; anything unrecognized becomes an internal error with message as the summary.
func FromError(err error, message string) (int, *APIError) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrCodeNotFound:
			return http.StatusNotFound, apiErr
		case ErrCodeUnauthorized:
			return http.StatusUnauthorized, apiErr
		case ErrCodeForbidden:
			return http.StatusForbidden, apiErr
		case ErrCodeInternalError, ErrCodeDatabaseError:
			return http.StatusInternalServerError, apiErr
		default:
			return http.StatusBadRequest, apiErr
		}
	}

	for _, le := range ledgerErrors {
		if errors.Is(err, le.err) {
			return le.status, &APIError{Code: le.code, Message: le.err.Error()}
		}
	}

	return http.StatusInternalServerError, NewInternalError(message)
}
