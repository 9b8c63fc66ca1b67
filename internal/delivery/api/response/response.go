// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any `json:"data"`
}

// PagedResponse is a successful list response with its paging block
type PagedResponse struct {
	Data   any           `json:"data"`
	Paging entity.Paging `json:"paging"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a 200 response with data
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}

// SuccessWithPaging returns a 200 response with data and paging
func SuccessWithPaging(c echo.Context, data any, paging entity.Paging) error {
	return c.JSON(http.StatusOK, PagedResponse{Data: data, Paging: paging})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
