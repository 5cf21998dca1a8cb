package utils

import (
	"net/http"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response. Fields carries field-level
// validation messages, Failed the per-id reasons of a partial batch failure.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// APIErrorResponse maps a typed gateway error onto the admin API response.
// Validation field maps and partial-failure id maps ride along so the
// dashboard can render them inline.
func APIErrorResponse(c echo.Context, err error) error {
	status := apierr.HTTPStatus(err)
	resp := ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Code:    status,
	}
	if e, ok := apierr.AsError(err); ok {
		resp.Error = e.Message
		resp.Fields = e.Fields
		resp.Failed = e.Failed
	}
	return c.JSON(status, resp)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
