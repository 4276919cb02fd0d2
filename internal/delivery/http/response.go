package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tradeacademy/internal/domain"
)

// Response represents a standardized API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c echo.Context, statusCode int, message string, err interface{}) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Error:   err,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message, nil)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusNotFound, message, nil)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string, err error) error {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return ErrorResponse(c, http.StatusInternalServerError, message, errMsg)
}

// StatusFor maps a domain error to its HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMonthNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTradingExperience),
		errors.Is(err, domain.ErrInvalidRiskTolerance),
		errors.Is(err, domain.ErrUnknownProfileField),
		errors.Is(err, domain.ErrNotEditing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse sends the error response matching a domain error
func DomainErrorResponse(c echo.Context, err error) error {
	switch status := StatusFor(err); status {
	case http.StatusNotFound:
		return NotFoundResponse(c, err.Error())
	case http.StatusBadRequest:
		return BadRequestResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "Internal server error", err)
	}
}
