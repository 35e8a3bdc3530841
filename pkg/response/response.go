package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/pkg/errs"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

func WriteSuccessResponse(e echo.Context, message string, data interface{}) error {
	return e.JSON(http.StatusOK, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func WriteCreatedResponse(e echo.Context, message string, data interface{}) error {
	return e.JSON(http.StatusCreated, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse maps the error to its HTTP status code. Messages for
// server-side failures are masked so internals never reach the client.
func WriteErrorResponse(e echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		message = errs.ErrInternalServer.Error()
	}

	return e.JSON(statusCode, ErrorResponse{
		Status:  "error",
		Message: message,
		Errors:  errors,
	})
}
