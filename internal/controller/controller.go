package controller

import (
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/middleware"
	"github.com/shopright/backend/pkg/errs"
	"github.com/shopright/backend/pkg/response"
)

// CustomValidator plugs go-playground/validator into echo so request payloads
// are checked before any service logic runs.
type CustomValidator struct {
	validator *validatorv10.Validate
}

func CreateValidator() *CustomValidator {
	return &CustomValidator{validator: validatorv10.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// bindAndValidate binds the request body and validates it; on failure the 400
// response has already been written and ok is false.
func bindAndValidate(e echo.Context, payload interface{}) (ok bool, err error) {
	if err := e.Bind(payload); err != nil {
		return false, response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(payload); err != nil {
		var fields []response.ValidationError
		if validationErrs, ok := err.(validatorv10.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				fields = append(fields, response.ValidationError{Field: fieldErr.Field(), Tag: fieldErr.Tag()})
			}
		}
		return false, response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	return true, nil
}

func currentUser(e echo.Context) domain.User {
	user, _ := e.Get(middleware.UserContextKey).(domain.User)
	return user
}
