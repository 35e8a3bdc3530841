package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/errs"
	"github.com/shopright/backend/pkg/response"
	"github.com/shopright/backend/pkg/utils"
)

// UserContextKey holds the resolved domain.User on the echo context.
const UserContextKey = "user"

// Authenticate verifies the identity-provider session token on the
// Authorization header and resolves it to the internal user record synced from
// the provider.
func Authenticate(userService service.UserService, sessionSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			externalID, err := utils.VerifySessionToken(token, sessionSecret)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			user, err := userService.GetUserByExternalID(c.Request().Context(), externalID)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}

// AdminOnly gates admin routes on the configured admin address. Runs after
// Authenticate.
func AdminOnly(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(domain.User)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if user.Email != adminEmail {
				return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
			}

			return next(c)
		}
	}
}
