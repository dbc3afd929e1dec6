package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/dashboard/internal/api/middleware"
	"github.com/freelancehub/dashboard/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware. A missing
// role means the middleware did not run and is rejected with 401. A client
// without client_id is passed through: the service serves it the empty view
// and records the integrity fault.
func ctxActor(c echo.Context) (domain.Actor, error) {
	role, _ := c.Get(middleware.KeyRole).(string)
	if role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(middleware.KeyUsername).(string)
	clientID, _ := c.Get(middleware.KeyClientID).(string)

	return domain.Actor{
		Username: username,
		Role:     domain.Role(role),
		ClientID: clientID,
	}, nil
}
