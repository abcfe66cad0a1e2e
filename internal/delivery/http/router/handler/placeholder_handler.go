package handler

import (
	"campusconnect/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// NotImplemented answers for route groups that are mounted but have no
// behavior yet (clubs, admin, events).
func NotImplemented(c echo.Context) error {
	return response.NotImplemented(c, "NOT_IMPLEMENTED", "This route group is not implemented yet")
}
