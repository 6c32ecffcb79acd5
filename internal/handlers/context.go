package handlers

import "github.com/labstack/echo/v4"

// getUserIDFromContext returns the authenticated user's local ID, or 0 when
// the request carries no valid session
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}
