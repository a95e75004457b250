package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP
func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
