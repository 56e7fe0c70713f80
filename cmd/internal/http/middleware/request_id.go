package middleware

import (
	"strconv"

	"sathi/cmd/internal/utils/uid"

	"github.com/labstack/echo/v4"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every response with a process-unique id so a log
// line can be matched to the request that produced it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strconv.FormatInt(uid.Generate(), 10)
			c.Set("request_id", id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}
