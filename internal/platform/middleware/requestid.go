package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-ID"

const contextKeyRequestID = "radreport.request_id"

// ContextRequestID returns the correlation id assigned to the request,
// or "" when RequestID has not run.
func ContextRequestID(c echo.Context) string {
	rid, _ := c.Get(contextKeyRequestID).(string)
	return rid
}

// RequestID assigns each request a correlation id, preserving one supplied
// by the client, and echoes it back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(contextKeyRequestID, rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
