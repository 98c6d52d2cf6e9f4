package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses.
	// Callers may supply their own to correlate an analysis run with
	// their upstream logs.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key holding the trace ID
	TraceIDContextKey = "trace_id"
)

// RequestID assigns each request a trace ID, reusing the caller's when
// present. The ID travels through the pipeline log lines and comes back
// on the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID from the Echo context.
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
