package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const terminalKey contextKey = "terminal_id"

// TerminalHeader identifies which till a request comes from. Per-terminal
// state (sidebar expansion) is scoped by it.
const TerminalHeader = "X-Terminal-ID"

// TerminalMiddleware copies the till identity from the request header into
// the request context.
func TerminalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(TerminalHeader); id != "" {
			ctx := context.WithValue(c.Request.Context(), terminalKey, id)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// GetTerminalID returns the till identity for the request, or "" when the
// caller did not identify itself.
func GetTerminalID(ctx context.Context) string {
	if val, ok := ctx.Value(terminalKey).(string); ok {
		return val
	}
	return ""
}
