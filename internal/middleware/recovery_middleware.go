package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"genesis-backend-go/internal/models"
)

// RecoveryMiddleware returns a gin.HandlerFunc (middleware) that
// recovers from any panic within a handler, logs it with a stack trace,
// and answers with the uniform 500 error envelope instead of crashing
// the server.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		panic("RecoveryMiddleware requires a non-nil zap.Logger instance")
	}
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				// Avoid double WriteHeader if a response was already started.
				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError,
						models.NewErrorResponse("The server encountered an unexpected condition which prevented it from fulfilling the request."))
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
