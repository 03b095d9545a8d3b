package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OperationLogger tags the request logger with a fresh operation id so a
// whole checkout submission can be followed through the logs.
func OperationLogger(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	requestLogger := logger.
		With().
		Str("operationId", uuid.New().String()).
		Logger()

	c.Set("logger", &requestLogger)
}
