// Package middleware carries the request helpers shared by the router
// setup and the page handlers.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the message payload every failed request carries.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HandleError logs the failure against the request logger and writes the
// message payload with the given status.
func HandleError(c *gin.Context, status int, message string, err error) {
	if value, exists := c.Get("logger"); exists {
		logger := value.(*zerolog.Logger)

		event := logger.Warn().
			Int("code", status).
			Str("url", c.Request.URL.Path)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg(message)
	}

	c.JSON(status, ErrorResponse{Message: message})
}
