package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire error envelope: {"error": ..., "message": ...}. The
// message is omitted for unexpected failures where there is nothing
// actionable to say.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AbortWithError records the original error on the context for the error
// middleware (and future monitoring) and writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, label, message string) {
	resp := Response{Status: status, Error: label, Message: message}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
