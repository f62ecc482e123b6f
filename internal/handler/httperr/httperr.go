package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error body shape every endpoint emits.
type Response struct {
	Error string `json:"error"`
}

// AbortWithError renders the public error body and records the underlying
// error on the context so the error and logging middleware can see it.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, Response{Error: msg})
}
