package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/sharedesk/internal/domain/dto"
	"github.com/guttosm/sharedesk/internal/logger"
)

// ExposeDetailsKey is the context key holding whether internal error text may
// be echoed to clients.
const ExposeDetailsKey = "expose_error_details"

// ErrorDisclosure stores the deployment's disclosure policy on every request.
// Only development deployments should pass true.
func ErrorDisclosure(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ExposeDetailsKey, expose)
		c.Next()
	}
}

// exposeDetails returns err only when the request runs under a development policy.
func exposeDetails(c *gin.Context, err error) error {
	if c.GetBool(ExposeDetailsKey) {
		return err
	}
	return nil
}

// AbortWithError logs err with the request id and aborts with the standard
// error body. The internal error text reaches the client only in development.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	rid, _ := c.Get(RequestIDKey)
	log := logger.WithRequest(toString(rid))
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg(message)

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, exposeDetails(c, err)))
}

// ErrorHandler renders errors attached with c.Error after the handler chain
// when no response has been written yet.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	message, cause := "internal server error", last
	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		message, cause = resp.Message, nil
		if resp.ErrorDetails != "" {
			cause = errors.New(resp.ErrorDetails)
		}
	}
	AbortWithError(c, http.StatusInternalServerError, message, cause)
}
