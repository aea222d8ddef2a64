package middleware

import (
	"errors"
	"net/http"

	"art-collector/internal/app/http/session"
	"art-collector/internal/app/http/view"
	"art-collector/internal/logger"
	"art-collector/internal/service"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Something went wrong. Please try again later."

var statusBySentinel = []struct {
	err    error
	status int
}{
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidResetToken, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrPieceNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrUserAlreadyExists, http.StatusConflict},
}

// Errors that are shown as a flash on another page instead of an error page.
var redirectBySentinel = []struct {
	err error
	to  string
}{
	{service.ErrPieceNotFound, "/collection"},
	{service.ErrUserNotFound, "/home"},
	{service.ErrInvalidCredentials, "/home"},
	{service.ErrInvalidResetToken, "/home"},
	{service.ErrUserAlreadyExists, "/register"},
}

func StatusFromError(err error) int {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func redirectFor(err error) (string, bool) {
	for _, r := range redirectBySentinel {
		if errors.Is(err, r.err) {
			return r.to, true
		}
	}
	return "", false
}

// ErrorHandler turns the last error recorded with c.Error into a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFromError(err)
		log := logger.FromContext(c.Request.Context())

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("uri", c.Request.RequestURI).Msg("request failed")
			view.HTML(c, status, "error.html", gin.H{"Status": status, "Message": internalMessage})
			return
		}

		log.Warn().Err(err).Int("status", status).Msg("request rejected")
		if to, ok := redirectFor(err); ok {
			session.Flash(c, session.FlashError, err.Error())
			c.Redirect(http.StatusFound, to)
			return
		}
		view.HTML(c, status, "error.html", gin.H{"Status": status, "Message": err.Error()})
	}
}

// NotFound renders the error page for unknown routes.
func NotFound(c *gin.Context) {
	view.HTML(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "Page not found.",
	})
}
