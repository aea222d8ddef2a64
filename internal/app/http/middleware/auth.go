package middleware

import (
	"context"
	"errors"
	"net/http"

	"art-collector/internal/app/http/session"
	"art-collector/internal/domain/users"
	"art-collector/internal/service"

	"github.com/gin-gonic/gin"
)

type UserLoader interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

// LoadUser resolves the session's user id into the current user. A session
// pointing at a deleted account is cleared.
func LoadUser(accounts UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session.UserID(c)
		if id == "" {
			c.Next()
			return
		}

		u, err := accounts.Get(c.Request.Context(), id)
		switch {
		case err == nil:
			session.SetCurrentUser(c, u)
		case errors.Is(err, service.ErrUserNotFound):
			_ = session.Logout(c)
		default:
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); !ok {
			session.Flash(c, session.FlashError, "You must be signed in first!")
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}
