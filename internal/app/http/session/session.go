// Package session keeps the per-request login state and flash messages in
// a signed cookie.
package session

import (
	"net/http"

	"art-collector/internal/domain/users"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	cookieName = "artcollector_session"
	userIDKey  = "user_id"
	currentKey = "current_user"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Middleware installs the cookie-backed session store.
func Middleware(secret string, secure bool) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cookieName, store)
}

func Login(c *gin.Context, userID string) error {
	s := sessions.Default(c)
	s.Set(userIDKey, userID)
	return s.Save()
}

// Logout drops the login but keeps pending flash messages working.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userIDKey)
	c.Set(currentKey, nil)
	return s.Save()
}

func UserID(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(userIDKey).(string)
	return id
}

func Flash(c *gin.Context, kind, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg, kind)
	_ = s.Save()
}

// Flashes pops every pending message of both kinds.
func Flashes(c *gin.Context) (success []string, errs []string) {
	s := sessions.Default(c)
	for _, v := range s.Flashes(FlashSuccess) {
		if msg, ok := v.(string); ok {
			success = append(success, msg)
		}
	}
	for _, v := range s.Flashes(FlashError) {
		if msg, ok := v.(string); ok {
			errs = append(errs, msg)
		}
	}
	_ = s.Save()
	return success, errs
}

func SetCurrentUser(c *gin.Context, u *users.User) {
	c.Set(currentKey, u)
}

func CurrentUser(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(currentKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*users.User)
	return u, ok && u != nil
}
