package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"art-collector/internal/app/http/session"
	"art-collector/internal/app/http/view"
	"art-collector/internal/domain/users"
	"art-collector/internal/service"

	"github.com/gin-gonic/gin"
)

type Accounts interface {
	Register(ctx context.Context, form service.RegisterForm) (*users.User, error)
	Authenticate(ctx context.Context, username, password string) (*users.User, error)
}

type Resets interface {
	Request(ctx context.Context, email, origin string) error
	Verify(ctx context.Context, id, token string) (*users.User, error)
	Reset(ctx context.Context, id, token, newPassword string) error
}

type Handler struct {
	accounts Accounts
	resets   Resets
	baseURL  string
}

// NewHandler builds the account entry points. baseURL prefixes reset links;
// when empty the request's own host is used.
func NewHandler(accounts Accounts, resets Resets, baseURL string) *Handler {
	return &Handler{
		accounts: accounts,
		resets:   resets,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

func (h *Handler) Home(c *gin.Context) {
	view.HTML(c, http.StatusOK, "homepage.html", nil)
}

func (h *Handler) RegisterPage(c *gin.Context) {
	view.HTML(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) Register(c *gin.Context) {
	var form service.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		return
	}

	u, err := h.accounts.Register(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := session.Login(c, u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Welcome!")
	c.Redirect(http.StatusFound, "/collection")
}

func (h *Handler) Login(c *gin.Context) {
	u, err := h.accounts.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := session.Login(c, u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Welcome back!")
	c.Redirect(http.StatusFound, "/collection")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := session.Logout(c); err != nil {
		_ = c.Error(err)
		return
	}
	session.Flash(c, session.FlashSuccess, "Goodbye!")
	c.Redirect(http.StatusFound, "/home")
}

// ------------------------------
// POST /forgotten
// ------------------------------
func (h *Handler) Forgotten(c *gin.Context) {
	err := h.resets.Request(c.Request.Context(), strings.TrimSpace(c.PostForm("email")), h.origin(c))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		session.Flash(c, session.FlashError, "Invalid e-mail address. Try again!")
	case err != nil:
		_ = c.Error(err)
		return
	default:
		session.Flash(c, session.FlashSuccess, "An email with further instructions has been sent to the provided address.")
	}
	c.Redirect(http.StatusFound, "/home")
}

// ------------------------------
// GET /password_reset/:id/:token
// ------------------------------
func (h *Handler) ResetPage(c *gin.Context) {
	u, err := h.resets.Verify(c.Request.Context(), c.Param("id"), c.Param("token"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	view.HTML(c, http.StatusOK, "password_reset.html", gin.H{
		"Email":  u.Email,
		"Action": c.Request.URL.Path,
	})
}

// ------------------------------
// POST /password_reset/:id/:token
// ------------------------------
func (h *Handler) Reset(c *gin.Context) {
	if err := h.resets.Reset(c.Request.Context(), c.Param("id"), c.Param("token"), c.PostForm("new_password")); err != nil {
		_ = c.Error(err)
		return
	}
	session.Flash(c, session.FlashSuccess, "Your password has been changed. Next time you log in, use your new password!")
	c.Redirect(http.StatusFound, "/home")
}

func (h *Handler) origin(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
