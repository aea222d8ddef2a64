package users

import (
	"context"
	"errors"
	"net/http"

	"art-collector/internal/app/http/session"
	"art-collector/internal/app/http/view"
	"art-collector/internal/domain/users"
	"art-collector/internal/service"

	"github.com/gin-gonic/gin"
)

type Accounts interface {
	UpdateProfile(ctx context.Context, userID string, form service.ProfileForm) error
	UpdateCustomTable(ctx context.Context, userID, table string) error
	ChangePassword(ctx context.Context, userID, current, next string) error
	DeleteAccount(ctx context.Context, userID, password string) error
}

type Handler struct {
	accounts Accounts
}

func NewHandler(accounts Accounts) *Handler {
	return &Handler{accounts: accounts}
}

func currentUser(c *gin.Context) *users.User {
	u, _ := session.CurrentUser(c)
	return u
}

func (h *Handler) Preferences(c *gin.Context) {
	view.HTML(c, http.StatusOK, "preferences.html", nil)
}

// ------------------------------
// PUT /preferences
// ------------------------------
// A request carrying custom_table only stores the table layout; anything
// else is a profile edit.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()
	u := currentUser(c)

	var err error
	if table, ok := c.GetPostForm("custom_table"); ok {
		err = h.accounts.UpdateCustomTable(ctx, u.ID, table)
	} else {
		var form service.ProfileForm
		if err = c.ShouldBind(&form); err == nil {
			err = h.accounts.UpdateProfile(ctx, u.ID, form)
		}
	}

	if errors.Is(err, service.ErrUserAlreadyExists) {
		session.Flash(c, session.FlashError, err.Error())
		c.Redirect(http.StatusFound, "/preferences")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Your changes have been saved!")
	c.Redirect(http.StatusFound, "/collection")
}

// ------------------------------
// PUT /preferences/change_password
// ------------------------------
func (h *Handler) ChangePassword(c *gin.Context) {
	err := h.accounts.ChangePassword(c.Request.Context(), currentUser(c).ID, c.PostForm("password"), c.PostForm("new_password"))
	if errors.Is(err, service.ErrInvalidCredentials) {
		session.Flash(c, session.FlashError, "Your current password is incorrect.")
		c.Redirect(http.StatusFound, "/preferences")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Your password has been changed. Next time you log in, use your new password!")
	c.Redirect(http.StatusFound, "/collection")
}

func (h *Handler) DeleteAccountPage(c *gin.Context) {
	view.HTML(c, http.StatusOK, "preferences_deleteAcc.html", nil)
}

// ------------------------------
// DELETE /preferences/deleteAcc/confirmed
// ------------------------------
func (h *Handler) DeleteAccount(c *gin.Context) {
	err := h.accounts.DeleteAccount(c.Request.Context(), currentUser(c).ID, c.PostForm("password"))
	if errors.Is(err, service.ErrInvalidCredentials) {
		session.Flash(c, session.FlashError, "Your password is incorrect.")
		c.Redirect(http.StatusFound, "/preferences/deleteAcc")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := session.Logout(c); err != nil {
		_ = c.Error(err)
		return
	}
	session.Flash(c, session.FlashSuccess, "Goodbye :(")
	c.Redirect(http.StatusFound, "/home")
}
