package works

import (
	"context"
	"net/http"
	"time"

	"art-collector/internal/app/http/session"
	"art-collector/internal/app/http/view"
	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"
	"art-collector/internal/domain/works"
	"art-collector/internal/logger"
	"art-collector/internal/service"

	"github.com/gin-gonic/gin"
)

type Collection interface {
	List(ctx context.Context, userID string, filter works.ArchivalFilter) ([]works.ArtPiece, error)
	Get(ctx context.Context, userID, id string) (*works.ArtPiece, error)
	Create(ctx context.Context, userID string, form service.PieceForm, uploads []media.Upload) (*works.ArtPiece, error)
	Update(ctx context.Context, userID, id string, upd service.PieceUpdate) (*works.ArtPiece, error)
	Delete(ctx context.Context, userID, id string) error
	Export(ctx context.Context, user users.User, now time.Time) (*service.Export, error)
}

type Handler struct {
	collection Collection
	now        func() time.Time
}

func NewHandler(collection Collection) *Handler {
	return &Handler{collection: collection, now: time.Now}
}

func currentUser(c *gin.Context) *users.User {
	u, _ := session.CurrentUser(c)
	return u
}

// ------------------------------
// GET /collection
// ------------------------------
func (h *Handler) Index(c *gin.Context) {
	u := currentUser(c)
	filter := works.ParseArchivalFilter(c.Query("archival"))

	pieces, err := h.collection.List(c.Request.Context(), u.ID, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	view.HTML(c, http.StatusOK, "collection.html", gin.H{
		"Pieces":         pieces,
		"ArchivalStatus": filter.String(),
		"UserTable":      u.CustomTable,
	})
}

func (h *Handler) New(c *gin.Context) {
	view.HTML(c, http.StatusOK, "new.html", gin.H{"Piece": works.ArtPiece{}})
}

// ------------------------------
// POST /collection
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var form service.PieceForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		return
	}

	uploads, closeUploads, err := readUploads(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeUploads()

	if _, err := h.collection.Create(c.Request.Context(), currentUser(c).ID, form, uploads); err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Successfully added your new piece!")
	c.Redirect(http.StatusFound, "/collection")
}

// ------------------------------
// POST /collection/export_collection
// ------------------------------
func (h *Handler) Export(c *gin.Context) {
	exp, err := h.collection.Export(c.Request.Context(), *currentUser(c), h.now())
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer func() {
		if err := exp.Remove(); err != nil {
			logger.FromContext(c.Request.Context()).Warn().Err(err).Str("path", exp.Path).Msg("failed to remove export file")
		}
	}()

	c.FileAttachment(exp.Path, exp.FileName)
}

func (h *Handler) Show(c *gin.Context) {
	h.renderPiece(c, "show.html")
}

func (h *Handler) Edit(c *gin.Context) {
	h.renderPiece(c, "edit.html")
}

func (h *Handler) EditImages(c *gin.Context) {
	h.renderPiece(c, "edit_images.html")
}

func (h *Handler) renderPiece(c *gin.Context, page string) {
	p, err := h.collection.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	view.HTML(c, http.StatusOK, page, gin.H{"Piece": p})
}

// ------------------------------
// PUT /collection/show/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var form service.PieceForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		return
	}

	uploads, closeUploads, err := readUploads(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeUploads()

	id := c.Param("id")
	upd := service.PieceUpdate{
		Form:         form,
		Fields:       submittedKeys(c),
		Uploads:      uploads,
		MakeDefault:  c.PostFormArray("makeDefault"),
		DeleteImages: c.PostFormArray("deleteImages"),
	}
	if _, err := h.collection.Update(c.Request.Context(), currentUser(c).ID, id, upd); err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Successfully made changes to your piece!")
	c.Redirect(http.StatusFound, "/collection/show/"+id)
}

// ------------------------------
// DELETE /collection/show/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.collection.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	session.Flash(c, session.FlashSuccess, "Successfully deleted your piece!")
	c.Redirect(http.StatusFound, "/collection")
}
