package works

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"art-collector/internal/domain/media"

	"github.com/gin-gonic/gin"
)

const imagesField = "images"

// readUploads opens every file sent under "images". The returned func closes
// them and must be called once the request is done with the bodies.
func readUploads(c *gin.Context) ([]media.Upload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, nil, fmt.Errorf("read multipart form: %w", err)
	}

	headers := form.File[imagesField]
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	uploads := make([]media.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		files = append(files, f)
		uploads = append(uploads, media.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}

// submittedKeys lists the form fields present in the request body.
func submittedKeys(c *gin.Context) []string {
	if c.Request.PostForm == nil {
		_ = c.Request.ParseForm()
	}
	keys := make([]string, 0, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		keys = append(keys, k)
	}
	return keys
}
