package media

import (
	"io"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the largest accepted image upload, in bytes.
const MaxUploadSize = 5_000_000

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Image is one stored picture of a piece. Filename is the storage key used to
// release the object later.
type Image struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload is an image file received from a form, not yet stored.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}
