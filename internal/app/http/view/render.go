package view

import (
	"html/template"
	"io/fs"
	"strconv"
	"time"

	"art-collector/internal/app/http/session"
	"art-collector/internal/domain/media"
	"art-collector/internal/domain/works"

	"github.com/gin-gonic/gin"
)

var Funcs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"int": func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	},
	"num": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	},
	"cover": func(images media.Images) string {
		img, ok := images.Cover()
		if !ok {
			return ""
		}
		return img.URL
	},
	"party": func(list []works.Party) works.Party {
		if len(list) == 0 {
			return works.Party{}
		}
		return list[0]
	},
}

// Templates parses every page template found in fsys under dir.
func Templates(fsys fs.FS, pattern string) (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(fsys, pattern)
}

// HTML renders a page with the request's flash messages and current user
// merged into data.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	success, errs := session.Flashes(c)
	data["Success"] = success
	data["Errors"] = errs
	if u, ok := session.CurrentUser(c); ok {
		data["CurrentUser"] = u
	}
	c.HTML(status, name, data)
}
