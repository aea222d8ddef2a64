package middleware

import (
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/microcosm-cc/bluemonday"
)

const (
	maxFormMemory  = 32 << 20
	maxStripRounds = 8
)

// SanitizeForm strips markup from every submitted form value. Password
// fields are left untouched.
func SanitizeForm() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		switch c.ContentType() {
		case binding.MIMEMultipartPOSTForm:
			if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			clean(policy, c.Request.MultipartForm.Value)
		case binding.MIMEPOSTForm:
			if err := c.Request.ParseForm(); err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
		default:
			c.Next()
			return
		}

		clean(policy, c.Request.PostForm)
		clean(policy, c.Request.Form)
		c.Next()
	}
}

func clean(policy *bluemonday.Policy, values url.Values) {
	for k, vs := range values {
		if strings.Contains(strings.ToLower(k), "password") {
			continue
		}
		for i, v := range vs {
			vs[i] = strip(policy, v)
		}
	}
}

// strip decodes entities before sanitizing so encoded markup cannot come
// back to life, and repeats until the value is stable.
func strip(policy *bluemonday.Policy, v string) string {
	for range maxStripRounds {
		next := html.UnescapeString(policy.Sanitize(html.UnescapeString(v)))
		if next == v {
			break
		}
		v = next
	}
	return v
}
