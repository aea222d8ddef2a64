package middleware

import (
	"errors"
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms issue PUT, PATCH and DELETE through a POST
// carrying _method in the query string or an urlencoded body. It wraps the
// whole router because gin resolves the route before any middleware runs.
//
// The body is parsed while the request is still a POST; net/http ignores
// DELETE bodies once the method has changed.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := r.URL.Query().Get("_method")
			if m == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				m = r.PostFormValue("_method")
			}
			switch m = strings.ToUpper(m); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
					http.Error(w, "malformed form", http.StatusBadRequest)
					return
				}
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
