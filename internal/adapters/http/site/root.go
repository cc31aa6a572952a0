// Package site serves the embedded static assets used by the views.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("static asset serve failed")
)

// Register attaches the embedded static assets to mux under /static/.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", NewStaticHandler()))
}

// StaticHandler serves files from the embedded static directory.
type StaticHandler struct {
	files http.Handler
}

// NewStaticHandler creates a new static handler.
func NewStaticHandler() *StaticHandler {
	return &StaticHandler{files: http.FileServer(FS())}
}

// ServeHTTP serves GET and HEAD requests; directory listings are not served.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
