// Package site handles the embedded phonebook front end.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("front end serve failed")
)

// Register attaches the embedded front-end routes to mux. The file server
// owns the root path and answers unknown assets with its default 404; it
// never touches shared state.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}
