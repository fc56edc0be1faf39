// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// InfoDependencies defines the interface for the info page.
type InfoDependencies interface {
	Info(ctx context.Context) (int, time.Time)
}

// InfoHandler handles info page requests.
type InfoHandler struct {
	deps InfoDependencies
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(deps InfoDependencies) *InfoHandler {
	return &InfoHandler{deps: deps}
}

// HandleInfo handles GET /info requests. The timestamp is evaluated per
// request, never cached.
func (h *InfoHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	count, now := h.deps.Info(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<p>Phonebook has info for %d people</p><p>%s</p>", count, now.Format(time.RFC1123))
}
