// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	repository "github.com/okian/rolo/internal/adapters/repository"
	"github.com/okian/rolo/internal/domain/model"
	"github.com/okian/rolo/pkg/metrics"
)

// PersonDependencies defines the interface for collection-level operations.
type PersonDependencies interface {
	List(ctx context.Context) []Person
	Create(ctx context.Context, name, number string) (Person, error)
}

// PersonsHandler handles collection-level person requests.
type PersonsHandler struct {
	deps PersonDependencies
}

// NewPersonsHandler creates a new persons handler.
func NewPersonsHandler(deps PersonDependencies) *PersonsHandler {
	return &PersonsHandler{deps: deps}
}

// HandlePersons handles GET and POST /api/persons requests.
func (h *PersonsHandler) HandlePersons(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PersonsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.List(r.Context()))
}

func (h *PersonsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.NewContact
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordValidationError()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.deps.Create(r.Context(), req.Name, req.Number)
	if err != nil {
		if errors.Is(err, repository.ErrNameExists) {
			metrics.RecordCreateConflict()
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// PersonByIDDependencies defines the interface for single-record lookups.
type PersonByIDDependencies interface {
	Get(ctx context.Context, id int) (Person, error)
}

// PersonByIDHandler handles person-by-id requests.
type PersonByIDHandler struct {
	deps PersonByIDDependencies
}

// NewPersonByIDHandler creates a new person-by-id handler.
func NewPersonByIDHandler(deps PersonByIDDependencies) *PersonByIDHandler {
	return &PersonByIDHandler{deps: deps}
}

// HandleGetPerson handles GET /api/persons/{id} requests.
// A non-numeric id segment matches no stored record and falls through to
// 404 with an empty body, same as a numeric miss.
func (h *PersonByIDHandler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/persons/")
	if path == "" || strings.Contains(path, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	id, err := strconv.Atoi(path)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	p, err := h.deps.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
