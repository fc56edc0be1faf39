// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/okian/rolo/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns all contacts in append order.
	List(ctx context.Context) []Person

	// Get returns the contact with the given id.
	Get(ctx context.Context, id int) (Person, error)

	// Create validates uniqueness, assigns an id, and stores a new contact.
	Create(ctx context.Context, name, number string) (Person, error)

	// Info reports the record count and the current server time.
	Info(ctx context.Context) (int, time.Time)
}

// Person mirrors the record shape served by /api/persons.
type Person = model.Contact

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	personsHandler    *PersonsHandler
	personByIDHandler *PersonByIDHandler
	infoHandler       *InfoHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		personsHandler:    NewPersonsHandler(deps),
		personByIDHandler: NewPersonByIDHandler(deps),
		infoHandler:       NewInfoHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", handle(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/info", handle(s.infoHandler.HandleInfo, "info"))
	mux.HandleFunc("/stats", handle(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/persons", handle(s.personsHandler.HandlePersons, "persons"))
	mux.HandleFunc("/api/persons/", handle(s.personByIDHandler.HandleGetPerson, "person_by_id"))
}

// handle composes the standard middleware stack around a handler.
// Metrics outermost so it observes the status written by panic recovery.
func handle(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return MetricsMiddleware(RequestIDMiddleware(CORSMiddleware(RecoverMiddleware(h))), endpoint)
}

// internalErrorMessage is the only detail a client sees on an unexpected
// fault; stack traces never leave the process.
const internalErrorMessage = "An unexpected error occurred on the server."

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
