// Package server provides the REST API for the contact directory.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/raphaelgruber/contactbot-go/internal/metrics"
	"github.com/raphaelgruber/contactbot-go/internal/models"
	"github.com/raphaelgruber/contactbot-go/internal/store"
)

// Store is the persistence surface the handlers need.
type Store interface {
	ListContacts(ctx context.Context, query string) ([]models.Contact, error)
	ListContactsByTag(ctx context.Context, tag string) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	CreateContact(ctx context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error)
	UpdateContact(ctx context.Context, id, name, dateOfBirth string) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	AddPhone(ctx context.Context, contactID, phoneNumber string) (models.Phone, error)
	UpdatePhone(ctx context.Context, contactID, phoneID, value string) (models.Phone, error)
	DeletePhone(ctx context.Context, contactID, phoneID string) error

	AddEmail(ctx context.Context, contactID, emailAddress string) (models.Email, error)
	UpdateEmail(ctx context.Context, contactID, emailID, value string) (models.Email, error)
	DeleteEmail(ctx context.Context, contactID, emailID string) error

	ListNotes(ctx context.Context, tag string) ([]models.Note, error)
	AddNote(ctx context.Context, contactID, text string) (models.Note, error)
	UpdateNote(ctx context.Context, noteID, text string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	AddNoteTag(ctx context.Context, noteID, label string) error
	RemoveNoteTag(ctx context.Context, noteID, label string) error

	AddTag(ctx context.Context, contactID, label string) error
	DeleteTag(ctx context.Context, contactID, label string) error

	CountRecords(ctx context.Context) (store.Stats, error)
}

// Assistant handles free-form chat turns.
type Assistant interface {
	SendToThread(ctx context.Context, text, threadID string) ([]string, error)
}

// Server holds the handler dependencies.
type Server struct {
	store     Store
	assistant Assistant
	collector *metrics.Collector
	logger    *slog.Logger
	version   string
}

// New creates a server. assistant may be nil when no LLM is configured; chat
// endpoints then report 503.
func New(st Store, assistant Assistant, collector *metrics.Collector, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	return &Server{
		store:     st,
		assistant: assistant,
		collector: collector,
		logger:    logger,
		version:   version,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("GET /contacts", s.handleListContacts)
	mux.HandleFunc("POST /contacts", s.handleCreateContact)
	mux.HandleFunc("GET /contacts/{id}", s.handleGetContact)
	mux.HandleFunc("PUT /contacts/{id}", s.handleUpdateContact)
	mux.HandleFunc("DELETE /contacts/{id}", s.handleDeleteContact)

	mux.HandleFunc("POST /contacts/{id}/phones", s.handleAddPhone)
	mux.HandleFunc("PUT /contacts/{id}/phones/{phoneID}", s.handleUpdatePhone)
	mux.HandleFunc("DELETE /contacts/{id}/phones/{phoneID}", s.handleDeletePhone)

	mux.HandleFunc("POST /contacts/{id}/emails", s.handleAddEmail)
	mux.HandleFunc("PUT /contacts/{id}/emails/{emailID}", s.handleUpdateEmail)
	mux.HandleFunc("DELETE /contacts/{id}/emails/{emailID}", s.handleDeleteEmail)

	mux.HandleFunc("POST /contacts/{id}/notes", s.handleAddNote)
	mux.HandleFunc("GET /notes", s.handleListNotes)
	mux.HandleFunc("PUT /notes/{id}", s.handleUpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", s.handleDeleteNote)
	mux.HandleFunc("POST /notes/{id}/tags", s.handleAddNoteTag)
	mux.HandleFunc("DELETE /notes/{id}/tags/{label}", s.handleRemoveNoteTag)

	mux.HandleFunc("POST /contacts/{id}/tags", s.handleAddTag)
	mux.HandleFunc("DELETE /contacts/{id}/tags/{label}", s.handleDeleteTag)

	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /chat/{threadID}", s.handleChatThread)

	return s.loggingMiddleware(mux)
}
