package chat

import (
	"context"

	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// Directory is the subset of the directory service the chat engine consumes.
// *client.Client satisfies it.
type Directory interface {
	// ListContacts returns all contacts, optionally filtered by a name query.
	// An empty query returns the full set.
	ListContacts(ctx context.Context, query string) ([]models.Contact, error)
	// GetContact fetches the full detail of a single contact.
	GetContact(ctx context.Context, id string) (models.Contact, error)
	// CreateContact creates a contact. dateOfBirth may be empty.
	CreateContact(ctx context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error)
	// UpdateContact renames a contact and sets its date of birth.
	UpdateContact(ctx context.Context, id, name, dateOfBirth string) (models.Contact, error)
	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, id string) error
	// UpdatePhone changes the value of an existing phone.
	UpdatePhone(ctx context.Context, contactID, phoneID, value string) (models.Phone, error)
}

// Assistant is the conversational fallback for input that matches no command.
// The thread id is opaque; it only gives the remote service cross-turn memory.
type Assistant interface {
	SendToThread(ctx context.Context, text, threadID string) ([]string, error)
}
