package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// Match is the three-way outcome of resolving a contact name.
type Match struct {
	Contacts []models.Contact
}

// None reports zero matches.
func (m Match) None() bool { return len(m.Contacts) == 0 }

// One reports exactly one match.
func (m Match) One() bool { return len(m.Contacts) == 1 }

// Many reports more than one match. Ambiguous targets are never guessed;
// every executor blocks on Many and asks the user to disambiguate.
func (m Match) Many() bool { return len(m.Contacts) > 1 }

// First returns the first matched contact. Only meaningful when One().
func (m Match) First() models.Contact { return m.Contacts[0] }

// Resolver maps a name to zero, one or many directory contacts using
// case-insensitive exact equality over the full contact set.
type Resolver struct {
	directory Directory
}

// NewResolver creates a resolver backed by the given directory.
func NewResolver(directory Directory) *Resolver {
	return &Resolver{directory: directory}
}

// ByName fetches all contacts and filters by name.
func (r *Resolver) ByName(ctx context.Context, name string) (Match, error) {
	contacts, err := r.directory.ListContacts(ctx, "")
	if err != nil {
		return Match{}, fmt.Errorf("list contacts: %w", err)
	}

	var matched []models.Contact
	for _, c := range contacts {
		if strings.EqualFold(c.Name, name) {
			matched = append(matched, c)
		}
	}
	return Match{Contacts: matched}, nil
}

// notFoundMessage is the single bot message reported for a zero-match name.
func notFoundMessage(name string) []Message {
	return []Message{BotText(fmt.Sprintf("Contact %q not found.", name))}
}

// ambiguousMessages lists all candidates and asks the user to be more
// specific. No mutation happens after an ambiguous match.
func ambiguousMessages(name string, m Match) []Message {
	return []Message{
		BotText(fmt.Sprintf("Found %d contacts with name %q:", len(m.Contacts), name)),
		BotContacts(m.Contacts...),
		BotText("Please be more specific with the contact name."),
	}
}
