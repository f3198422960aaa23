// Package chat implements the command interpretation and dispatch engine:
// it classifies raw user input into a directory command, resolves named
// contacts, validates arguments, calls the directory service and assembles
// the resulting bot messages. Input that matches no command is forwarded to
// the conversational assistant.
package chat

import "github.com/raphaelgruber/contactbot-go/internal/models"

// Origin identifies who produced a chat message.
type Origin string

// Message origins.
const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// Message is a single entry in the chat log. A message is either prose
// (Text) or a rendered contact list (Contacts), never both.
type Message struct {
	Origin   Origin           `json:"origin"`
	Text     string           `json:"text,omitempty"`
	Contacts []models.Contact `json:"contacts,omitempty"`
}

// UserText builds a user prose message.
func UserText(text string) Message {
	return Message{Origin: OriginUser, Text: text}
}

// BotText builds a bot prose message.
func BotText(text string) Message {
	return Message{Origin: OriginBot, Text: text}
}

// BotContacts builds a bot message carrying a contact list. The payload is
// never nil so an empty directory still renders as a contacts message.
func BotContacts(contacts ...models.Contact) Message {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return Message{Origin: OriginBot, Contacts: contacts}
}
