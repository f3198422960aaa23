package chat

import (
	"context"
	"fmt"
)

// Executors follow one shape: parse tokens from the raw input, validate
// presence and format, resolve the target contact if the command addresses an
// existing one, call the directory and map the outcome to messages. Format
// failures are terminal and local: no network call is made. Service failures
// are caught here and rendered as a single bot message; they never propagate
// to the router.

const (
	addUsage    = "Invalid command format. Use: add contact [name] [phone_number] [date_of_birth - optional]"
	deleteUsage = "Invalid command format. Use: delete contact [name]"
	updateUsage = "Invalid command format. Use: update contact [name] to [new_name] birthday [YYYY-MM-DD] (birthday is optional)"
)

func (r *Router) runGetContacts(ctx context.Context, raw string, s *Session) []Message {
	contacts, err := r.directory.ListContacts(ctx, "")
	if err != nil {
		r.logger.Warn("get-contacts failed", "error", err)
		return []Message{BotText(fmt.Sprintf("Error: %v", err))}
	}
	// Always a single contacts message, even when the directory is empty.
	return []Message{BotContacts(contacts...)}
}

func (r *Router) runGetContact(ctx context.Context, raw string, s *Session) []Message {
	toks := tokenize(raw)
	name := tokenAfter(toks, indexOf(toks, "contact"))
	if name == "" {
		return []Message{BotText("Please specify a contact name. Usage: get contact [name]")}
	}

	match, err := r.resolver.ByName(ctx, name)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error: %v", err))}
	}

	switch {
	case match.None():
		return notFoundMessage(name)
	case match.Many():
		return []Message{
			BotText(fmt.Sprintf("Found %d contacts with name %q:", len(match.Contacts), name)),
			BotContacts(match.Contacts...),
		}
	}

	// The list endpoint may return summarized contacts; fetch full detail.
	detail, err := r.directory.GetContact(ctx, match.First().ID)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error: %v", err))}
	}
	return []Message{BotContacts(detail)}
}

func (r *Router) runAddContact(ctx context.Context, raw string, s *Session) []Message {
	toks := tokenize(raw)
	ci := indexOf(toks, "contact")
	if ci == -1 || len(toks) < ci+3 {
		return []Message{BotText(addUsage)}
	}

	name := toks[ci+1]
	phone := toks[ci+2]
	dateOfBirth := ""
	if len(toks) > ci+3 {
		dateOfBirth = toks[ci+3]
	}

	if !IsValidPhone(phone) {
		return []Message{BotText("Invalid phone number. Phone numbers must contain exactly 10 digits.")}
	}
	if dateOfBirth != "" && !IsValidDate(dateOfBirth) {
		return []Message{BotText("Invalid date format. Use YYYY-MM-DD format for date of birth.")}
	}

	created, err := r.directory.CreateContact(ctx, name, phone, dateOfBirth)
	if err != nil {
		if detail, ok := conflictDetail(err); ok {
			// Surface the service's own explanation with the attempted name.
			return []Message{BotText(fmt.Sprintf("%s:'%s'", detail, name))}
		}
		r.logger.Warn("add contact failed", "name", name, "error", err)
		return []Message{BotText(fmt.Sprintf("Error adding contact: %v", err))}
	}

	return []Message{
		BotContacts(created),
		BotText(fmt.Sprintf("Successfully added contact '%s'.", name)),
	}
}

func (r *Router) runDeleteContact(ctx context.Context, raw string, s *Session) []Message {
	toks := tokenize(raw)
	ci := indexOf(toks, "contact")
	// The name must be a single trailing token.
	if ci == -1 || len(toks) != ci+2 {
		return []Message{BotText(deleteUsage)}
	}
	name := toks[ci+1]

	match, err := r.resolver.ByName(ctx, name)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error deleting contact: %v", err))}
	}

	switch {
	case match.None():
		return notFoundMessage(name)
	case match.Many():
		return ambiguousMessages(name, match)
	}

	if err := r.directory.DeleteContact(ctx, match.First().ID); err != nil {
		r.logger.Warn("delete contact failed", "name", name, "error", err)
		return []Message{BotText(fmt.Sprintf("Error deleting contact: %v", err))}
	}

	// No contact payload: the entity no longer exists.
	return []Message{BotText(fmt.Sprintf("Successfully deleted contact %q.", name))}
}

func (r *Router) runUpdateContact(ctx context.Context, raw string, s *Session) []Message {
	toks := tokenize(raw)
	ci := indexOf(toks, "contact")
	if ci == -1 || len(toks) < ci+4 {
		return []Message{BotText(updateUsage)}
	}

	name := toks[ci+1]
	toIdx := indexOfFrom(toks, "to", ci+1)
	newName := tokenAfter(toks, toIdx)
	if toIdx == -1 || newName == "" {
		return []Message{BotText(updateUsage)}
	}

	// The birthday clause is optional and located by keyword, not position.
	newBirthday := ""
	if bIdx := indexOfFrom(toks, "birthday", toIdx); bIdx != -1 {
		newBirthday = tokenAfter(toks, bIdx)
	}
	if newBirthday != "" && !IsValidDate(newBirthday) {
		return []Message{BotText("Invalid date format. Use YYYY-MM-DD format for birthday.")}
	}

	match, err := r.resolver.ByName(ctx, name)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error updating contact: %v", err))}
	}

	switch {
	case match.None():
		return notFoundMessage(name)
	case match.Many():
		return ambiguousMessages(name, match)
	}

	contact := match.First()

	// Birthday omitted: keep the existing date of birth, never clear it.
	if newBirthday == "" {
		newBirthday = contact.DateOfBirth
	}

	if _, err := r.directory.UpdateContact(ctx, contact.ID, newName, newBirthday); err != nil {
		r.logger.Warn("update contact failed", "name", name, "error", err)
		return []Message{BotText(fmt.Sprintf("Error updating contact: %v", err))}
	}

	// Re-fetch so the returned card reflects server-computed state.
	updated, err := r.directory.GetContact(ctx, contact.ID)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error updating contact: %v", err))}
	}

	return []Message{
		BotContacts(updated),
		BotText(fmt.Sprintf("Successfully updated contact %q.", name)),
	}
}
