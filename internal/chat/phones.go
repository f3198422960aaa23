package chat

import (
	"context"
	"fmt"
	"strings"
)

const phoneUsage = "Invalid command format. Use: update phone for [name] from [old phone] to [new phone]"

// runUpdatePhone handles "update phone for <name...> from <old> to <new>".
// The target name is every token between "for" and "from", so it may contain
// spaces; this is the one grammar with a multi-token name span.
func (r *Router) runUpdatePhone(ctx context.Context, raw string, s *Session) []Message {
	toks := tokenize(raw)

	forIdx := indexOf(toks, "for")
	fromIdx := indexOfFrom(toks, "from", forIdx+1)
	toIdx := indexOfFrom(toks, "to", fromIdx+1)
	if forIdx == -1 || fromIdx == -1 || toIdx == -1 {
		return []Message{BotText(phoneUsage)}
	}

	name := strings.Join(toks[forIdx+1:fromIdx], " ")
	oldPhone := tokenAfter(toks, fromIdx)
	newPhone := tokenAfter(toks, toIdx)
	if strings.TrimSpace(name) == "" || oldPhone == "" || newPhone == "" {
		return []Message{BotText(phoneUsage)}
	}

	if !IsValidPhone(newPhone) {
		return []Message{BotText("Invalid phone number. Phone numbers must contain exactly 10 digits.")}
	}

	match, err := r.resolver.ByName(ctx, name)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error updating phone: %v", err))}
	}

	switch {
	case match.None():
		return notFoundMessage(name)
	case match.Many():
		// Same >1 ambiguity rule as every other command.
		return ambiguousMessages(name, match)
	}

	contact := match.First()
	phone := contact.FindPhone(oldPhone)
	if phone == nil {
		return []Message{BotText(fmt.Sprintf("Phone number %q not found for %s.", oldPhone, name))}
	}

	if _, err := r.directory.UpdatePhone(ctx, contact.ID, phone.ID, newPhone); err != nil {
		r.logger.Warn("update phone failed", "name", name, "error", err)
		return []Message{BotText(fmt.Sprintf("Error updating phone: %v", err))}
	}

	fresh, err := r.directory.GetContact(ctx, contact.ID)
	if err != nil {
		return []Message{BotText(fmt.Sprintf("Error updating phone: %v", err))}
	}

	return []Message{
		BotContacts(fresh),
		BotText(fmt.Sprintf("Successfully updated phone for %s.", name)),
	}
}
