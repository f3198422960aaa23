package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/raphaelgruber/contactbot-go/internal/chat"
	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// Theme holds the color scheme for the chat display.
type Theme struct {
	User   lipgloss.Color
	Bot    lipgloss.Color
	Card   lipgloss.Color
	Detail lipgloss.Color
	Hint   lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	User:   lipgloss.Color("#00D787"), // green
	Bot:    lipgloss.Color("#5FAFD7"), // light blue
	Card:   lipgloss.Color("#875FD7"), // purple
	Detail: lipgloss.Color("#D7D7D7"), // light gray
	Hint:   lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) userStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.User).Bold(true)
}

func (t Theme) botStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Bot).Bold(true)
}

func (t Theme) cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Card).
		Padding(0, 1)
}

func (t Theme) detailStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Detail)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// renderMessage renders one transcript entry, trailing newline included.
func (m chatModel) renderMessage(msg chat.Message) string {
	var b strings.Builder

	switch msg.Origin {
	case chat.OriginUser:
		b.WriteString(m.theme.userStyle().Render("You: "))
		b.WriteString(msg.Text)
		b.WriteString("\n")
	case chat.OriginBot:
		if msg.Text != "" {
			b.WriteString(m.theme.botStyle().Render("Bot: "))
			b.WriteString(msg.Text)
			b.WriteString("\n")
		}
		if msg.Contacts != nil {
			if len(msg.Contacts) == 0 {
				b.WriteString(m.theme.hintStyle().Render("No contacts found."))
				b.WriteString("\n")
			}
			for _, contact := range msg.Contacts {
				b.WriteString(m.renderContact(contact))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderContact renders a contact card.
func (m chatModel) renderContact(contact models.Contact) string {
	var b strings.Builder

	b.WriteString(m.theme.botStyle().Render(contact.Name))
	if contact.DateOfBirth != "" {
		b.WriteString(m.theme.hintStyle().Render(fmt.Sprintf("  born %s", contact.DateOfBirth)))
	}
	b.WriteString("\n")

	for _, phone := range contact.Phones {
		b.WriteString(m.theme.detailStyle().Render(fmt.Sprintf("📞 %s", phone.PhoneNumber)))
		b.WriteString("\n")
	}
	for _, email := range contact.Emails {
		b.WriteString(m.theme.detailStyle().Render(fmt.Sprintf("✉️  %s", email.EmailAddress)))
		b.WriteString("\n")
	}
	for _, note := range contact.Notes {
		line := fmt.Sprintf("📝 %s", note.Text)
		if len(note.Tags) > 0 {
			line += m.theme.hintStyle().Render(fmt.Sprintf(" [%s]", strings.Join(note.Tags, ", ")))
		}
		b.WriteString(m.theme.detailStyle().Render(line))
		b.WriteString("\n")
	}
	if len(contact.Tags) > 0 {
		b.WriteString(m.theme.hintStyle().Render(fmt.Sprintf("🏷  %s", strings.Join(contact.Tags, ", "))))
		b.WriteString("\n")
	}

	card := m.theme.cardStyle()
	if m.width > 4 {
		card = card.MaxWidth(m.width - 2)
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}
