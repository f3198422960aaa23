// Package tui provides the interactive chat terminal UI.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/raphaelgruber/contactbot-go/internal/chat"
)

// repliesMsg carries the bot replies for one submitted command.
type repliesMsg struct {
	replies []chat.Message
}

// chatModel is the bubbletea model for the chat session.
type chatModel struct {
	ctrl  *chat.Controller
	input textinput.Model
	spin  spinner.Model
	theme Theme

	// log mirrors the session transcript for rendering. The model owns it so
	// View never races the controller goroutine.
	log      []chat.Message
	busy     bool
	width    int
	quitting bool
}

// newChatModel creates the chat UI around a controller.
func newChatModel(ctrl *chat.Controller) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command, or ask me anything..."
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return chatModel{
		ctrl:  ctrl,
		input: ti,
		spin:  sp,
		theme: defaultTheme,
		log:   []chat.Message{chat.BotText(chat.WelcomeText)},
		width: 80,
	}
}

// Init returns the initial command.
func (m chatModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles messages and returns the updated model.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.log = append(m.log, chat.UserText(text))
			m.busy = true
			return m, m.submit(text)
		}

	case repliesMsg:
		m.busy = false
		m.log = append(m.log, msg.replies...)
		if m.isFarewell() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript, the typing indicator and the input line.
func (m chatModel) View() tea.View {
	var b strings.Builder

	for _, msg := range m.log {
		b.WriteString(m.renderMessage(msg))
	}

	if m.busy {
		b.WriteString(m.theme.hintStyle().Render(m.spin.View() + " typing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render("Press Esc or Ctrl+C to quit"))
	b.WriteString("\n")

	return tea.NewView(b.String())
}

// submit runs the command through the controller off the UI goroutine.
func (m chatModel) submit(text string) tea.Cmd {
	return func() tea.Msg {
		replies := m.ctrl.Submit(context.Background(), text)
		return repliesMsg{replies: replies}
	}
}

// isFarewell reports whether the last user input ended the session.
func (m chatModel) isFarewell() bool {
	for i := len(m.log) - 1; i >= 0; i-- {
		if m.log[i].Origin == chat.OriginUser {
			switch strings.ToLower(strings.TrimSpace(m.log[i].Text)) {
			case "exit", "close", "bye":
				return true
			}
			return false
		}
	}
	return false
}

// Run starts the interactive chat UI and blocks until the user quits.
func Run(ctrl *chat.Controller) error {
	p := tea.NewProgram(newChatModel(ctrl))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}
