package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

// chatTurn is one rendered exchange line in the session transcript.
type chatTurn struct {
	role    domain.ChatRole
	content string
}

// chatReplyMsg carries the assistant reply back into the model.
type chatReplyMsg struct {
	reply *domain.ChatMessage
	err   error
}

// chatModel is the interactive session behind `compass chat`.
type chatModel struct {
	app       *App
	programID *string
	input     textinput.Model
	turns     []chatTurn
	waiting   bool
	err       error
	quitting  bool
}

func newChatModel(app *App, programID *string) *chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about the program..."
	ti.Focus()
	ti.CharLimit = 500

	return &chatModel{app: app, programID: programID, input: ti}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) send(text string) tea.Cmd {
	app, programID := m.app, m.programID
	return func() tea.Msg {
		reply, err := app.Chat.Send(context.Background(), programID, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.turns = append(m.turns, chatTurn{role: domain.ChatAssistant, content: msg.reply.Content})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.turns = append(m.turns, chatTurn{role: domain.ChatUser, content: text})
			m.input.SetValue("")
			m.waiting = true
			m.err = nil
			return m, m.send(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Chat") + "\n\n")

	for _, turn := range m.turns {
		label := formatter.StyleBlue.Render("you")
		if turn.role == domain.ChatAssistant {
			label = formatter.StyleGreen.Render("assistant")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n\n", label, turn.content))
	}

	if m.waiting {
		b.WriteString(formatter.Dim("thinking...") + "\n\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.input.View() + "\n")
	b.WriteString(formatter.Dim("enter send · esc quit") + "\n")
	return b.String()
}

// runChatSession blocks until the user quits the chat view.
func runChatSession(app *App, programID *string) error {
	p := tea.NewProgram(newChatModel(app, programID))
	_, err := p.Run()
	return err
}
