package cli

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
)

// scriptedChat returns a canned reply for every message.
type scriptedChat struct {
	reply string
	err   error
	sent  []string
}

func (c *scriptedChat) Send(ctx context.Context, programID *string, text string) (*domain.ChatMessage, error) {
	c.sent = append(c.sent, text)
	if c.err != nil {
		return nil, c.err
	}
	return &domain.ChatMessage{Role: domain.ChatAssistant, Content: c.reply}, nil
}

func (c *scriptedChat) History(ctx context.Context, programID string) ([]*domain.ChatMessage, error) {
	return nil, nil
}

func (c *scriptedChat) Recent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	return nil, nil
}

func typeText(m tea.Model, text string) tea.Model {
	next := m
	for _, r := range text {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return next
}

func TestChatModel_SendRoundTrip(t *testing.T) {
	chat := &scriptedChat{reply: "Milestone M2 is the bottleneck."}
	m := newChatModel(&App{Chat: chat}, nil)
	m.input.Focus()

	next := typeText(m, "what is blocking us")
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(*chatModel)

	require.NotNil(t, cmd)
	assert.True(t, model.waiting)
	assert.Contains(t, model.View(), "what is blocking us")

	// Deliver the reply the command produced.
	next, _ = model.Update(cmd())
	model = next.(*chatModel)

	assert.False(t, model.waiting)
	assert.Equal(t, []string{"what is blocking us"}, chat.sent)
	assert.Contains(t, model.View(), "Milestone M2 is the bottleneck.")
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	chat := &scriptedChat{reply: "hi"}
	m := newChatModel(&App{Chat: chat}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(*chatModel)

	assert.Nil(t, cmd)
	assert.False(t, model.waiting)
	assert.Empty(t, chat.sent)
}

func TestChatModel_ErrorShown(t *testing.T) {
	chat := &scriptedChat{err: fmt.Errorf("store unavailable")}
	m := newChatModel(&App{Chat: chat}, nil)

	next := typeText(m, "hello")
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	next, _ = next.Update(cmd())
	model := next.(*chatModel)

	assert.Contains(t, model.View(), "store unavailable")
}

func TestChatModel_QuitClearsView(t *testing.T) {
	m := newChatModel(&App{Chat: &scriptedChat{}}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := next.(*chatModel)

	assert.True(t, model.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}
