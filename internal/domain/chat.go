package domain

import "time"

// ChatMessage is one turn of the assistant conversation, scoped to a
// program when the user opened chat from a program view.
type ChatMessage struct {
	ID        string
	ProgramID *string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
