package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteChatRepo implements ChatRepo over a SQLite connection or transaction.
type SQLiteChatRepo struct {
	db db.DBTX
}

func NewSQLiteChatRepo(conn db.DBTX) *SQLiteChatRepo {
	return &SQLiteChatRepo{db: conn}
}

func (r *SQLiteChatRepo) Create(ctx context.Context, m *domain.ChatMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, program_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID,
		nullableString(m.ProgramID),
		string(m.Role),
		m.Content,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteChatRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, program_id, role, content, created_at
		FROM chat_messages WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()
	return collectChatMessages(rows)
}

func (r *SQLiteChatRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, program_id, role, content, created_at FROM chat_messages
		ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent chat messages: %w", err)
	}
	defer rows.Close()

	msgs, err := collectChatMessages(rows)
	if err != nil {
		return nil, err
	}
	// Reverse to chronological order for display.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func collectChatMessages(rows *sql.Rows) ([]*domain.ChatMessage, error) {
	var msgs []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var programStr sql.NullString
		var roleStr, createdStr string
		if err := rows.Scan(&m.ID, &programStr, &roleStr, &m.Content, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.ProgramID = stringPtr(programStr)
		m.Role = domain.ChatRole(roleStr)
		var err error
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat messages: %w", err)
	}
	return msgs, nil
}
