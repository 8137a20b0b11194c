// Package chat defines the assistant conversation model: messages and the
// bounded log the console renders.
package chat

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors for Message.
var (
	ErrEmptyContent = errors.New("message content is required")
	ErrInvalidRole  = errors.New("invalid message role")
)

// Role identifies the author of a message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
)

// Message represents a single entry in the conversation log.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// NewMessage creates a Message with a fresh ID and the current timestamp.
// Returns an error if validation fails.
func NewMessage(role Role, content string) (Message, error) {
	m := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

// Validate checks that the message meets all constraints.
func (m *Message) Validate() error {
	switch m.Role {
	case RoleAssistant, RoleUser, RoleSystem:
	default:
		return ErrInvalidRole
	}
	if m.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
