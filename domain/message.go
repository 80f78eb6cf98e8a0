// Package domain contains core concepts of the candidate analysis system.
// This file defines interview Message events and related rules.
// Messages are immutable and validated at the service boundary.
package domain

import (
	"github.com/google/uuid"
)

// Role identifies the author side of an interview message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents one immutable interview exchange.
// Timestamp is in milliseconds and monotonic within a session.
type Message struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Role      Role      `json:"role" validate:"required,oneof=user assistant system"`
	Content   string    `json:"content" validate:"required"`
	Timestamp int64     `json:"timestamp" validate:"gte=0"`
}

// UserMessages keeps only candidate-authored messages, preserving order.
func UserMessages(messages []Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}
