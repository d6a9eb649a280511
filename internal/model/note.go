// Package model defines the core note and chat data types.
package model

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Task is a single checkable line item belonging to exactly one Note.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Note is a titled container of ordered tasks. Task order is display
// order. UpdatedAt is refreshed on every mutation to the note or any
// of its tasks.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tasks     []Task    `json:"tasks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single turn in a conversation session. Transient:
// held only for the life of the session, never persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

var entropy = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewID mints a fresh ULID.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewTask creates an unchecked task with a fresh id.
func NewTask(text string) Task {
	return Task{ID: NewID(), Text: text, Completed: false}
}

// NewNote creates a note with a fresh id and CreatedAt == UpdatedAt.
func NewNote(title string, tasks []Task) Note {
	now := time.Now().UTC()
	return Note{
		ID:        NewID(),
		Title:     title,
		Tasks:     tasks,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewChatMessage creates a timestamped message.
func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// Touch refreshes the note's UpdatedAt stamp.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now().UTC()
}
