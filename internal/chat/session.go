// Package chat implements the conversation orchestrator: it routes
// each user message to the checklist pipeline or a plain reply, and
// keeps the session usable no matter what fails underneath.
package chat

import (
	"context"
	"fmt"
	"os"

	"github.com/boltnotes/bolt-notes/internal/completion"
	"github.com/boltnotes/bolt-notes/internal/derive"
	"github.com/boltnotes/bolt-notes/internal/model"
	"github.com/boltnotes/bolt-notes/internal/notes"
)

const checklistSystem = `You are a helpful assistant that creates organized checklists and step-by-step guides. Always respond with clear, actionable items that can be used as tasks. Format your response as a simple list with each item on a new line.`

const assistantSystem = `You are a helpful assistant. Answer concisely and helpfully.`

const checklistPrompt = `Create a detailed checklist for: %s.

Instructions:
1. First line should be a clear title (without "Title:" prefix)
2. Then list each step as a separate task
3. Each task should be actionable and specific
4. Use simple language
5. Maximum 10 tasks

Format:
Title Here
- Task 1
- Task 2
- Task 3`

const apology = "Sorry, I encountered an error. Please try again."

// Reply is the outcome of one conversation turn. Note is non-nil only
// when a checklist was created and persisted.
type Reply struct {
	Content string
	Note    *model.Note
}

// Session holds one conversation. The transcript lives in memory only
// and is lost when the session ends. A Session is not safe for
// concurrent use; send one message at a time.
type Session struct {
	client     completion.Client
	repo       *notes.Repository
	transcript []model.ChatMessage
}

// NewSession creates a session over a completion client and a repository.
func NewSession(client completion.Client, repo *notes.Repository) *Session {
	return &Session{client: client, repo: repo}
}

// Transcript returns the messages exchanged so far, oldest first.
func (s *Session) Transcript() []model.ChatMessage {
	return s.transcript
}

// Send handles one user message. It never returns an error: any
// completion or persistence failure becomes an apology reply and the
// session stays usable for the next message.
func (s *Session) Send(ctx context.Context, text string) Reply {
	s.transcript = append(s.transcript, model.NewChatMessage(model.RoleUser, text))

	var reply Reply
	if derive.HasChecklistIntent(text) {
		reply = s.checklistTurn(ctx, text)
	} else {
		reply = s.plainTurn(ctx, text)
	}

	s.transcript = append(s.transcript, model.NewChatMessage(model.RoleAssistant, reply.Content))
	return reply
}

func (s *Session) checklistTurn(ctx context.Context, text string) Reply {
	raw, err := s.client.Complete(ctx, fmt.Sprintf(checklistPrompt, text), checklistSystem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat: completion failed: %v\n", err)
		return Reply{Content: apology}
	}

	checklist := derive.Derive(text, raw)
	note := model.NewNote(checklist.Title, derive.Tasks(checklist))

	if err := s.repo.Add(ctx, note); err != nil {
		fmt.Fprintf(os.Stderr, "chat: persist note: %v\n", err)
		return Reply{Content: apology}
	}

	content := fmt.Sprintf(
		"I've created a checklist titled %q with %d tasks and saved it to your notes. Check items off as you complete them!",
		note.Title, len(note.Tasks))
	return Reply{Content: content, Note: &note}
}

func (s *Session) plainTurn(ctx context.Context, text string) Reply {
	raw, err := s.client.Complete(ctx, text, assistantSystem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat: completion failed: %v\n", err)
		return Reply{Content: apology}
	}
	return Reply{Content: raw}
}
