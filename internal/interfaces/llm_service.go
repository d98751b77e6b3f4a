package interfaces

import (
	"context"
)

// Message represents a single message in a chat conversation
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string

	// Content contains the text content of the message
	Content string
}

// ChatCompleter generates an assistant reply for a conversation.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - systemInstruction: Persona and grounding text sent outside the history
//   - messages: Conversation history in chronological order, ending with the user turn
//
// Returns:
//   - string: Generated assistant response
//   - error: Error if the completion fails
type ChatCompleter interface {
	Complete(ctx context.Context, systemInstruction string, messages []Message) (string, error)
}
