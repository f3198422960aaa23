package chat

import (
	"context"
	"fmt"
)

// forwardToAssistant sends unmatched input to the conversational assistant
// with the session's persistent thread id and wraps each reply string as an
// independent bot message, in the returned order.
func (r *Router) forwardToAssistant(ctx context.Context, raw string, s *Session) []Message {
	replies, err := r.assistant.SendToThread(ctx, raw, s.ThreadID)
	if err != nil {
		r.logger.Warn("assistant call failed", "error", err)
		return []Message{BotText(fmt.Sprintf("Sorry, I couldn't reach the assistant: %v", err))}
	}

	if len(replies) == 0 {
		return []Message{BotText("The assistant had nothing to say. Try rephrasing, or type 'help' for the command list.")}
	}

	messages := make([]Message, 0, len(replies))
	for _, reply := range replies {
		messages = append(messages, BotText(reply))
	}
	return messages
}
