package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
)

const systemPrompt = `You are the assistant behind a contact directory chat bot.
Users talk to you when their input is not one of the bot's structured commands.
Answer briefly and conversationally. If the user seems to be trying to manage
contacts, point them at the bot's commands (they can type "help" to list them).`

// generator is the slice of Model the service needs.
type generator interface {
	Generate(ctx context.Context, messages []llms.MessageContent) ([]string, error)
}

// Service keeps one message history per thread id and runs free-form turns
// against the model. Histories live in memory for the lifetime of the process,
// mirroring how sessions are scoped.
type Service struct {
	model  generator
	logger *slog.Logger

	mu      sync.Mutex
	threads map[string][]llms.MessageContent
}

// NewService creates a threaded chat service on top of the model.
func NewService(model generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		model:   model,
		logger:  logger,
		threads: make(map[string][]llms.MessageContent),
	}
}

// SendToThread appends the user's text to the thread's history, generates the
// model's replies over the full history and records them. The user message
// stays in the history even when generation fails, so a retry carries it.
func (s *Service) SendToThread(ctx context.Context, text, threadID string) ([]string, error) {
	s.mu.Lock()
	history, ok := s.threads[threadID]
	if !ok {
		history = []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt)}
	}
	history = append(history, llms.TextParts(llms.ChatMessageTypeHuman, text))
	s.threads[threadID] = history
	s.mu.Unlock()

	start := time.Now()
	replies, err := s.model.Generate(ctx, history)
	if err != nil {
		s.logger.Warn("assistant turn failed", "thread", threadID, "duration_ms", time.Since(start).Milliseconds(), "error", err)
		return nil, fmt.Errorf("send to thread: %w", err)
	}

	s.mu.Lock()
	for _, reply := range replies {
		s.threads[threadID] = append(s.threads[threadID], llms.TextParts(llms.ChatMessageTypeAI, reply))
	}
	s.mu.Unlock()

	s.logger.Debug("assistant turn complete", "thread", threadID, "replies", len(replies), "duration_ms", time.Since(start).Milliseconds())
	return replies, nil
}

// ThreadLen reports how many messages a thread holds, the system prompt
// included. Unknown threads report zero.
func (s *Service) ThreadLen(threadID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.threads[threadID])
}
