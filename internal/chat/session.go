package chat

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one user's ongoing chat: its message log, busy flag and the
// opaque assistant thread id. A session is owned by a single caller (one per
// connection/user); there is no process-wide session state.
type Session struct {
	ThreadID string
	Messages []Message
	Busy     bool
}

// NewSession creates a session with a fresh thread id and the seeded
// welcome message.
func NewSession() *Session {
	return &Session{
		ThreadID: uuid.NewString(),
		Messages: []Message{BotText(WelcomeText)},
	}
}

// Controller sequences commands through a session: it appends the user
// message, drives the synthetic typing delay, routes the command and appends
// the results. At most one command is processed at a time.
type Controller struct {
	router       *Router
	session      *Session
	typingDelay  time.Duration
	typingJitter time.Duration
	logger       *slog.Logger

	mu sync.Mutex
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithTypingDelay sets the synthetic typing delay: base plus a random jitter
// in [0, jitter). Zero values disable the delay (useful in tests).
func WithTypingDelay(base, jitter time.Duration) ControllerOption {
	return func(c *Controller) {
		c.typingDelay = base
		c.typingJitter = jitter
	}
}

// NewController creates a controller owning a fresh session.
func NewController(router *Router, logger *slog.Logger, opts ...ControllerOption) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		router:       router,
		session:      NewSession(),
		typingDelay:  1500 * time.Millisecond,
		typingJitter: time.Second,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the controller's session.
func (c *Controller) Session() *Session {
	return c.session
}

// Submit processes one line of input and returns the bot replies. The user
// message is appended to the log synchronously, before any network activity.
// Empty input and input submitted while a command is in flight are ignored.
func (c *Controller) Submit(ctx context.Context, input string) []Message {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	c.mu.Lock()
	if c.session.Busy {
		c.mu.Unlock()
		c.logger.Debug("input ignored, command in flight")
		return nil
	}
	c.session.Busy = true
	c.session.Messages = append(c.session.Messages, UserText(input))
	c.mu.Unlock()

	c.simulateTyping(ctx)

	// Route never fails: executor errors arrive already rendered as messages.
	replies := c.router.Route(ctx, input, c.session)

	c.mu.Lock()
	c.session.Messages = append(c.session.Messages, replies...)
	c.session.Busy = false
	c.mu.Unlock()

	return replies
}

func (c *Controller) simulateTyping(ctx context.Context) {
	delay := c.typingDelay
	if c.typingJitter > 0 {
		delay += time.Duration(rand.Int64N(int64(c.typingJitter)))
	}
	if delay <= 0 {
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
