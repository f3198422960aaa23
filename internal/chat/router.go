package chat

import (
	"context"
	"log/slog"
	"strings"
)

// Router classifies raw input against a fixed ordered table of command
// shapes and dispatches to the matching executor. The first match wins;
// anything unmatched is forwarded to the assistant. Matching is syntactic
// only; argument validation happens inside each executor.
type Router struct {
	directory Directory
	assistant Assistant
	resolver  *Resolver
	logger    *slog.Logger
	routes    []route
}

type route struct {
	name  string
	match func(normalized string) bool
	run   func(ctx context.Context, raw string, s *Session) []Message
}

// NewRouter creates a router over the given directory and assistant.
func NewRouter(directory Directory, assistant Assistant, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Router{
		directory: directory,
		assistant: assistant,
		resolver:  NewResolver(directory),
		logger:    logger,
	}

	// Order matters: exact triggers come before the prefixes they collide
	// with ("get contacts" before "get contact").
	r.routes = []route{
		{name: "help", match: exact("help"), run: r.runHelp},
		{name: "greeting", match: exact("hi", "hello"), run: r.runGreeting},
		{name: "farewell", match: exact("exit", "close", "bye"), run: r.runFarewell},
		{name: "get-contacts", match: exact("get-contacts", "get contacts"), run: r.runGetContacts},
		{name: "get contact", match: prefix("get contact"), run: r.runGetContact},
		{name: "add contact", match: prefix("add contact"), run: r.runAddContact},
		{name: "delete contact", match: prefix("delete contact"), run: r.runDeleteContact},
		{name: "update phone for", match: prefix("update phone for"), run: r.runUpdatePhone},
		{name: "update contact", match: prefix("update contact"), run: r.runUpdateContact},
	}

	return r
}

// Route dispatches one line of user input and returns the resulting bot
// messages. It never returns an empty slice: failures have already been
// converted to messages by the executors.
func (r *Router) Route(ctx context.Context, raw string, session *Session) []Message {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	for _, rt := range r.routes {
		if rt.match(normalized) {
			r.logger.Debug("command matched", "command", rt.name)
			return rt.run(ctx, raw, session)
		}
	}

	r.logger.Debug("no command matched, forwarding to assistant")
	return r.forwardToAssistant(ctx, raw, session)
}

func exact(triggers ...string) func(string) bool {
	return func(normalized string) bool {
		for _, t := range triggers {
			if normalized == t {
				return true
			}
		}
		return false
	}
}

func prefix(p string) func(string) bool {
	return func(normalized string) bool {
		return strings.HasPrefix(normalized, p)
	}
}
