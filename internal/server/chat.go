package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/contactbot-go/internal/metrics"
)

type chatRequest struct {
	Text string `json:"text"`
}

// handleChat runs a one-shot turn on a fresh thread.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.runChatTurn(w, r, uuid.NewString())
}

// handleChatThread runs a turn on an existing thread, keeping its history.
func (s *Server) handleChatThread(w http.ResponseWriter, r *http.Request) {
	s.runChatTurn(w, r, r.PathValue("threadID"))
}

func (s *Server) runChatTurn(w http.ResponseWriter, r *http.Request, threadID string) {
	if s.assistant == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	start := time.Now()
	replies, err := s.assistant.SendToThread(r.Context(), req.Text, threadID)
	s.collector.RecordTiming(metrics.OpLLMGenerate, time.Since(start))
	if err != nil {
		s.logger.Error("chat turn failed", "thread", threadID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if replies == nil {
		replies = []string{}
	}
	s.writeJSON(w, http.StatusOK, replies)
}
