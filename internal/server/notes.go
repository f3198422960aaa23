package server

import (
	"net/http"
)

type noteRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.ListNotes(r.Context(), r.URL.Query().Get("tag"))
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	note, err := s.store.AddNote(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	note, err := s.store.UpdateNote(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleAddNoteTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Label == "" {
		s.writeError(w, http.StatusBadRequest, "label is required")
		return
	}

	if err := s.store.AddNoteTag(r.Context(), r.PathValue("id"), req.Label); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleRemoveNoteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveNoteTag(r.Context(), r.PathValue("id"), r.PathValue("label")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}
