package server

import (
	"net/http"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountRecords(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"records": counts,
		"metrics": s.collector.Snapshot(),
	})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	var err error
	var contacts any

	if tag := r.URL.Query().Get("tag"); tag != "" {
		contacts, err = s.store.ListContactsByTag(r.Context(), tag)
	} else {
		contacts, err = s.store.ListContacts(r.Context(), r.URL.Query().Get("query"))
	}
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := s.store.GetContact(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, contact)
}

type createContactRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.PhoneNumber == "" {
		s.writeError(w, http.StatusBadRequest, "name and phone_number are required")
		return
	}

	dob := ""
	if req.DateOfBirth != nil {
		dob = *req.DateOfBirth
	}

	contact, err := s.store.CreateContact(r.Context(), req.Name, req.PhoneNumber, dob)
	if err != nil {
		s.writeStoreError(w, err, "Contact already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, contact)
}

type updateContactRequest struct {
	Name        string  `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req updateContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	dob := ""
	if req.DateOfBirth != nil {
		dob = *req.DateOfBirth
	}

	contact, err := s.store.UpdateContact(r.Context(), r.PathValue("id"), req.Name, dob)
	if err != nil {
		s.writeStoreError(w, err, "Contact already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteContact(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type phoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (s *Server) handleAddPhone(w http.ResponseWriter, r *http.Request) {
	var req phoneRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.PhoneNumber == "" {
		s.writeError(w, http.StatusBadRequest, "phone_number is required")
		return
	}

	phone, err := s.store.AddPhone(r.Context(), r.PathValue("id"), req.PhoneNumber)
	if err != nil {
		s.writeStoreError(w, err, "Phone number already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, phone)
}

func (s *Server) handleUpdatePhone(w http.ResponseWriter, r *http.Request) {
	var req phoneRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.PhoneNumber == "" {
		s.writeError(w, http.StatusBadRequest, "phone_number is required")
		return
	}

	phone, err := s.store.UpdatePhone(r.Context(), r.PathValue("id"), r.PathValue("phoneID"), req.PhoneNumber)
	if err != nil {
		s.writeStoreError(w, err, "Phone number already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, phone)
}

func (s *Server) handleDeletePhone(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePhone(r.Context(), r.PathValue("id"), r.PathValue("phoneID")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type emailRequest struct {
	EmailAddress string `json:"email_address"`
}

func (s *Server) handleAddEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.EmailAddress == "" {
		s.writeError(w, http.StatusBadRequest, "email_address is required")
		return
	}

	email, err := s.store.AddEmail(r.Context(), r.PathValue("id"), req.EmailAddress)
	if err != nil {
		s.writeStoreError(w, err, "Email address already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, email)
}

func (s *Server) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.EmailAddress == "" {
		s.writeError(w, http.StatusBadRequest, "email_address is required")
		return
	}

	email, err := s.store.UpdateEmail(r.Context(), r.PathValue("id"), r.PathValue("emailID"), req.EmailAddress)
	if err != nil {
		s.writeStoreError(w, err, "Email address already exists")
		return
	}
	s.writeJSON(w, http.StatusOK, email)
}

func (s *Server) handleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteEmail(r.Context(), r.PathValue("id"), r.PathValue("emailID")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type tagRequest struct {
	Label string `json:"label"`
}

func (s *Server) handleAddTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Label == "" {
		s.writeError(w, http.StatusBadRequest, "label is required")
		return
	}

	if err := s.store.AddTag(r.Context(), r.PathValue("id"), req.Label); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTag(r.Context(), r.PathValue("id"), r.PathValue("label")); err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}
