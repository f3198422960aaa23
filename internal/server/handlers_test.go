package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raphaelgruber/contactbot-go/internal/models"
	"github.com/raphaelgruber/contactbot-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	contacts map[string]models.Contact
	notes    map[string]models.Note
	nextID   int

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		contacts: make(map[string]models.Contact),
		notes:    make(map[string]models.Note),
	}
}

func (f *fakeStore) id() string {
	f.nextID++
	return fmt.Sprintf("r%d", f.nextID)
}

func (f *fakeStore) ListContacts(_ context.Context, query string) ([]models.Contact, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Contact{}
	for _, c := range f.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) ListContactsByTag(_ context.Context, tag string) ([]models.Contact, error) {
	out := []models.Contact{}
	for _, c := range f.contacts {
		for _, t := range c.Tags {
			if t == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) GetContact(_ context.Context, id string) (models.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) CreateContact(_ context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error) {
	for _, c := range f.contacts {
		if c.Name == name {
			return models.Contact{}, store.ErrAlreadyExists
		}
	}
	c := models.Contact{
		ID:          f.id(),
		Name:        name,
		DateOfBirth: dateOfBirth,
		Phones:      []models.Phone{{ID: f.id(), PhoneNumber: phoneNumber}},
		Emails:      []models.Email{},
		Notes:       []models.Note{},
		Tags:        []string{},
	}
	f.contacts[c.ID] = c
	return c, nil
}

func (f *fakeStore) UpdateContact(_ context.Context, id, name, dateOfBirth string) (models.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, store.ErrNotFound
	}
	c.Name = name
	c.DateOfBirth = dateOfBirth
	f.contacts[id] = c
	return c, nil
}

func (f *fakeStore) DeleteContact(_ context.Context, id string) error {
	if _, ok := f.contacts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeStore) AddPhone(_ context.Context, contactID, phoneNumber string) (models.Phone, error) {
	c, ok := f.contacts[contactID]
	if !ok {
		return models.Phone{}, store.ErrNotFound
	}
	for _, existing := range f.contacts {
		for _, p := range existing.Phones {
			if p.PhoneNumber == phoneNumber {
				return models.Phone{}, store.ErrAlreadyExists
			}
		}
	}
	phone := models.Phone{ID: f.id(), PhoneNumber: phoneNumber}
	c.Phones = append(c.Phones, phone)
	f.contacts[contactID] = c
	return phone, nil
}

func (f *fakeStore) UpdatePhone(_ context.Context, contactID, phoneID, value string) (models.Phone, error) {
	c, ok := f.contacts[contactID]
	if !ok {
		return models.Phone{}, store.ErrNotFound
	}
	for i, p := range c.Phones {
		if p.ID == phoneID {
			c.Phones[i].PhoneNumber = value
			f.contacts[contactID] = c
			return c.Phones[i], nil
		}
	}
	return models.Phone{}, store.ErrNotFound
}

func (f *fakeStore) DeletePhone(_ context.Context, contactID, phoneID string) error {
	c, ok := f.contacts[contactID]
	if !ok {
		return store.ErrNotFound
	}
	for i, p := range c.Phones {
		if p.ID == phoneID {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			f.contacts[contactID] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) AddEmail(_ context.Context, contactID, emailAddress string) (models.Email, error) {
	c, ok := f.contacts[contactID]
	if !ok {
		return models.Email{}, store.ErrNotFound
	}
	email := models.Email{ID: f.id(), EmailAddress: emailAddress}
	c.Emails = append(c.Emails, email)
	f.contacts[contactID] = c
	return email, nil
}

func (f *fakeStore) UpdateEmail(_ context.Context, contactID, emailID, value string) (models.Email, error) {
	c, ok := f.contacts[contactID]
	if !ok {
		return models.Email{}, store.ErrNotFound
	}
	for i, e := range c.Emails {
		if e.ID == emailID {
			c.Emails[i].EmailAddress = value
			f.contacts[contactID] = c
			return c.Emails[i], nil
		}
	}
	return models.Email{}, store.ErrNotFound
}

func (f *fakeStore) DeleteEmail(_ context.Context, contactID, emailID string) error {
	c, ok := f.contacts[contactID]
	if !ok {
		return store.ErrNotFound
	}
	for i, e := range c.Emails {
		if e.ID == emailID {
			c.Emails = append(c.Emails[:i], c.Emails[i+1:]...)
			f.contacts[contactID] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) ListNotes(_ context.Context, tag string) ([]models.Note, error) {
	out := []models.Note{}
	for _, n := range f.notes {
		if tag == "" {
			out = append(out, n)
			continue
		}
		for _, t := range n.Tags {
			if t == tag {
				out = append(out, n)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) AddNote(_ context.Context, contactID, text string) (models.Note, error) {
	if _, ok := f.contacts[contactID]; !ok {
		return models.Note{}, store.ErrNotFound
	}
	note := models.Note{ID: f.id(), Text: text, Tags: []string{}}
	f.notes[note.ID] = note
	return note, nil
}

func (f *fakeStore) UpdateNote(_ context.Context, noteID, text string) (models.Note, error) {
	n, ok := f.notes[noteID]
	if !ok {
		return models.Note{}, store.ErrNotFound
	}
	n.Text = text
	f.notes[noteID] = n
	return n, nil
}

func (f *fakeStore) DeleteNote(_ context.Context, noteID string) error {
	if _, ok := f.notes[noteID]; !ok {
		return store.ErrNotFound
	}
	delete(f.notes, noteID)
	return nil
}

func (f *fakeStore) AddNoteTag(_ context.Context, noteID, label string) error {
	n, ok := f.notes[noteID]
	if !ok {
		return store.ErrNotFound
	}
	n.Tags = append(n.Tags, label)
	f.notes[noteID] = n
	return nil
}

func (f *fakeStore) RemoveNoteTag(_ context.Context, noteID, label string) error {
	n, ok := f.notes[noteID]
	if !ok {
		return store.ErrNotFound
	}
	for i, t := range n.Tags {
		if t == label {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			f.notes[noteID] = n
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) AddTag(_ context.Context, contactID, label string) error {
	c, ok := f.contacts[contactID]
	if !ok {
		return store.ErrNotFound
	}
	c.Tags = append(c.Tags, label)
	f.contacts[contactID] = c
	return nil
}

func (f *fakeStore) DeleteTag(_ context.Context, contactID, label string) error {
	c, ok := f.contacts[contactID]
	if !ok {
		return store.ErrNotFound
	}
	for i, t := range c.Tags {
		if t == label {
			c.Tags = append(c.Tags[:i], c.Tags[i+1:]...)
			f.contacts[contactID] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) CountRecords(_ context.Context) (store.Stats, error) {
	return store.Stats{Contacts: len(f.contacts), Notes: len(f.notes)}, nil
}

// fakeChat is a scripted Assistant.
type fakeChat struct {
	replies    []string
	err        error
	lastThread string
}

func (f *fakeChat) SendToThread(_ context.Context, text, threadID string) ([]string, error) {
	f.lastThread = threadID
	return f.replies, f.err
}

func newTestServer(st Store, chat Assistant) *httptest.Server {
	return httptest.NewServer(New(st, chat, nil, nil, "test").Handler())
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestContactEndpoints(t *testing.T) {
	st := newFakeStore()
	srv := newTestServer(st, nil)
	defer srv.Close()

	// Create
	resp := doJSON(t, http.MethodPost, srv.URL+"/contacts", map[string]any{
		"name":          "John",
		"phone_number":  "1234567890",
		"date_of_birth": "1990-01-01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[models.Contact](t, resp)
	assert.Equal(t, "John", created.Name)
	assert.Equal(t, "1990-01-01", created.DateOfBirth)
	require.Len(t, created.Phones, 1)

	// Duplicate name is a 400 with the exact message the chat bot surfaces
	resp = doJSON(t, http.MethodPost, srv.URL+"/contacts", map[string]any{
		"name":         "John",
		"phone_number": "1112223333",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[errorDetail](t, resp)
	assert.Equal(t, "Contact already exists", errBody.Detail.Message)

	// Get
	resp = doJSON(t, http.MethodGet, srv.URL+"/contacts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[models.Contact](t, resp)
	assert.Equal(t, created.ID, got.ID)

	// Get missing
	resp = doJSON(t, http.MethodGet, srv.URL+"/contacts/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Update
	resp = doJSON(t, http.MethodPut, srv.URL+"/contacts/"+created.ID, map[string]any{
		"name": "Johnny",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Contact](t, resp)
	assert.Equal(t, "Johnny", updated.Name)

	// Delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/contacts/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, http.MethodDelete, srv.URL+"/contacts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateContactValidation(t *testing.T) {
	srv := newTestServer(newFakeStore(), nil)
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/contacts", map[string]any{"name": "John"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListContactsFilters(t *testing.T) {
	st := newFakeStore()
	c, err := st.CreateContact(context.Background(), "John", "1234567890", "")
	require.NoError(t, err)
	require.NoError(t, st.AddTag(context.Background(), c.ID, "friends"))

	srv := newTestServer(st, nil)
	defer srv.Close()

	resp := doJSON(t, http.MethodGet, srv.URL+"/contacts?tag=friends", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]models.Contact](t, resp), 1)

	resp = doJSON(t, http.MethodGet, srv.URL+"/contacts?tag=enemies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Contact](t, resp))
}

func TestStoreFailureIsA500(t *testing.T) {
	st := newFakeStore()
	st.failWith = assert.AnError
	srv := newTestServer(st, nil)
	defer srv.Close()

	resp := doJSON(t, http.MethodGet, srv.URL+"/contacts", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := decodeBody[errorDetail](t, resp)
	assert.Equal(t, "Something went wrong", errBody.Detail.Message)
}

func TestPhoneEndpoints(t *testing.T) {
	st := newFakeStore()
	c, err := st.CreateContact(context.Background(), "John", "1234567890", "")
	require.NoError(t, err)

	srv := newTestServer(st, nil)
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/contacts/"+c.ID+"/phones", map[string]any{
		"phone_number": "0987654321",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	phone := decodeBody[models.Phone](t, resp)
	assert.Equal(t, "0987654321", phone.PhoneNumber)

	// Duplicate number
	resp = doJSON(t, http.MethodPost, srv.URL+"/contacts/"+c.ID+"/phones", map[string]any{
		"phone_number": "0987654321",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[errorDetail](t, resp)
	assert.Equal(t, "Phone number already exists", errBody.Detail.Message)

	resp = doJSON(t, http.MethodPut, srv.URL+"/contacts/"+c.ID+"/phones/"+phone.ID, map[string]any{
		"phone_number": "5556667777",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "5556667777", decodeBody[models.Phone](t, resp).PhoneNumber)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/contacts/"+c.ID+"/phones/"+phone.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestNoteEndpoints(t *testing.T) {
	st := newFakeStore()
	c, err := st.CreateContact(context.Background(), "John", "1234567890", "")
	require.NoError(t, err)

	srv := newTestServer(st, nil)
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/contacts/"+c.ID+"/notes", map[string]any{
		"text": "likes coffee",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	note := decodeBody[models.Note](t, resp)
	assert.Equal(t, "likes coffee", note.Text)

	resp = doJSON(t, http.MethodPost, srv.URL+"/notes/"+note.ID+"/tags", map[string]any{
		"label": "beverages",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/notes?tag=beverages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]models.Note](t, resp), 1)

	resp = doJSON(t, http.MethodPut, srv.URL+"/notes/"+note.ID, map[string]any{
		"text": "prefers tea",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "prefers tea", decodeBody[models.Note](t, resp).Text)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/notes/"+note.ID+"/tags/beverages", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, srv.URL+"/notes/"+note.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestChatEndpoints(t *testing.T) {
	t.Run("threaded turn", func(t *testing.T) {
		chat := &fakeChat{replies: []string{"hello there"}}
		srv := newTestServer(newFakeStore(), chat)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/chat/thread-42", map[string]any{
			"text": "hi",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"hello there"}, decodeBody[[]string](t, resp))
		assert.Equal(t, "thread-42", chat.lastThread)
	})

	t.Run("one-shot turn gets a fresh thread", func(t *testing.T) {
		chat := &fakeChat{replies: []string{"ok"}}
		srv := newTestServer(newFakeStore(), chat)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/chat", map[string]any{"text": "hi"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
		assert.NotEmpty(t, chat.lastThread)
	})

	t.Run("assistant failure", func(t *testing.T) {
		chat := &fakeChat{err: assert.AnError}
		srv := newTestServer(newFakeStore(), chat)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/chat", map[string]any{"text": "hi"})
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		errBody := decodeBody[errorDetail](t, resp)
		assert.Equal(t, "Something went wrong", errBody.Detail.Message)
	})

	t.Run("no assistant configured", func(t *testing.T) {
		srv := newTestServer(newFakeStore(), nil)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/chat", map[string]any{"text": "hi"})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestHealthAndStats(t *testing.T) {
	st := newFakeStore()
	_, err := st.CreateContact(context.Background(), "John", "1234567890", "")
	require.NoError(t, err)

	srv := newTestServer(st, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", health["status"])

	resp, err = http.Get(srv.URL + "/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[map[string]any](t, resp)
	assert.Contains(t, stats, "records")
	assert.Contains(t, stats, "metrics")
}
