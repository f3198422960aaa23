// Package client provides a REST client for the contactbot server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// Client is an HTTP client for the directory and assistant endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new client. If baseURL is empty, uses the
// CONTACTBOT_SERVER_URL env var or defaults to localhost:8090. Timeout can be
// configured via CONTACTBOT_CLIENT_TIMEOUT (default 30s).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("CONTACTBOT_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}

	timeout := 30 * time.Second
	if t := os.Getenv("CONTACTBOT_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithTimeout creates a client with an explicit timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	c := New(baseURL)
	c.httpClient.Timeout = timeout
	return c
}

// APIError is a non-2xx response from the server, carrying the
// service-reported detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServiceDetail returns the server's human-readable explanation.
func (e *APIError) ServiceDetail() string { return e.Detail }

// errorBody matches the server's error payload.
type errorBody struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

// do executes one request. body and result may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(data))
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Detail.Message != "" {
			detail = eb.Detail.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// =============================================================================
// CONTACT OPERATIONS
// =============================================================================

// ListContacts returns all contacts, optionally filtered by a name query.
func (c *Client) ListContacts(ctx context.Context, query string) ([]models.Contact, error) {
	path := "/contacts"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}

	var contacts []models.Contact
	if err := c.do(ctx, http.MethodGet, path, nil, &contacts); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// ListContactsByTag returns all contacts carrying the given tag.
func (c *Client) ListContactsByTag(ctx context.Context, tag string) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := c.do(ctx, http.MethodGet, "/contacts?tag="+url.QueryEscape(tag), nil, &contacts); err != nil {
		return nil, fmt.Errorf("list contacts by tag: %w", err)
	}
	return contacts, nil
}

// GetContact retrieves the full detail of a contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodGet, "/contacts/"+url.PathEscape(id), nil, &contact); err != nil {
		return models.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// createContactRequest is the payload for contact creation.
type createContactRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth"`
}

// CreateContact creates a contact. dateOfBirth may be empty.
func (c *Client) CreateContact(ctx context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error) {
	req := createContactRequest{Name: name, PhoneNumber: phoneNumber}
	if dateOfBirth != "" {
		req.DateOfBirth = &dateOfBirth
	}

	var contact models.Contact
	if err := c.do(ctx, http.MethodPost, "/contacts", req, &contact); err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

// updateContactRequest is the payload for contact updates.
type updateContactRequest struct {
	Name        string  `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
}

// UpdateContact renames a contact and sets its date of birth.
func (c *Client) UpdateContact(ctx context.Context, id, name, dateOfBirth string) (models.Contact, error) {
	req := updateContactRequest{Name: name}
	if dateOfBirth != "" {
		req.DateOfBirth = &dateOfBirth
	}

	var contact models.Contact
	if err := c.do(ctx, http.MethodPut, "/contacts/"+url.PathEscape(id), req, &contact); err != nil {
		return models.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// DeleteContact removes a contact by id.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// =============================================================================
// PHONE OPERATIONS
// =============================================================================

type phoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// AddPhone adds a phone number to a contact.
func (c *Client) AddPhone(ctx context.Context, contactID, phoneNumber string) (models.Phone, error) {
	var phone models.Phone
	path := "/contacts/" + url.PathEscape(contactID) + "/phones"
	if err := c.do(ctx, http.MethodPost, path, phoneRequest{PhoneNumber: phoneNumber}, &phone); err != nil {
		return models.Phone{}, fmt.Errorf("add phone: %w", err)
	}
	return phone, nil
}

// UpdatePhone changes the value of an existing phone.
func (c *Client) UpdatePhone(ctx context.Context, contactID, phoneID, value string) (models.Phone, error) {
	var phone models.Phone
	path := "/contacts/" + url.PathEscape(contactID) + "/phones/" + url.PathEscape(phoneID)
	if err := c.do(ctx, http.MethodPut, path, phoneRequest{PhoneNumber: value}, &phone); err != nil {
		return models.Phone{}, fmt.Errorf("update phone: %w", err)
	}
	return phone, nil
}

// DeletePhone removes a phone number from a contact.
func (c *Client) DeletePhone(ctx context.Context, contactID, phoneID string) error {
	path := "/contacts/" + url.PathEscape(contactID) + "/phones/" + url.PathEscape(phoneID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	return nil
}

// =============================================================================
// EMAIL OPERATIONS
// =============================================================================

type emailRequest struct {
	EmailAddress string `json:"email_address"`
}

// AddEmail adds an email address to a contact.
func (c *Client) AddEmail(ctx context.Context, contactID, emailAddress string) (models.Email, error) {
	var email models.Email
	path := "/contacts/" + url.PathEscape(contactID) + "/emails"
	if err := c.do(ctx, http.MethodPost, path, emailRequest{EmailAddress: emailAddress}, &email); err != nil {
		return models.Email{}, fmt.Errorf("add email: %w", err)
	}
	return email, nil
}

// UpdateEmail changes the value of an existing email address.
func (c *Client) UpdateEmail(ctx context.Context, contactID, emailID, value string) (models.Email, error) {
	var email models.Email
	path := "/contacts/" + url.PathEscape(contactID) + "/emails/" + url.PathEscape(emailID)
	if err := c.do(ctx, http.MethodPut, path, emailRequest{EmailAddress: value}, &email); err != nil {
		return models.Email{}, fmt.Errorf("update email: %w", err)
	}
	return email, nil
}

// DeleteEmail removes an email address from a contact.
func (c *Client) DeleteEmail(ctx context.Context, contactID, emailID string) error {
	path := "/contacts/" + url.PathEscape(contactID) + "/emails/" + url.PathEscape(emailID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete email: %w", err)
	}
	return nil
}

// =============================================================================
// NOTE OPERATIONS
// =============================================================================

type noteRequest struct {
	Text string `json:"text"`
}

// ListNotes returns all notes, optionally filtered by tag.
func (c *Client) ListNotes(ctx context.Context, tag string) ([]models.Note, error) {
	path := "/notes"
	if tag != "" {
		path += "?tag=" + url.QueryEscape(tag)
	}

	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// AddNote attaches a note to a contact.
func (c *Client) AddNote(ctx context.Context, contactID, text string) (models.Note, error) {
	var note models.Note
	path := "/contacts/" + url.PathEscape(contactID) + "/notes"
	if err := c.do(ctx, http.MethodPost, path, noteRequest{Text: text}, &note); err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}
	return note, nil
}

// UpdateNote replaces the text of an existing note.
func (c *Client) UpdateNote(ctx context.Context, noteID, text string) (models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(noteID), noteRequest{Text: text}, &note); err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// =============================================================================
// TAG OPERATIONS
// =============================================================================

type tagRequest struct {
	Label string `json:"label"`
}

// AddTag adds a tag to a contact.
func (c *Client) AddTag(ctx context.Context, contactID, label string) error {
	path := "/contacts/" + url.PathEscape(contactID) + "/tags"
	if err := c.do(ctx, http.MethodPost, path, tagRequest{Label: label}, nil); err != nil {
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

// DeleteTag removes a tag from a contact.
func (c *Client) DeleteTag(ctx context.Context, contactID, label string) error {
	path := "/contacts/" + url.PathEscape(contactID) + "/tags/" + url.PathEscape(label)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// AddNoteTag adds a tag to a note.
func (c *Client) AddNoteTag(ctx context.Context, noteID, label string) error {
	path := "/notes/" + url.PathEscape(noteID) + "/tags"
	if err := c.do(ctx, http.MethodPost, path, tagRequest{Label: label}, nil); err != nil {
		return fmt.Errorf("add note tag: %w", err)
	}
	return nil
}
