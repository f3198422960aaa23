package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raphaelgruber/contactbot-go/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// firstResult unwraps the first statement's rows from a query response.
func firstResult[T any](results *[]surrealdb.QueryResult[[]T]) []T {
	if results == nil || len(*results) == 0 {
		return nil
	}
	return (*results)[0].Result
}

// getRecord fetches a contact row by id.
func (c *Client) getRecord(ctx context.Context, id string) (contactRecord, error) {
	results, err := timedQuery[[]contactRecord](ctx, c, `
		SELECT * FROM type::record("contact", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return contactRecord{}, fmt.Errorf("get contact: %w", err)
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return contactRecord{}, ErrNotFound
	}
	return recs[0], nil
}

// contactNotes fetches the notes attached to a contact.
func (c *Client) contactNotes(ctx context.Context, id string) ([]noteRecord, error) {
	results, err := timedQuery[[]noteRecord](ctx, c, `
		SELECT * FROM note WHERE contact = type::record("contact", $id) ORDER BY created
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("contact notes: %w", err)
	}
	return firstResult(results), nil
}

// ListContacts returns contact summaries ordered by name, optionally filtered
// by a case-insensitive name substring. Notes are not joined here; use
// GetContact for the full detail.
func (c *Client) ListContacts(ctx context.Context, query string) ([]models.Contact, error) {
	sql := `SELECT * FROM contact ORDER BY name`
	vars := map[string]any{}
	if query != "" {
		sql = `
			SELECT * FROM contact
			WHERE string::contains(string::lowercase(name), string::lowercase($query))
			ORDER BY name
		`
		vars["query"] = query
	}

	results, err := timedQuery[[]contactRecord](ctx, c, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contacts := make([]models.Contact, 0)
	for _, rec := range firstResult(results) {
		contact, err := rec.toModel(nil)
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// ListContactsByTag returns contact summaries carrying the given tag.
func (c *Client) ListContactsByTag(ctx context.Context, tag string) ([]models.Contact, error) {
	results, err := timedQuery[[]contactRecord](ctx, c, `
		SELECT * FROM contact WHERE $tag IN tags ORDER BY name
	`, map[string]any{"tag": tag})
	if err != nil {
		return nil, fmt.Errorf("list contacts by tag: %w", err)
	}

	contacts := make([]models.Contact, 0)
	for _, rec := range firstResult(results) {
		contact, err := rec.toModel(nil)
		if err != nil {
			return nil, fmt.Errorf("list contacts by tag: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// GetContact returns the full contact detail, notes included.
func (c *Client) GetContact(ctx context.Context, id string) (models.Contact, error) {
	rec, err := c.getRecord(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	notes, err := c.contactNotes(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}
	return rec.toModel(notes)
}

// CreateContact creates a contact with one initial phone number. The name
// must be unique; dateOfBirth may be empty.
func (c *Client) CreateContact(ctx context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error) {
	data := map[string]any{
		"name": name,
		"phones": []phoneEntry{
			{ID: uuid.NewString(), PhoneNumber: phoneNumber},
		},
		"emails": []emailEntry{},
		"tags":   []string{},
	}
	if dateOfBirth != "" {
		data["date_of_birth"] = dateOfBirth
	}

	results, err := timedQuery[[]contactRecord](ctx, c, `
		CREATE contact CONTENT $data
	`, map[string]any{"data": data})
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", wrapQueryError(err))
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return models.Contact{}, fmt.Errorf("create contact: no record returned")
	}
	return recs[0].toModel(nil)
}

// UpdateContact renames a contact and replaces its date of birth. An empty
// dateOfBirth clears the field.
func (c *Client) UpdateContact(ctx context.Context, id, name, dateOfBirth string) (models.Contact, error) {
	var dob any
	if dateOfBirth != "" {
		dob = dateOfBirth
	}

	results, err := timedQuery[[]contactRecord](ctx, c, `
		UPDATE type::record("contact", $id) SET
			name = $name,
			date_of_birth = $dob,
			updated = time::now()
		RETURN AFTER
	`, map[string]any{"id": id, "name": name, "dob": dob})
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact: %w", wrapQueryError(err))
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return models.Contact{}, ErrNotFound
	}

	notes, err := c.contactNotes(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}
	return recs[0].toModel(notes)
}

// DeleteContact removes a contact and its notes.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	if _, err := c.getRecord(ctx, id); err != nil {
		return err
	}

	_, err := timedQuery[any](ctx, c, `
		DELETE note WHERE contact = type::record("contact", $id);
		DELETE type::record("contact", $id);
	`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Stats reports record counts per table.
type Stats struct {
	Contacts int `json:"contacts"`
	Notes    int `json:"notes"`
}

// CountRecords returns the number of contacts and notes.
func (c *Client) CountRecords(ctx context.Context) (Stats, error) {
	type countRow struct {
		C int `json:"c"`
	}

	var stats Stats
	results, err := timedQuery[[]countRow](ctx, c, `
		SELECT count() AS c FROM contact GROUP ALL
	`, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("count contacts: %w", err)
	}
	if rows := firstResult(results); len(rows) > 0 {
		stats.Contacts = rows[0].C
	}

	results, err = timedQuery[[]countRow](ctx, c, `
		SELECT count() AS c FROM note GROUP ALL
	`, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("count notes: %w", err)
	}
	if rows := firstResult(results); len(rows) > 0 {
		stats.Notes = rows[0].C
	}

	return stats, nil
}
