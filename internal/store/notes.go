package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// getNoteRecord fetches a note row by id.
func (c *Client) getNoteRecord(ctx context.Context, id string) (noteRecord, error) {
	results, err := timedQuery[[]noteRecord](ctx, c, `
		SELECT * FROM type::record("note", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return noteRecord{}, fmt.Errorf("get note: %w", err)
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return noteRecord{}, ErrNotFound
	}
	return recs[0], nil
}

// ListNotes returns all notes, optionally filtered by tag.
func (c *Client) ListNotes(ctx context.Context, tag string) ([]models.Note, error) {
	sql := `SELECT * FROM note ORDER BY created`
	vars := map[string]any{}
	if tag != "" {
		sql = `SELECT * FROM note WHERE $tag IN tags ORDER BY created`
		vars["tag"] = tag
	}

	results, err := timedQuery[[]noteRecord](ctx, c, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]models.Note, 0)
	for _, rec := range firstResult(results) {
		note, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// AddNote creates a note attached to a contact.
func (c *Client) AddNote(ctx context.Context, contactID, text string) (models.Note, error) {
	if _, err := c.getRecord(ctx, contactID); err != nil {
		return models.Note{}, err
	}

	results, err := timedQuery[[]noteRecord](ctx, c, `
		CREATE note CONTENT {
			text: $text,
			tags: [],
			contact: type::record("contact", $contact_id)
		}
	`, map[string]any{"text": text, "contact_id": contactID})
	if err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return models.Note{}, fmt.Errorf("add note: no record returned")
	}
	return recs[0].toModel()
}

// UpdateNote replaces the text of a note.
func (c *Client) UpdateNote(ctx context.Context, noteID, text string) (models.Note, error) {
	results, err := timedQuery[[]noteRecord](ctx, c, `
		UPDATE type::record("note", $id) SET text = $text RETURN AFTER
	`, map[string]any{"id": noteID, "text": text})
	if err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	recs := firstResult(results)
	if len(recs) == 0 {
		return models.Note{}, ErrNotFound
	}
	return recs[0].toModel()
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	if _, err := c.getNoteRecord(ctx, noteID); err != nil {
		return err
	}

	_, err := timedQuery[any](ctx, c, `
		DELETE type::record("note", $id)
	`, map[string]any{"id": noteID})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// AddNoteTag adds a tag to a note. Adding an existing tag is a no-op.
func (c *Client) AddNoteTag(ctx context.Context, noteID, label string) error {
	results, err := timedQuery[[]noteRecord](ctx, c, `
		UPDATE type::record("note", $id) SET tags = array::union(tags, [$label]) RETURN AFTER
	`, map[string]any{"id": noteID, "label": label})
	if err != nil {
		return fmt.Errorf("add note tag: %w", err)
	}

	if len(firstResult(results)) == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveNoteTag removes a tag from a note. The tag must be present.
func (c *Client) RemoveNoteTag(ctx context.Context, noteID, label string) error {
	rec, err := c.getNoteRecord(ctx, noteID)
	if err != nil {
		return err
	}

	if !slices.Contains(rec.Tags, label) {
		return fmt.Errorf("%w: tag %s", ErrNotFound, label)
	}

	_, err = timedQuery[any](ctx, c, `
		UPDATE type::record("note", $id) SET tags -= $label
	`, map[string]any{"id": noteID, "label": label})
	if err != nil {
		return fmt.Errorf("remove note tag: %w", err)
	}
	return nil
}
