package store

import (
	"context"
	"fmt"
	"slices"
)

// AddTag adds a tag to a contact. Adding an existing tag is a no-op.
func (c *Client) AddTag(ctx context.Context, contactID, label string) error {
	results, err := timedQuery[[]contactRecord](ctx, c, `
		UPDATE type::record("contact", $id) SET
			tags = array::union(tags, [$label]),
			updated = time::now()
		RETURN AFTER
	`, map[string]any{"id": contactID, "label": label})
	if err != nil {
		return fmt.Errorf("add tag: %w", err)
	}

	if len(firstResult(results)) == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTag removes a tag from a contact. The tag must be present.
func (c *Client) DeleteTag(ctx context.Context, contactID, label string) error {
	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return err
	}
	if !slices.Contains(rec.Tags, label) {
		return fmt.Errorf("%w: tag %s", ErrNotFound, label)
	}

	_, err = timedQuery[any](ctx, c, `
		UPDATE type::record("contact", $id) SET tags -= $label, updated = time::now()
	`, map[string]any{"id": contactID, "label": label})
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
