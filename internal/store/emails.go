package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// emailAddressTaken reports whether any email entry other than excludeID
// already carries the address.
func (c *Client) emailAddressTaken(ctx context.Context, address, excludeID string) (bool, error) {
	type row struct {
		Emails []emailEntry `json:"emails"`
	}

	results, err := timedQuery[[]row](ctx, c, `
		SELECT emails FROM contact WHERE $address IN emails.email_address
	`, map[string]any{"address": address})
	if err != nil {
		return false, fmt.Errorf("check email address: %w", err)
	}

	for _, r := range firstResult(results) {
		for _, e := range r.Emails {
			if e.EmailAddress == address && e.ID != excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

// setEmails writes a contact's full email list back.
func (c *Client) setEmails(ctx context.Context, contactID string, emails []emailEntry) error {
	_, err := timedQuery[any](ctx, c, `
		UPDATE type::record("contact", $id) SET emails = $emails, updated = time::now()
	`, map[string]any{"id": contactID, "emails": emails})
	if err != nil {
		return fmt.Errorf("set emails: %w", err)
	}
	return nil
}

// AddEmail appends an email address to a contact.
func (c *Client) AddEmail(ctx context.Context, contactID, emailAddress string) (models.Email, error) {
	taken, err := c.emailAddressTaken(ctx, emailAddress, "")
	if err != nil {
		return models.Email{}, err
	}
	if taken {
		return models.Email{}, fmt.Errorf("%w: email address %s", ErrAlreadyExists, emailAddress)
	}

	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return models.Email{}, err
	}

	entry := emailEntry{ID: uuid.NewString(), EmailAddress: emailAddress}
	if err := c.setEmails(ctx, contactID, append(rec.Emails, entry)); err != nil {
		return models.Email{}, err
	}
	return models.Email{ID: entry.ID, EmailAddress: entry.EmailAddress}, nil
}

// UpdateEmail replaces the value of an existing email entry.
func (c *Client) UpdateEmail(ctx context.Context, contactID, emailID, value string) (models.Email, error) {
	taken, err := c.emailAddressTaken(ctx, value, emailID)
	if err != nil {
		return models.Email{}, err
	}
	if taken {
		return models.Email{}, fmt.Errorf("%w: email address %s", ErrAlreadyExists, value)
	}

	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return models.Email{}, err
	}

	for i, e := range rec.Emails {
		if e.ID == emailID {
			rec.Emails[i].EmailAddress = value
			if err := c.setEmails(ctx, contactID, rec.Emails); err != nil {
				return models.Email{}, err
			}
			return models.Email{ID: emailID, EmailAddress: value}, nil
		}
	}
	return models.Email{}, fmt.Errorf("%w: email %s", ErrNotFound, emailID)
}

// DeleteEmail removes an email entry from a contact.
func (c *Client) DeleteEmail(ctx context.Context, contactID, emailID string) error {
	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return err
	}

	kept := rec.Emails[:0]
	for _, e := range rec.Emails {
		if e.ID != emailID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(rec.Emails) {
		return fmt.Errorf("%w: email %s", ErrNotFound, emailID)
	}
	return c.setEmails(ctx, contactID, kept)
}
