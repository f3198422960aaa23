package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// phoneNumberTaken reports whether any phone entry other than excludeID
// already carries the number. Phone numbers are unique across the directory.
func (c *Client) phoneNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	type row struct {
		Phones []phoneEntry `json:"phones"`
	}

	results, err := timedQuery[[]row](ctx, c, `
		SELECT phones FROM contact WHERE $number IN phones.phone_number
	`, map[string]any{"number": number})
	if err != nil {
		return false, fmt.Errorf("check phone number: %w", err)
	}

	for _, r := range firstResult(results) {
		for _, p := range r.Phones {
			if p.PhoneNumber == number && p.ID != excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

// setPhones writes a contact's full phone list back.
func (c *Client) setPhones(ctx context.Context, contactID string, phones []phoneEntry) error {
	_, err := timedQuery[any](ctx, c, `
		UPDATE type::record("contact", $id) SET phones = $phones, updated = time::now()
	`, map[string]any{"id": contactID, "phones": phones})
	if err != nil {
		return fmt.Errorf("set phones: %w", err)
	}
	return nil
}

// AddPhone appends a phone number to a contact.
func (c *Client) AddPhone(ctx context.Context, contactID, phoneNumber string) (models.Phone, error) {
	taken, err := c.phoneNumberTaken(ctx, phoneNumber, "")
	if err != nil {
		return models.Phone{}, err
	}
	if taken {
		return models.Phone{}, fmt.Errorf("%w: phone number %s", ErrAlreadyExists, phoneNumber)
	}

	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return models.Phone{}, err
	}

	entry := phoneEntry{ID: uuid.NewString(), PhoneNumber: phoneNumber}
	if err := c.setPhones(ctx, contactID, append(rec.Phones, entry)); err != nil {
		return models.Phone{}, err
	}
	return models.Phone{ID: entry.ID, PhoneNumber: entry.PhoneNumber}, nil
}

// UpdatePhone replaces the value of an existing phone entry.
func (c *Client) UpdatePhone(ctx context.Context, contactID, phoneID, value string) (models.Phone, error) {
	taken, err := c.phoneNumberTaken(ctx, value, phoneID)
	if err != nil {
		return models.Phone{}, err
	}
	if taken {
		return models.Phone{}, fmt.Errorf("%w: phone number %s", ErrAlreadyExists, value)
	}

	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return models.Phone{}, err
	}

	for i, p := range rec.Phones {
		if p.ID == phoneID {
			rec.Phones[i].PhoneNumber = value
			if err := c.setPhones(ctx, contactID, rec.Phones); err != nil {
				return models.Phone{}, err
			}
			return models.Phone{ID: phoneID, PhoneNumber: value}, nil
		}
	}
	return models.Phone{}, fmt.Errorf("%w: phone %s", ErrNotFound, phoneID)
}

// DeletePhone removes a phone entry from a contact.
func (c *Client) DeletePhone(ctx context.Context, contactID, phoneID string) error {
	rec, err := c.getRecord(ctx, contactID)
	if err != nil {
		return err
	}

	kept := rec.Phones[:0]
	for _, p := range rec.Phones {
		if p.ID != phoneID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(rec.Phones) {
		return fmt.Errorf("%w: phone %s", ErrNotFound, phoneID)
	}
	return c.setPhones(ctx, contactID, kept)
}
