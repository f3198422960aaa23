// Package models defines the wire-level domain types shared by the
// directory client, the chat engine and the server mappers.
package models

// Phone is a phone number belonging to a contact.
type Phone struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
}

// Email is an email address belonging to a contact.
type Email struct {
	ID           string `json:"id"`
	EmailAddress string `json:"emailAddress"`
}

// Note is a free-text note attached to a contact. Notes carry their own tags,
// independent of the contact's tags.
type Note struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// Contact is a directory entry. The chat engine only ever holds transient
// copies fetched per command; the directory service owns the data.
type Contact struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Phones      []Phone  `json:"phones"`
	Emails      []Email  `json:"emails"`
	Notes       []Note   `json:"notes"`
	Tags        []string `json:"tags"`
}

// FindPhone returns the phone with the exact given value, or nil.
func (c Contact) FindPhone(value string) *Phone {
	for i := range c.Phones {
		if c.Phones[i].PhoneNumber == value {
			return &c.Phones[i]
		}
	}
	return nil
}
