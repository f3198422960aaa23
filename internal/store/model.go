package store

import (
	"fmt"
	"time"

	"github.com/raphaelgruber/contactbot-go/internal/models"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// contactRecord is the contact table row. Phones, emails and tags are
// embedded; notes live in their own table and are joined on read.
type contactRecord struct {
	ID          surrealmodels.RecordID `json:"id,omitempty"`
	Name        string                 `json:"name"`
	DateOfBirth *string                `json:"date_of_birth,omitempty"`
	Phones      []phoneEntry           `json:"phones"`
	Emails      []emailEntry           `json:"emails"`
	Tags        []string               `json:"tags"`
	Created     time.Time              `json:"created,omitempty"`
	Updated     time.Time              `json:"updated,omitempty"`
}

type phoneEntry struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type emailEntry struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// noteRecord is the note table row.
type noteRecord struct {
	ID      surrealmodels.RecordID  `json:"id,omitempty"`
	Text    string                  `json:"text"`
	Tags    []string                `json:"tags"`
	Contact *surrealmodels.RecordID `json:"contact,omitempty"`
	Created time.Time               `json:"created,omitempty"`
}

// recordIDString extracts the string part of a SurrealDB record id.
func recordIDString(id surrealmodels.RecordID) (string, error) {
	s, ok := id.ID.(string)
	if !ok {
		return "", fmt.Errorf("unexpected record id type: %T", id.ID)
	}
	return s, nil
}

func (r contactRecord) toModel(notes []noteRecord) (models.Contact, error) {
	id, err := recordIDString(r.ID)
	if err != nil {
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:     id,
		Name:   r.Name,
		Phones: make([]models.Phone, 0, len(r.Phones)),
		Emails: make([]models.Email, 0, len(r.Emails)),
		Notes:  make([]models.Note, 0, len(notes)),
		Tags:   r.Tags,
	}
	if r.DateOfBirth != nil {
		contact.DateOfBirth = *r.DateOfBirth
	}
	if contact.Tags == nil {
		contact.Tags = []string{}
	}

	for _, p := range r.Phones {
		contact.Phones = append(contact.Phones, models.Phone{ID: p.ID, PhoneNumber: p.PhoneNumber})
	}
	for _, e := range r.Emails {
		contact.Emails = append(contact.Emails, models.Email{ID: e.ID, EmailAddress: e.EmailAddress})
	}
	for _, n := range notes {
		note, err := n.toModel()
		if err != nil {
			return models.Contact{}, err
		}
		contact.Notes = append(contact.Notes, note)
	}
	return contact, nil
}

func (r noteRecord) toModel() (models.Note, error) {
	id, err := recordIDString(r.ID)
	if err != nil {
		return models.Note{}, err
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Note{ID: id, Text: r.Text, Tags: tags}, nil
}
