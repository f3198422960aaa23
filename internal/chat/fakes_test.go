package chat

import (
	"context"
	"fmt"

	"github.com/raphaelgruber/contactbot-go/internal/models"
)

// fakeDirectory is a scripted Directory. Every call is recorded in calls so
// tests can assert which operations ran (and which did not).
type fakeDirectory struct {
	contacts  []models.Contact
	details   map[string]models.Contact
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	phoneErr  error

	created     []models.Contact
	lastUpdate  *updateArgs
	lastPhone   *phoneArgs
	calls       []string
	nextID      int
}

type updateArgs struct {
	id, name, dateOfBirth string
}

type phoneArgs struct {
	contactID, phoneID, value string
}

func newFakeDirectory(contacts ...models.Contact) *fakeDirectory {
	details := make(map[string]models.Contact, len(contacts))
	for _, c := range contacts {
		details[c.ID] = c
	}
	return &fakeDirectory{contacts: contacts, details: details}
}

func (f *fakeDirectory) ListContacts(ctx context.Context, query string) ([]models.Contact, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.contacts, nil
}

func (f *fakeDirectory) GetContact(ctx context.Context, id string) (models.Contact, error) {
	f.calls = append(f.calls, "get:"+id)
	if f.getErr != nil {
		return models.Contact{}, f.getErr
	}
	if c, ok := f.details[id]; ok {
		return c, nil
	}
	return models.Contact{}, fmt.Errorf("no such contact %s", id)
}

func (f *fakeDirectory) CreateContact(ctx context.Context, name, phoneNumber, dateOfBirth string) (models.Contact, error) {
	f.calls = append(f.calls, "create:"+name)
	if f.createErr != nil {
		return models.Contact{}, f.createErr
	}
	f.nextID++
	c := models.Contact{
		ID:          fmt.Sprintf("c%d", f.nextID),
		Name:        name,
		DateOfBirth: dateOfBirth,
		Phones:      []models.Phone{{ID: "p1", PhoneNumber: phoneNumber}},
	}
	f.created = append(f.created, c)
	f.contacts = append(f.contacts, c)
	f.details[c.ID] = c
	return c, nil
}

func (f *fakeDirectory) UpdateContact(ctx context.Context, id, name, dateOfBirth string) (models.Contact, error) {
	f.calls = append(f.calls, "update:"+id)
	if f.updateErr != nil {
		return models.Contact{}, f.updateErr
	}
	f.lastUpdate = &updateArgs{id: id, name: name, dateOfBirth: dateOfBirth}
	c := f.details[id]
	c.Name = name
	c.DateOfBirth = dateOfBirth
	f.details[id] = c
	return c, nil
}

func (f *fakeDirectory) DeleteContact(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.deleteErr
}

func (f *fakeDirectory) UpdatePhone(ctx context.Context, contactID, phoneID, value string) (models.Phone, error) {
	f.calls = append(f.calls, "phone:"+contactID)
	if f.phoneErr != nil {
		return models.Phone{}, f.phoneErr
	}
	f.lastPhone = &phoneArgs{contactID: contactID, phoneID: phoneID, value: value}
	c := f.details[contactID]
	for i := range c.Phones {
		if c.Phones[i].ID == phoneID {
			c.Phones[i].PhoneNumber = value
		}
	}
	f.details[contactID] = c
	return models.Phone{ID: phoneID, PhoneNumber: value}, nil
}

func (f *fakeDirectory) called(op string) bool {
	for _, c := range f.calls {
		if c == op {
			return true
		}
	}
	return false
}

// fakeAssistant records forwarded input and replies with a script.
type fakeAssistant struct {
	replies    []string
	err        error
	lastText   string
	lastThread string
	callCount  int
}

func (f *fakeAssistant) SendToThread(ctx context.Context, text, threadID string) ([]string, error) {
	f.callCount++
	f.lastText = text
	f.lastThread = threadID
	if f.err != nil {
		return nil, f.err
	}
	return f.replies, nil
}
