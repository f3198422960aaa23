package chat

import (
	"testing"

	"github.com/raphaelgruber/contactbot-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePhone(t *testing.T) {
	john := models.Contact{
		ID:     "c1",
		Name:   "John Doe",
		Phones: []models.Phone{{ID: "p1", PhoneNumber: "1234567890"}},
	}

	t.Run("success updates and re-fetches", func(t *testing.T) {
		dir := newFakeDirectory(john)
		msgs := routeInput(t, dir, "update phone for John Doe from 1234567890 to 0987654321")

		require.NotNil(t, dir.lastPhone)
		assert.Equal(t, "c1", dir.lastPhone.contactID)
		assert.Equal(t, "p1", dir.lastPhone.phoneID)
		assert.Equal(t, "0987654321", dir.lastPhone.value)

		require.Len(t, msgs, 2)
		require.Len(t, msgs[0].Contacts, 1)
		assert.Equal(t, "0987654321", msgs[0].Contacts[0].Phones[0].PhoneNumber)
		assert.Contains(t, msgs[1].Text, "John Doe")
	})

	t.Run("name span runs from for to from", func(t *testing.T) {
		dir := newFakeDirectory(models.Contact{
			ID:     "c2",
			Name:   "Anna Maria Lopez",
			Phones: []models.Phone{{ID: "p2", PhoneNumber: "1112223333"}},
		})
		routeInput(t, dir, "update phone for Anna Maria Lopez from 1112223333 to 4445556666")

		require.NotNil(t, dir.lastPhone)
		assert.Equal(t, "c2", dir.lastPhone.contactID)
	})

	t.Run("phone not found reports without mutating", func(t *testing.T) {
		dir := newFakeDirectory(john)
		msgs := routeInput(t, dir, "update phone for John Doe from 5555555555 to 0987654321")

		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].Text, `"5555555555"`)
		assert.Contains(t, msgs[0].Text, "not found")
		assert.Nil(t, dir.lastPhone)
	})

	t.Run("two matches are already ambiguous", func(t *testing.T) {
		// Uniform rule: more than one match blocks, same as everywhere else.
		dir := newFakeDirectory(
			models.Contact{ID: "c1", Name: "John", Phones: []models.Phone{{ID: "p1", PhoneNumber: "1234567890"}}},
			models.Contact{ID: "c2", Name: "John", Phones: []models.Phone{{ID: "p2", PhoneNumber: "1234567890"}}},
		)
		msgs := routeInput(t, dir, "update phone for John from 1234567890 to 0987654321")

		require.Len(t, msgs, 3)
		assert.Contains(t, msgs[0].Text, "Found 2 contacts")
		assert.Nil(t, dir.lastPhone)
	})

	t.Run("contact not found", func(t *testing.T) {
		dir := newFakeDirectory()
		msgs := routeInput(t, dir, "update phone for Ghost from 1234567890 to 0987654321")

		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].Text, "not found")
	})

	t.Run("invalid new phone rejected locally", func(t *testing.T) {
		dir := newFakeDirectory(john)
		msgs := routeInput(t, dir, "update phone for John Doe from 1234567890 to 999")

		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].Text, "10 digits")
		assert.Empty(t, dir.calls)
	})

	t.Run("missing anchors are a format error", func(t *testing.T) {
		tests := []string{
			"update phone for John Doe",
			"update phone for John Doe from 1234567890",
			"update phone for from 1234567890 to 0987654321",
		}
		for _, input := range tests {
			dir := newFakeDirectory(john)
			msgs := routeInput(t, dir, input)

			require.Len(t, msgs, 1, "input: %s", input)
			assert.Equal(t, phoneUsage, msgs[0].Text, "input: %s", input)
			assert.Empty(t, dir.calls, "input: %s", input)
		}
	})
}
