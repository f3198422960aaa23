package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the full detail of one contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	name := args[0]

	contacts, err := apiClient.ListContacts(ctx, "")
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	var matches []string
	for _, c := range contacts {
		if strings.EqualFold(c.Name, name) {
			matches = append(matches, c.ID)
		}
	}
	switch {
	case len(matches) == 0:
		return fmt.Errorf("contact %q not found", name)
	case len(matches) > 1:
		return fmt.Errorf("found %d contacts named %q, the name is ambiguous", len(matches), name)
	}

	contact, err := apiClient.GetContact(ctx, matches[0])
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}

	fmt.Println(contact.Name)
	if contact.DateOfBirth != "" {
		fmt.Printf("  Born: %s\n", contact.DateOfBirth)
	}
	for _, p := range contact.Phones {
		fmt.Printf("  Phone: %s\n", p.PhoneNumber)
	}
	for _, e := range contact.Emails {
		fmt.Printf("  Email: %s\n", e.EmailAddress)
	}
	for _, n := range contact.Notes {
		line := fmt.Sprintf("  Note: %s", n.Text)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(n.Tags, ", "))
		}
		fmt.Println(line)
	}
	if len(contact.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(contact.Tags, ", "))
	}
	return nil
}
