package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/contactbot-go/internal/models"
	"github.com/spf13/cobra"
)

var listTag string

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List contacts",
	Long: `List contacts from the directory, optionally filtered by a name query
or a tag.

Examples:
  contactbot list
  contactbot list john
  contactbot list --tag friends`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var contacts []models.Contact
	var err error
	if listTag != "" {
		contacts, err = apiClient.ListContactsByTag(ctx, listTag)
	} else {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		contacts, err = apiClient.ListContacts(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}

	for _, contact := range contacts {
		printContactLine(contact)
	}
	return nil
}

func printContactLine(contact models.Contact) {
	phones := make([]string, 0, len(contact.Phones))
	for _, p := range contact.Phones {
		phones = append(phones, p.PhoneNumber)
	}

	line := fmt.Sprintf("%-24s %s", contact.Name, strings.Join(phones, ", "))
	if contact.DateOfBirth != "" {
		line += fmt.Sprintf("  (born %s)", contact.DateOfBirth)
	}
	if len(contact.Tags) > 0 {
		line += fmt.Sprintf("  [%s]", strings.Join(contact.Tags, ", "))
	}
	fmt.Println(line)
}
