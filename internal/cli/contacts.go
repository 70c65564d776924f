package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage the address book",
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(2),
	Run:   runContactsAdd,
}

var contactsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a contact",
	Args:  cobra.ExactArgs(1),
	Run:   runContactsRemove,
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Args:  cobra.NoArgs,
	Run:   runContactsList,
}

var contactsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get a contact address",
	Args:  cobra.ExactArgs(1),
	Run:   runContactsGet,
}

func init() {
	contactsCmd.AddCommand(contactsAddCmd, contactsRemoveCmd, contactsListCmd, contactsGetCmd)
	rootCmd.AddCommand(contactsCmd)
}

func runContactsAdd(cmd *cobra.Command, args []string) {
	st := openStore()
	contact, err := st.AddContact(args[0], args[1])
	if err != nil {
		fail(err)
	}
	success(map[string]any{
		"action":  "contact_added",
		"name":    contact.Name,
		"address": contact.Address,
	})
}

func runContactsRemove(cmd *cobra.Command, args []string) {
	st := openStore()
	if err := st.RemoveContact(args[0]); err != nil {
		fail(err)
	}
	success(map[string]any{
		"action": "contact_removed",
		"name":   strings.ToLower(args[0]),
	})
}

func runContactsList(cmd *cobra.Command, args []string) {
	st := openStore()
	success(map[string]any{
		"action":   "contacts_list",
		"contacts": st.ListContacts(),
	})
}

func runContactsGet(cmd *cobra.Command, args []string) {
	st := openStore()
	contact := st.GetContact(args[0])
	if contact == nil {
		fail(sdkerr.New(sdkerr.CodeContactNotFound, "Contact %q not found", strings.ToLower(args[0])))
	}
	success(map[string]any{
		"action":  "contact_get",
		"name":    contact.Name,
		"address": contact.Address,
	})
}
