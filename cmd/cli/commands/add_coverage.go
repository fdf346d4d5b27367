package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/services"
)

// AddCoverageCmd creates the addCoverage command
func AddCoverageCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addCoverage <entry_id> <title>",
		Short: "Add a coverage item to a leave entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, _ := cmd.Flags().GetString("link")
			notes, _ := cmd.Flags().GetString("notes")

			item, ok := services.AddCoverageItem(app.Store, app.Logger, args[0], args[1], link, notes)
			if !ok {
				fmt.Printf("Entry %s not found\n", args[0])
				return nil
			}

			fmt.Printf("✓ Coverage item added: %s (%s)\n", item.Title, item.ID)
			return nil
		},
	}

	cmd.Flags().String("link", "", "Link to a ticket, deal or document")
	cmd.Flags().String("notes", "", "Context for whoever picks this up")

	return cmd
}
