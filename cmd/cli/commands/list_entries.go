package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/services"
)

// ListEntriesCmd creates the listEntries command
func ListEntriesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEntries",
		Short: "List all leave entries, sorted by start date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := services.ListEntries(app.Store)

			fmt.Printf("\nFound %d entries:\n\n", len(entries))
			for _, entry := range entries {
				mine := ""
				if entry.CreatedBy == app.Cfg.User {
					mine = " (mine)"
				}
				fmt.Printf("- %s  %s → %s  %-10s %s%s\n",
					entry.ID, entry.Start, entry.End, entry.Type, entry.Name, mine)
				if entry.Notes != "" {
					fmt.Printf("    notes: %s\n", entry.Notes)
				}
				for _, item := range entry.Coverage {
					fmt.Printf("    coverage %s: %s\n", item.ID, item.Title)
					for _, task := range item.Tasks {
						box := "[ ]"
						if task.Done {
							box = "[x]"
						}
						fmt.Printf("      %s %s %s\n", box, task.ID, task.Text)
					}
				}
			}
			fmt.Println()

			return nil
		},
	}
}
