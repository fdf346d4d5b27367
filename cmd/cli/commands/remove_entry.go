package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/services"
)

// RemoveEntryCmd creates the removeEntry command
func RemoveEntryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeEntry <entry_id>",
		Short: "Remove a leave entry and all its coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.RemoveEntry(app.Store, app.Logger, args[0]) {
				fmt.Printf("✓ Entry %s removed\n", args[0])
			} else {
				fmt.Printf("Entry %s not found, nothing to remove\n", args[0])
			}
			return nil
		},
	}
}
