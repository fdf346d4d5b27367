package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/model"
	"github.com/awayboard/awayboard/pkg/core/services"
)

// UpdateEntryCmd creates the updateEntry command
func UpdateEntryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateEntry <entry_id>",
		Short: "Update fields of an existing leave entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch services.EntryPatch

			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				patch.Name = &v
			}
			if cmd.Flags().Changed("start") {
				v, _ := cmd.Flags().GetString("start")
				patch.Start = &v
			}
			if cmd.Flags().Changed("end") {
				v, _ := cmd.Flags().GetString("end")
				patch.End = &v
			}
			if cmd.Flags().Changed("type") {
				v, _ := cmd.Flags().GetString("type")
				t := model.EntryType(v)
				patch.Type = &t
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				patch.Notes = &v
			}

			entry, found, err := services.UpdateEntry(app.Store, app.Logger, args[0], patch)
			if err != nil {
				var vErr *model.ValidationError
				if errors.As(err, &vErr) {
					fmt.Printf("✗ %s\n", vErr.Error())
					return nil
				}
				return err
			}
			if !found {
				fmt.Printf("Entry %s not found, nothing updated\n", args[0])
				return nil
			}

			fmt.Printf("✓ Entry updated: %s (%s → %s)\n", entry.Name, entry.Start, entry.End)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Owner display name")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("type", "", "Entry type")
	cmd.Flags().String("notes", "", "Handoff notes")

	return cmd
}
