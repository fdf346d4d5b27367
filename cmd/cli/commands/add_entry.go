package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/model"
	"github.com/awayboard/awayboard/pkg/core/services"
)

// AddEntryCmd creates the addEntry command
func AddEntryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addEntry <name> <start> <end>",
		Short: "Add a leave entry (dates as YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryType, _ := cmd.Flags().GetString("type")
			notes, _ := cmd.Flags().GetString("notes")

			draft := model.EntryDraft{
				Name:  args[0],
				Start: args[1],
				End:   args[2],
				Type:  model.EntryType(entryType),
				Notes: notes,
			}

			entry, err := services.AddEntry(app.Store, app.Logger, draft, app.Cfg.User)
			if err != nil {
				var vErr *model.ValidationError
				if errors.As(err, &vErr) {
					fmt.Printf("✗ %s\n", vErr.Error())
					return nil
				}
				return err
			}

			fmt.Printf("\n✓ Entry created!\n\n")
			fmt.Printf("ID:    %s\n", entry.ID)
			fmt.Printf("Name:  %s\n", entry.Name)
			fmt.Printf("Dates: %s → %s\n", entry.Start, entry.End)
			fmt.Printf("Type:  %s\n\n", entry.Type)

			return nil
		},
	}

	cmd.Flags().String("type", string(model.TypeVacation), "Entry type (vacation, sick, holiday, training, other)")
	cmd.Flags().String("notes", "", "Handoff notes")

	return cmd
}
