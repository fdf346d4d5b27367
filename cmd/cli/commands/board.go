package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/coverage"
	"github.com/awayboard/awayboard/pkg/core/services"
)

// BoardCmd creates the board command showing coverage needing attention
func BoardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the coverage-needed board across all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			policy := coverage.Policy{IncludeElapsed: app.Cfg.Board.IncludeElapsed || all}
			board := services.Board(app.Store, policy, time.Now())

			if len(board) == 0 {
				fmt.Println("\nNo coverage needed right now.")
				return nil
			}

			fmt.Printf("\nCoverage needed (%d items):\n\n", len(board))
			for _, bi := range board {
				fmt.Printf("- %s (away %s → %s)\n", bi.OwnerName, bi.Start, bi.End)
				fmt.Printf("    %s  [entry %s, item %s]\n", bi.Item.Title, bi.EntryID, bi.Item.ID)
				if bi.Item.Link != "" {
					fmt.Printf("    link:  %s\n", bi.Item.Link)
				}
				if bi.Item.Notes != "" {
					fmt.Printf("    notes: %s\n", bi.Item.Notes)
				}
				for _, task := range bi.Item.Tasks {
					box := "[ ]"
					if task.Done {
						box = "[x]"
					}
					fmt.Printf("    %s %s  %s\n", box, task.ID, task.Text)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include coverage from leave that already ended")

	return cmd
}
