package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/internal/config"
	"github.com/awayboard/awayboard/pkg/clients/calendarclient"
	"github.com/awayboard/awayboard/pkg/core/model"
	"github.com/awayboard/awayboard/pkg/core/services"
)

// ImportCalendarCmd creates the importCalendar command. The Google
// client is built here rather than at startup so the OAuth flow only
// runs when an import is actually requested.
func ImportCalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importCalendar <from> <to>",
		Short: "Import out-of-office events from Google Calendar as entries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := model.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("from date: %w", err)
			}
			to, err := model.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("to date: %w", err)
			}

			oauthCfg, err := config.LoadOAuthClient()
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			client, err := calendarclient.NewClient(app.Ctx, oauthCfg, app.Cfg.CalendarID)
			if err != nil {
				return fmt.Errorf("failed to create calendar client: %w", err)
			}

			result, err := services.ImportCalendar(app.Ctx, app.Store, client, app.Logger, from, to, app.Cfg.User)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Calendar import finished!\n\n")
			fmt.Printf("Imported %d entries", len(result.Imported))
			if result.Skipped > 0 {
				fmt.Printf(" (%d events skipped)", result.Skipped)
			}
			fmt.Println()
			for _, entry := range result.Imported {
				fmt.Printf("  - %s  %s → %s\n", entry.Name, entry.Start, entry.End)
			}
			fmt.Println()

			return nil
		},
	}
}
