package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/services"
)

// AddTaskCmd creates the addTask command
func AddTaskCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addTask <entry_id> <coverage_id> <text>",
		Short: "Add a checklist task to a coverage item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.AddBoardTask(app.Store, app.Logger, args[0], args[1], args[2]) {
				fmt.Println("✓ Task added")
			} else {
				fmt.Println("Entry or coverage item not found")
			}
			return nil
		},
	}
}

// ToggleTaskCmd creates the toggleTask command
func ToggleTaskCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleTask <entry_id> <coverage_id> <task_id>",
		Short: "Toggle a checklist task's done flag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.ToggleBoardTask(app.Store, app.Logger, args[0], args[1], args[2]) {
				fmt.Println("✓ Task toggled")
			} else {
				fmt.Println("Entry, coverage item or task not found")
			}
			return nil
		},
	}
}

// RemoveTaskCmd creates the removeTask command
func RemoveTaskCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeTask <entry_id> <coverage_id> <task_id>",
		Short: "Remove a checklist task from a coverage item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.RemoveBoardTask(app.Store, app.Logger, args[0], args[1], args[2]) {
				fmt.Println("✓ Task removed")
			} else {
				fmt.Println("Entry, coverage item or task not found")
			}
			return nil
		},
	}
}
