package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbhint/internal/infrastructure/bus"
)

var sendCmd = &cobra.Command{
	Use:   "send <command> [args...]",
	Short: "Run a text command in a running dumbhint",
	Long: `Send a text command to the dumbhint instance serving on the session bus.

Commands:
  reset           recreate every window controller
  hint <mode>     start hinting (activatable, editable, focusable,
                  yankable, menuable, contextable)
  cancel          leave hint mode
  windows         list windows and their state

Examples:
  dumbhint send reset
  dumbhint send hint editable`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx, cancel := context.WithTimeout(app.Ctx(), bus.DefaultTimeout+bus.DefaultTimeout/2)
		defer cancel()

		out, err := bus.Send(ctx, app.Config.DBus.BusName, app.Config.DBus.ObjectPath, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
