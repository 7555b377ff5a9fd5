// Package cmd provides Cobra CLI commands for dumbhint.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbhint/internal/cli"
	"github.com/bnema/dumbhint/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "dumbhint",
		Short: "Keyboard hints for every clickable thing",
		Long: `dumbhint - keyboard hint navigation for element trees.

Press a hint shortcut and every actionable element gets a short label.
Type the label to activate, focus, edit, copy or open the menu of that
element without touching the mouse.

Use 'dumbhint demo' to try it on a sample window, 'dumbhint serve' to run
the engine headless behind the session bus, and 'dumbhint send' to drive
a running instance.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var logOutput io.Writer = os.Stderr
			if cmd.Name() == "demo" {
				out, err := demoLogOutput()
				if err != nil {
					return err
				}
				logOutput = out
			}

			var err error
			app, err = cli.NewApp(configPath, logOutput)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dumbhint/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
