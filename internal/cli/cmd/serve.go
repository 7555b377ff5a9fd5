package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbhint/internal/cli"
	"github.com/bnema/dumbhint/internal/infrastructure/clipboard"
	"github.com/bnema/dumbhint/internal/infrastructure/tracing"
	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hint engine headless behind the session bus",
	Long: `Run the hint engine on a fixture tree without a screen. Commands
arrive over D-Bus (see 'dumbhint send') and overlays are logged.

Examples:
  dumbhint serve
  dumbhint serve --tree my-window.toml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&treePath, "tree", "", "fixture TOML file describing the window")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := app.Logger()

	shutdownTracing, _, err := tracing.Setup(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer flushTracing(shutdownTracing)

	tree, err := loadTree()
	if err != nil {
		return err
	}

	loop := mainloop.NewLoop()
	host, err := cli.NewHost(ctx, cli.HostOptions{
		Config:    app.Config,
		Tree:      tree,
		Presenter: cli.NewLogPresenter(ctx),
		Clipboard: clipboard.New(ctx),
		Post:      loop.Post,
	})
	if err != nil {
		return err
	}
	if err := host.ServeBus(app.Config.DBus); err != nil {
		host.Close()
		return err
	}
	if app.Manager.ConfigFileUsed() != "" {
		if err := host.Watch(app.Manager); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	log.Info().Int("windows", len(host.Ctrl.Windows())).Msg("dumbhint serving")
	err = loop.Run(ctx)
	// The loop goroutine is this one; finish UI-thread work here.
	host.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("dumbhint stopped")
	return nil
}
