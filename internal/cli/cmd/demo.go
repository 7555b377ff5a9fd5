package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/dumbhint/internal/cli"
	"github.com/bnema/dumbhint/internal/cli/model"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/infrastructure/clipboard"
	"github.com/bnema/dumbhint/internal/infrastructure/tracing"
)

var errNotTerminal = errors.New("demo needs an interactive terminal")

var (
	demoLogFile string
	demoBus     bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Try hinting on a sample window in the terminal",
	Long: `Render a sample window (or the fixture given by --tree) and run the
hint engine on it. Press a hint shortcut, type the label, and watch the
action happen. ':' opens the command prompt.

Examples:
  dumbhint demo
  dumbhint demo --tree my-window.toml --log-file /tmp/dumbhint.log`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&treePath, "tree", "", "fixture TOML file describing the window")
	demoCmd.Flags().StringVar(&demoLogFile, "log-file", "", "write logs to this file (logs are discarded otherwise)")
	demoCmd.Flags().BoolVar(&demoBus, "bus", false, "also accept commands on the session bus")
}

func demoLogOutput() (io.Writer, error) {
	if demoLogFile == "" {
		return io.Discard, nil
	}
	f, err := os.OpenFile(demoLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	ctx := app.Ctx()

	shutdownTracing, _, err := tracing.Setup(ctx)
	if err != nil {
		app.Logger().Warn().Err(err).Msg("tracing disabled")
	}
	defer flushTracing(shutdownTracing)

	tree, err := loadTree()
	if err != nil {
		return err
	}

	dispatcher := &model.Dispatcher{}
	pres := model.NewPresenter()
	host, err := cli.NewHost(ctx, cli.HostOptions{
		Config:    app.Config,
		Tree:      tree,
		Presenter: pres,
		Clipboard: clipboard.New(ctx),
		Post:      dispatcher.Post,
	})
	if err != nil {
		return err
	}
	if demoBus {
		if err := host.ServeBus(app.Config.DBus); err != nil {
			app.Logger().Warn().Err(err).Msg("session bus unavailable")
		}
	}
	if app.Manager.ConfigFileUsed() != "" {
		if err := host.Watch(app.Manager); err != nil {
			app.Logger().Warn().Err(err).Msg("config watch disabled")
		}
	}

	m := model.NewDemoModel(app.Theme, host, pres, hintKeysHelp(host.Ctrl.Settings()))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	dispatcher.Attach(p)

	_, err = p.Run()
	host.Close()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// hintKeysHelp describes the bound hint shortcuts, e.g. "alt+f/e/g".
func hintKeysHelp(settings entity.Settings) string {
	var first string
	var rest []string
	for _, mode := range entity.AllHintModes() {
		k, ok := settings.Binding(mode)
		if !ok {
			continue
		}
		s := k.String()
		if first == "" {
			first = s
			continue
		}
		prefix := first[:strings.LastIndex(first, "+")+1]
		if prefix != "" && strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
		}
		rest = append(rest, s)
	}
	if first == "" {
		return "(unbound)"
	}
	return strings.Join(append([]string{first}, rest...), "/")
}

func flushTracing(shutdown tracing.ShutdownFunc) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cli.ShutdownTimeout)
	defer cancel()
	_ = shutdown(ctx)
}
