package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/logging"
)

// ErrUnknownCommand is returned for text commands the controller does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrNoWindow is returned by commands that need an attached window.
var ErrNoWindow = errors.New("no window attached")

func (c *Controller) newCommandTree() *cobra.Command {
	root := &cobra.Command{
		Use:           "dumbhint",
		Short:         "Hint controller commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Recreate every window controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Reset()
			fmt.Fprintf(cmd.OutOrStdout(), "reset %d window(s)\n", len(c.windows))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "hint <mode>",
		Short: "Start hinting in the active window",
		Long: fmt.Sprintf("Start hinting in the window that last received a key.\n\nModes: %s",
			strings.Join(modeNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := entity.ParseHintMode(args[0])
			if err != nil {
				return err
			}
			wc, ok := c.ActiveWindow()
			if !ok {
				return ErrNoWindow
			}
			if !wc.EnterHintMode(c.ctx, mode) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no targets\n", mode)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", port.ElementName(wc.Window()), wc.Describe())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Leave hint mode in every window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, wc := range c.windows {
				wc.Cancel(c.ctx)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "windows",
		Short: "List attached windows and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, wc := range c.windows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", port.ElementName(wc.Window()), wc.Describe())
			}
			return nil
		},
	})

	return root
}

// Execute runs a text command and returns its output. Errors are also
// reported through the presenter.
func (c *Controller) Execute(argv []string) (out string, err error) {
	defer c.recoverPanic("run command", func() {
		out = ""
		err = fmt.Errorf("command %q panicked", strings.Join(argv, " "))
		c.presenter.ShowError(err.Error())
	})

	if len(argv) == 0 {
		err = fmt.Errorf("%w: empty command", ErrUnknownCommand)
		c.presenter.ShowError(err.Error())
		return "", err
	}
	cmd, _, findErr := c.commands.Find(argv)
	if findErr != nil || cmd == c.commands {
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, argv[0])
		c.presenter.ShowError(err.Error())
		return "", err
	}
	resetFlags(c.commands)
	resetFlags(cmd)

	var buf bytes.Buffer
	c.commands.SetOut(&buf)
	c.commands.SetErr(&buf)
	c.commands.SetArgs(argv)
	if err = c.commands.Execute(); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Strs("argv", argv).Msg("command failed")
		c.presenter.ShowError(fmt.Sprintf("%s: %v", argv[0], err))
		return buf.String(), err
	}
	logging.FromContext(c.ctx).Debug().Strs("argv", argv).Msg("command executed")
	return buf.String(), nil
}

// RunCommand runs a text command, discarding its output.
func (c *Controller) RunCommand(argv []string) error {
	_, err := c.Execute(argv)
	return err
}

// resetFlags restores the flags of cmd to their defaults. pflag keeps
// parsed values between runs of the shared tree.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func modeNames() []string {
	modes := entity.AllHintModes()
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.String())
	}
	return names
}
