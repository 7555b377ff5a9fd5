// Package cli wires the hint engine into the dumbhint commands.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbhint/internal/cli/styles"
	"github.com/bnema/dumbhint/internal/domain/build"
	"github.com/bnema/dumbhint/internal/infrastructure/config"
	"github.com/bnema/dumbhint/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	// LoadErr is set when the config file could not be loaded; Config then
	// holds the defaults.
	LoadErr error

	ctx context.Context
}

// NewApp loads configFile (or the default location) and sets up logging.
func NewApp(configFile string, logOutput io.Writer) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, err
	}
	loadErr := mgr.Load()
	cfg := mgr.Get()

	if logOutput == nil {
		logOutput = os.Stderr
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     logOutput,
	})
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		LoadErr: loadErr,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// ShutdownTimeout bounds flushing traces and closing the bus on exit.
const ShutdownTimeout = 3 * time.Second
