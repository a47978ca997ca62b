package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/posixfs/internal/configuration"
	"github.com/desertwitch/posixfs/internal/posix"
	"github.com/desertwitch/posixfs/internal/random"
	"github.com/desertwitch/posixfs/internal/schema"
)

type globalFlags struct {
	configFile string
	output     string
	debug      bool
}

// App holds the handlers shared by all commands.
type App struct {
	stdin  io.Reader
	stdout io.Writer

	flags *globalFlags
	cfg   *configuration.Config

	fsHandler     *posix.Handler
	randomHandler *random.Handler
}

// NewApp returns a pointer to a new [App]. The handlers are established by
// [App.setup] once the flags are parsed.
func NewApp(stdin io.Reader, stdout io.Writer) *App {
	return &App{
		stdin:  stdin,
		stdout: stdout,
		flags:  &globalFlags{},
	}
}

func (app *App) setup() error {
	configHandler := configuration.NewFileHandler(app.flags.configFile)

	var files []string
	if app.flags.configFile != "" {
		files = append(files, app.flags.configFile)
	}

	cfg, err := configHandler.Load(files...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if app.flags.output != "" {
		output, err := configuration.ParseOutput(app.flags.output)
		if err != nil {
			return fmt.Errorf("%w: --output: %w", ErrInvalidConfig, err)
		}
		cfg.Output = output
	}

	if app.flags.debug {
		cfg.LogLevel = slog.LevelDebug
	}

	setupLogging(cfg.LogLevel)

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	app.cfg = cfg
	app.fsHandler = posix.NewHandler(osProvider, unixProvider)
	app.randomHandler = random.NewHandler(osProvider, unixProvider, cfg.Paths)

	slog.Debug("Configuration established:",
		"device", cfg.Paths.Device,
		"crypt", cfg.CryptAlgorithm.String(),
		"output", cfg.Output,
	)

	return nil
}
