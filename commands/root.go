// Package commands wires the command line: opening the window, printing a
// layout pass and replaying pointer samples against a layout.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/OpticalFlyer/anchorgui/config"
	"github.com/OpticalFlyer/anchorgui/logging"
)

const EnvConfig = "ANCHORGUI_CONFIG"

// Session is what a command needs to work on a layout.
type Session struct {
	// Path is empty when the built-in layout is used.
	Path   string
	Doc    *config.Document
	Logger *slog.Logger
}

// WindowRunner opens the desktop window. It returns when the window closes.
type WindowRunner func(ctx context.Context, s Session) error

// Root builds the anchorgui command tree.
func Root(version string, runWindow WindowRunner) *cli.Command {
	run := runCommand(runWindow)
	return &cli.Command{
		Name:    "anchorgui",
		Usage:   "anchored layouts and pointer hit testing for game overlays",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "layout file; the built-in menu is used when empty",
				Sources: cli.EnvVars(EnvConfig),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Sources: cli.EnvVars(logging.EnvLogFormat),
			},
		},
		Commands: []*cli.Command{
			run,
			positionsCommand(),
			probeCommand(),
		},
		Action: run.Action,
	}
}

func runCommand(runWindow WindowRunner) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "open the layout in a window",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, closeLog, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			s.Logger.Info("opening window",
				slog.String("config", s.Path),
				slog.Int("width", int(s.Doc.Window.Width)),
				slog.Int("height", int(s.Doc.Window.Height)))
			return runWindow(ctx, s)
		},
	}
}

// openSession loads the layout named by --config and builds its logger.
func openSession(cmd *cli.Command) (Session, func() error, error) {
	path := cmd.String("config")
	doc, err := config.LoadOrDefault(path)
	if err != nil {
		return Session{}, nil, err
	}
	doc.WithEnv()

	var flags logging.Config
	if v := cmd.String("log-level"); v != "" {
		flags.Level = &v
	}
	if v := cmd.String("log-format"); v != "" {
		flags.Format = &v
	}

	logger, closeLog, err := logging.NewWithOverrides(doc.Logging, flags, errWriter(cmd))
	if err != nil {
		return Session{}, nil, fmt.Errorf("init logging: %w", err)
	}
	return Session{Path: path, Doc: doc, Logger: logger}, closeLog, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
