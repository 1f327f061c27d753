package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every command: the loaded config, the
// logger built from it and the process streams.
type app struct {
	config *Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		config: DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "namethingy",
		Usage:     "Generate names from a Markov model trained on example words",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     append(globalFlags(), localFlags(generateFlags())...),
		Before:    a.before,
		// main reports every error, including cli.Exit ones.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:    a.generate,
		Commands: []*cli.Command{
			a.generateCmd(),
			a.importCmd(),
			a.corporaCmd(),
			a.removeCmd(),
			a.pruneCmd(),
			a.statsCmd(),
			a.serveCmd(),
		},
	}
}

// before loads the config file and builds the logger. It runs once, before
// any command action.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	config, created, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if err = config.applyFlags(cmd); err != nil {
		return ctx, err
	}
	logger, err := newLogger(a.stderr, config.LogLevel, config.LogFormat)
	if err != nil {
		return ctx, err
	}
	a.config = config
	a.logger = logger
	if created {
		logger.Info("Created default config file", "path", cmd.String("config"))
	}
	return ctx, nil
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
