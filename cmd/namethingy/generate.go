package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/CTAG07/namethingy/pkg/markov"
	"github.com/CTAG07/namethingy/pkg/templating"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"
)

func (a *app) generateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Train on a corpus and print generated names (the default command)",
		Flags:   generateFlags(),
		Action:  a.generate,
	}
}

func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	if err := a.config.applyFlags(cmd); err != nil {
		return err
	}
	renderer, err := templating.NewRenderer(a.config.Output)
	if err != nil {
		return err
	}
	model, _, err := a.trainModel(ctx, cmd)
	if err != nil {
		return err
	}

	var source markov.Rand
	if a.config.Seed != 0 {
		source = markov.NewRand(a.config.Seed)
	}

	output := cmd.String("output")
	if output == "" {
		_, err = writeNames(ctx, a.stdout, model, renderer, a.config, source)
		return err
	}

	var buf bytes.Buffer
	n, err := writeNames(ctx, &buf, model, renderer, a.config, source)
	if err != nil {
		return err
	}
	if err = atomic.WriteFile(output, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	a.logger.Info("Wrote names", "path", output, "count", n)
	return nil
}

// nextName generates one name, retrying while results exceed the configured
// maximum length.
func nextName(model *markov.Model, config *Config, opts []markov.GenerateOption) (string, error) {
	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		name, err := model.Generate(opts...)
		if errors.Is(err, markov.ErrMaxLength) {
			continue
		}
		return name, err
	}
	return "", fmt.Errorf("no name of at most %d characters after %d attempts: %w",
		config.MaxLength, config.MaxAttempts, markov.ErrMaxLength)
}

// writeNames renders config.Limit names to w and returns how many it wrote.
// A nil source uses the model's own.
func writeNames(ctx context.Context, w io.Writer, model *markov.Model, renderer *templating.Renderer, config *Config, source markov.Rand) (int, error) {
	opts := []markov.GenerateOption{markov.WithMaxLength(config.MaxLength)}
	if source != nil {
		opts = append(opts, markov.WithSource(source))
	}
	for i := 0; i < config.Limit; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		name, err := nextName(model, config, opts)
		if err != nil {
			return i, err
		}
		if err = renderer.Execute(w, templating.Data{Index: i, Name: name}); err != nil {
			return i, err
		}
	}
	return config.Limit, nil
}
