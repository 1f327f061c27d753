package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CTAG07/namethingy/pkg/corpus"
	"github.com/CTAG07/namethingy/pkg/markov"
	"github.com/urfave/cli/v3"
)

var errNoCorpus = errors.New("no corpus given: use --corpus FILE or --from NAME")

// openStore opens the corpus database and prepares its statements. The
// returned func closes both.
func (a *app) openStore() (*corpus.Store, func(), error) {
	db, err := openDB(a.config.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create corpus store: %w", err)
	}
	store.SetLogger(a.logger)
	return store, func() {
		store.Close()
		closeDB(a, db)
	}, nil
}

func closeDB(a *app, db *sql.DB) {
	if err := db.Close(); err != nil {
		a.logger.Error("Failed to close database", "error", err)
	}
}

// openFile opens a word file, treating "-" as stdin. The reader flags on cmd
// choose between one word per line and words split from running text.
func (a *app) openFile(cmd *cli.Command, path string) (corpus.Reader, func() error, error) {
	noop := func() error { return nil }
	if cmd.Bool("split") {
		opts := []corpus.SplitOption{corpus.WithMinLength(int(cmd.Int("min-length")))}
		if path == "-" {
			return corpus.NewSplitReader(a.stdin, opts...), noop, nil
		}
		f, err := corpus.OpenTextFile(path, opts...)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}

	trim := corpus.WithTrimSpace(cmd.Bool("trim"))
	if path == "-" {
		return corpus.NewLineReader(a.stdin, trim), noop, nil
	}
	f, err := corpus.OpenFile(path, trim)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// trainModel builds a model of the configured order from every --corpus file
// and --from stored corpus named on cmd.
func (a *app) trainModel(ctx context.Context, cmd *cli.Command) (*markov.Model, corpus.Summary, error) {
	var total corpus.Summary
	files := cmd.StringSlice("corpus")
	names := cmd.StringSlice("from")
	if len(files) == 0 && len(names) == 0 {
		return nil, total, errNoCorpus
	}

	model, err := markov.NewModel(a.config.Order)
	if err != nil {
		return nil, total, err
	}
	add := func(s corpus.Summary) {
		total.Words += s.Words
		total.Used += s.Used
		total.Skipped += s.Skipped
	}

	for _, path := range files {
		r, closeFn, err := a.openFile(cmd, path)
		if err != nil {
			return nil, total, err
		}
		summary, err := corpus.Train(ctx, model, r, a.logger.With("corpus", path))
		_ = closeFn()
		if err != nil {
			return nil, total, fmt.Errorf("failed to train on %s: %w", path, err)
		}
		add(summary)
	}

	if len(names) > 0 {
		store, closeStore, err := a.openStore()
		if err != nil {
			return nil, total, err
		}
		defer closeStore()
		for _, name := range names {
			rows, err := store.Words(ctx, name)
			if err != nil {
				return nil, total, err
			}
			summary, err := corpus.Train(ctx, model, rows, a.logger.With("corpus", name))
			_ = rows.Close()
			if err != nil {
				return nil, total, fmt.Errorf("failed to train on stored corpus %s: %w", name, err)
			}
			add(summary)
		}
	}
	return model, total, nil
}
