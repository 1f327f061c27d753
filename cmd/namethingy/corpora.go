package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func (a *app) importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Store a word file as a named corpus, adding to it if it exists",
		ArgsUsage: "NAME FILE",
		Flags:     readerFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("usage: namethingy import NAME FILE", 1)
			}
			name, path := cmd.Args().Get(0), cmd.Args().Get(1)

			r, closeFile, err := a.openFile(cmd, path)
			if err != nil {
				return err
			}
			defer func() { _ = closeFile() }()

			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			n, err := store.Import(ctx, name, r)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Imported %d words into %q\n", n, name)
			return nil
		},
	}
}

func (a *app) corporaCmd() *cli.Command {
	return &cli.Command{
		Name:    "corpora",
		Aliases: []string{"ls"},
		Usage:   "List stored corpora",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			infos, err := store.Corpora(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				_, _ = fmt.Fprintln(a.stdout, "No stored corpora")
				return nil
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tDISTINCT\tTOTAL")
			for _, info := range infos {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\n", info.Name, info.Distinct, info.Total)
			}
			return tw.Flush()
		},
	}
}

func (a *app) removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Delete a stored corpus",
		ArgsUsage: "NAME",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("usage: namethingy remove NAME", 1)
			}
			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			name := cmd.Args().First()
			if err = store.Remove(ctx, name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Removed %q\n", name)
			return nil
		},
	}
}

func (a *app) pruneCmd() *cli.Command {
	return &cli.Command{
		Name:      "prune",
		Usage:     "Drop rare words from a stored corpus",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "min-freq",
				Usage: "remove words imported fewer than this many times",
				Value: 2,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("usage: namethingy prune NAME [--min-freq N]", 1)
			}
			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			name := cmd.Args().First()
			removed, err := store.Prune(ctx, name, int(cmd.Int("min-freq")))
			if err != nil {
				return err
			}
			if _, err = store.PruneEmpty(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Removed %d words from %q\n", removed, name)
			return nil
		},
	}
}
