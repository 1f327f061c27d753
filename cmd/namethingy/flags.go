package main

import "github.com/urfave/cli/v3"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the config file (.json, .yaml or .yml)",
			Value: "./namethingy.json",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format (text, json)",
		},
		&cli.StringFlag{
			Name:  "database",
			Usage: "SQLite data source for stored corpora",
		},
	}
}

// corpusFlags select the words a model is trained on.
func corpusFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringSliceFlag{
			Name:      "corpus",
			Aliases:   []string{"c"},
			Usage:     "word file to train on, one word per line (- for stdin)",
			TakesFile: true,
		},
		&cli.StringSliceFlag{
			Name:  "from",
			Usage: "stored corpus to train on",
		},
		&cli.IntFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Usage:   "number of characters of context",
		},
	}, readerFlags()...)
}

// readerFlags control how words are read from a file.
func readerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "trim",
			Usage: "trim surrounding whitespace from every word (--trim=false trains on lines exactly as written)",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "split",
			Usage: "extract every word from running text instead of reading one word per line",
		},
		&cli.IntFlag{
			Name:  "min-length",
			Usage: "with --split, skip words shorter than this many characters",
			Value: 1,
		},
	}
}

func generateFlags() []cli.Flag {
	return append(corpusFlags(),
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"l"},
			Usage:   "number of names to generate",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed, 0 picks a random one",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "discard names longer than this many characters, 0 for no limit",
		},
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "generation attempts allowed per name when --max-length discards results",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "text/template applied to every name",
		},
		&cli.StringFlag{
			Name:      "output",
			Usage:     "write names to this file instead of stdout",
			TakesFile: true,
		},
	)
}

// localFlags keeps flags from being inherited by subcommands, which define
// their own copies.
func localFlags(flags []cli.Flag) []cli.Flag {
	for _, f := range flags {
		switch f := f.(type) {
		case *cli.StringFlag:
			f.Local = true
		case *cli.StringSliceFlag:
			f.Local = true
		case *cli.IntFlag:
			f.Local = true
		case *cli.Uint64Flag:
			f.Local = true
		case *cli.BoolFlag:
			f.Local = true
		}
	}
	return flags
}
