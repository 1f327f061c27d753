package main

import (
	"context"

	"github.com/CTAG07/namethingy/pkg/corpus"
	"github.com/CTAG07/namethingy/pkg/markov"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

// statsReport is the JSON document printed by the stats command.
type statsReport struct {
	Corpus corpus.Summary    `json:"corpus"`
	Model  markov.ModelStats `json:"model"`
}

func (a *app) statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Train on a corpus and print model statistics as JSON",
		Flags: corpusFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := a.config.applyFlags(cmd); err != nil {
				return err
			}
			model, summary, err := a.trainModel(ctx, cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(statsReport{Corpus: summary, Model: model.Stats()})
		},
	}
}
