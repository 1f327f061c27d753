package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Prune removes every word of the named corpus whose frequency is below
// minFreq and returns how many distinct words were removed. This is useful
// for dropping typos and one-off entries from a large scraped word list.
func (s *Store) Prune(ctx context.Context, name string, minFreq int) (int64, error) {
	id, err := s.corpusID(ctx, name)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM corpus_words WHERE corpus_id = ? AND frequency < ?;`, id, minFreq)
	if err != nil {
		return 0, fmt.Errorf("could not prune corpus %q: %w", name, err)
	}
	removed, _ := res.RowsAffected()

	s.logger.InfoContext(ctx, "Corpus pruned",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", id),
		slog.Int("min_frequency", minFreq),
		slog.Int64("words_removed", removed),
	)
	return removed, nil
}

// PruneEmpty removes every corpus left without words, for instance after a
// Prune, and returns how many were removed.
func (s *Store) PruneEmpty(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction for pruning: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	res, err := tx.ExecContext(ctx, `
DELETE FROM corpus_corpora
WHERE NOT EXISTS (SELECT 1 FROM corpus_words w WHERE w.corpus_id = corpus_corpora.corpus_id);`)
	if err != nil {
		return 0, fmt.Errorf("failed to prune empty corpora: %w", err)
	}
	removed, _ := res.RowsAffected()
	if err = tx.Commit(); err != nil {
		return 0, err
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "Empty corpora pruned", slog.Int64("corpora_removed", removed))
	}
	return removed, nil
}
