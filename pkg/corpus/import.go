package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// wordCount is a pending frequency increment for one word.
type wordCount struct {
	word  string
	count int
}

// Import reads every word from r into the named corpus, creating it if
// needed. Words already present have their frequency increased. The whole
// import is one transaction. It returns the number of words read.
func (s *Store) Import(ctx context.Context, name string, r Reader) (int, error) {
	// wordBatchSize is how many distinct words are buffered before a write.
	const wordBatchSize = 1000

	if name == "" {
		return 0, errors.New("corpus name must not be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	var corpusID int
	if err = tx.StmtContext(ctx, s.stmtGetOrInsertCorpus).QueryRowContext(ctx, name).Scan(&corpusID); err != nil {
		return 0, fmt.Errorf("failed to get or insert corpus %q: %w", name, err)
	}

	stmtUpsertWord, err := tx.PrepareContext(ctx, `INSERT INTO corpus_words (corpus_id, word, frequency) VALUES (?, ?, ?) ON CONFLICT(corpus_id, word) DO UPDATE SET frequency = frequency + excluded.frequency;`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word upsert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtUpsertWord)

	batch := make([]wordCount, 0, wordBatchSize)
	index := make(map[string]int, wordBatchSize)

	flush := func() error {
		for _, wc := range batch {
			if _, err := stmtUpsertWord.ExecContext(ctx, corpusID, wc.word, wc.count); err != nil {
				return fmt.Errorf("failed to insert word %q: %w", wc.word, err)
			}
		}
		batch = batch[:0]
		clear(index)
		return nil
	}

	var read int
	for {
		word, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return read, fmt.Errorf("corpus read error: %w", err)
		}
		if word == "" {
			continue
		}
		read++

		if i, ok := index[word]; ok {
			batch[i].count++
			continue
		}
		index[word] = len(batch)
		batch = append(batch, wordCount{word: word, count: 1})

		if len(batch) >= wordBatchSize {
			if err := flush(); err != nil {
				return read, err
			}
		}
	}
	if err := flush(); err != nil {
		return read, err
	}

	s.logger.InfoContext(ctx, "Corpus imported",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", corpusID),
		slog.Int("words_read", read),
	)
	return read, tx.Commit()
}
