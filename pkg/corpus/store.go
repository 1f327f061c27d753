package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrUnknownCorpus is returned when a named corpus does not exist.
var ErrUnknownCorpus = errors.New("corpus: unknown corpus")

// Info describes a stored corpus.
type Info struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Distinct int    `json:"distinct_words"` // unique words
	Total    int    `json:"total_words"`    // sum of word frequencies
}

// SetupSchema creates the corpus tables. It is idempotent and safe to call on
// an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const (
		schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpus_corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE
);
`
		schemaWords = `
CREATE TABLE IF NOT EXISTS corpus_words (
    corpus_id INTEGER NOT NULL,
    word TEXT NOT NULL,
    frequency INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (corpus_id, word)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create corpora schema: %w", err)
	}
	if _, err = tx.Exec(schemaWords); err != nil {
		return fmt.Errorf("could not create words schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store keeps named word lists in a SQLite database.
type Store struct {
	db                    *sql.DB
	stmtGetCorpusID       *sql.Stmt
	stmtListCorpora       *sql.Stmt
	stmtGetOrInsertCorpus *sql.Stmt
	stmtGetWords          *sql.Stmt
	logger                *slog.Logger
}

// NewStore prepares the statements the store needs. SetupSchema must have
// been called on db first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtGetCorpusID, err := db.Prepare(`SELECT corpus_id FROM corpus_corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtListCorpora, err := db.Prepare(`
SELECT c.corpus_id, c.corpus_name, COUNT(w.word), COALESCE(SUM(w.frequency), 0)
FROM corpus_corpora c LEFT JOIN corpus_words w ON w.corpus_id = c.corpus_id
GROUP BY c.corpus_id ORDER BY c.corpus_name;`)
	if err != nil {
		_ = stmtGetCorpusID.Close()
		return nil, err
	}

	stmtGetOrInsertCorpus, err := db.Prepare(`INSERT INTO corpus_corpora (corpus_name) VALUES (?) ON CONFLICT(corpus_name) DO UPDATE SET corpus_name=excluded.corpus_name RETURNING corpus_id;`)
	if err != nil {
		_ = stmtGetCorpusID.Close()
		_ = stmtListCorpora.Close()
		return nil, err
	}

	stmtGetWords, err := db.Prepare(`SELECT word, frequency FROM corpus_words WHERE corpus_id = ? ORDER BY rowid;`)
	if err != nil {
		_ = stmtGetCorpusID.Close()
		_ = stmtListCorpora.Close()
		_ = stmtGetOrInsertCorpus.Close()
		return nil, err
	}

	return &Store{
		db:                    db,
		stmtGetCorpusID:       stmtGetCorpusID,
		stmtListCorpora:       stmtListCorpora,
		stmtGetOrInsertCorpus: stmtGetOrInsertCorpus,
		stmtGetWords:          stmtGetWords,
		logger:                discardLogger,
	}, nil
}

// Close releases the prepared statements. It does not close the database.
func (s *Store) Close() {
	_ = s.stmtGetCorpusID.Close()
	_ = s.stmtListCorpora.Close()
	_ = s.stmtGetOrInsertCorpus.Close()
	_ = s.stmtGetWords.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Corpora lists every stored corpus, ordered by name.
func (s *Store) Corpora(ctx context.Context) ([]Info, error) {
	rows, err := s.stmtListCorpora.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	infos := make([]Info, 0)
	for rows.Next() {
		var info Info
		if err = rows.Scan(&info.Id, &info.Name, &info.Distinct, &info.Total); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *Store) corpusID(ctx context.Context, name string) (int, error) {
	var id int
	err := s.stmtGetCorpusID.QueryRowContext(ctx, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCorpus, name)
	}
	if err != nil {
		return 0, fmt.Errorf("could not look up corpus %q: %w", name, err)
	}
	return id, nil
}

// Remove deletes a corpus and all of its words.
func (s *Store) Remove(ctx context.Context, name string) error {
	id, err := s.corpusID(ctx, name)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_words WHERE corpus_id = ?", id); err != nil {
		return fmt.Errorf("failed to remove words for corpus %q: %w", name, err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_corpora WHERE corpus_id = ?", id); err != nil {
		return fmt.Errorf("failed to remove corpus %q: %w", name, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit removal of corpus %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "Corpus removed",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", id),
	)
	return nil
}

// Words returns a Reader over a stored corpus. Each word is returned as many
// times as it was imported. The returned reader must be closed.
func (s *Store) Words(ctx context.Context, name string) (*RowsReader, error) {
	id, err := s.corpusID(ctx, name)
	if err != nil {
		return nil, err
	}
	rows, err := s.stmtGetWords.QueryContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not query words for corpus %q: %w", name, err)
	}
	return &RowsReader{rows: rows}, nil
}

// RowsReader reads words from a stored corpus.
type RowsReader struct {
	rows      *sql.Rows
	word      string
	remaining int
	done      bool
}

// Next returns the next word, repeating each by its stored frequency.
func (r *RowsReader) Next() (string, error) {
	for r.remaining == 0 {
		if r.done {
			return "", io.EOF
		}
		if !r.rows.Next() {
			r.done = true
			if err := r.rows.Err(); err != nil {
				return "", err
			}
			_ = r.rows.Close()
			return "", io.EOF
		}
		if err := r.rows.Scan(&r.word, &r.remaining); err != nil {
			return "", fmt.Errorf("failed to scan word row: %w", err)
		}
	}
	r.remaining--
	return r.word, nil
}

// Close releases the underlying rows. It is safe to call more than once.
func (r *RowsReader) Close() error {
	r.done = true
	return r.rows.Close()
}
