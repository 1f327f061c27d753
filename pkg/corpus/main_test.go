package corpus

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestStore creates a fresh SQLite database in a temp dir and a Store on
// top of it. Resources are released with t.Cleanup.
func setupTestStore(t *testing.T) (*sql.DB, *Store) {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "corpus.db")
	db, err := sql.Open("sqlite", dbFile+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SetupSchema(db))

	s, err := NewStore(db)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return db, s
}

// recordingTrainer remembers every word it is given and accepts words of at
// least minLen bytes.
type recordingTrainer struct {
	minLen int
	words  []string
}

func (r *recordingTrainer) TrainWord(word string) bool {
	r.words = append(r.words, word)
	return len(word) >= r.minLen
}

// drain reads all words from r.
func drain(t *testing.T, r Reader) []string {
	t.Helper()
	var words []string
	for {
		w, err := r.Next()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return words
		}
		words = append(words, w)
	}
}
