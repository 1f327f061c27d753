package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv is a temporary working area with its own config and database.
type testEnv struct {
	dir    string
	config string
	db     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir:    dir,
		config: filepath.Join(dir, "namethingy.json"),
		db:     filepath.Join(dir, "corpora.db"),
	}
}

// writeWords writes a word file and returns its path.
func (e *testEnv) writeWords(t *testing.T, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

// run executes the CLI with args and returns its stdout.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), &stdout, &stderr)
	full := append([]string{"namethingy", "--config", e.config, "--database", e.db}, args...)
	err := a.command().Run(context.Background(), full)
	return stdout.String(), err
}

var fantasyNames = []string{
	"aldric", "beren", "caelum", "daeron", "elric", "faramir", "galen",
	"halric", "isolde", "jorah", "kaelen", "lirien", "maelis", "neris",
}
