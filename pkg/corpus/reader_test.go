package corpus

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReaderSkipsEmptyLines(t *testing.T) {
	r := NewLineReader(strings.NewReader("alpha\n\nbeta\r\n\n\ngamma"))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, drain(t, r))

	// Exhausted readers keep returning io.EOF.
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderTrimSpace(t *testing.T) {
	input := "  alpha \n \t \nbeta"

	plain := drain(t, NewLineReader(strings.NewReader(input)))
	assert.Equal(t, []string{"  alpha ", " \t ", "beta"}, plain)

	trimmed := drain(t, NewLineReader(strings.NewReader(input), WithTrimSpace(true)))
	assert.Equal(t, []string{"alpha", "beta"}, trimmed)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLineReaderPropagatesErrors(t *testing.T) {
	_, err := NewLineReader(failingReader{}).Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("ada\nbo\n\ncy\n"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.Equal(t, []string{"ada", "bo", "cy"}, drain(t, f))

	t.Run("Missing file", func(t *testing.T) {
		_, err := OpenFile(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := OpenFile(dir)
		assert.ErrorIs(t, err, ErrInvalidPath)
	})
}

func TestOpenTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saga.txt")
	require.NoError(t, os.WriteFile(path, []byte("Sigurd slew Fafnir.\nGudrun wept.\n"), 0o644))

	f, err := OpenTextFile(path, WithMinLength(5))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.Equal(t, []string{"Sigurd", "Fafnir", "Gudrun"}, drain(t, f))

	_, err = OpenTextFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestSliceReader(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, drain(t, NewSliceReader("a", "", "b")))
	assert.Empty(t, drain(t, NewSliceReader()))
}
