package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidPath is returned by OpenFile when the path is not an existing
// regular file.
var ErrInvalidPath = errors.New("corpus: invalid file path")

// Reader is a source of training words. Next returns io.EOF once the source
// is exhausted; any other error is a read failure.
type Reader interface {
	Next() (string, error)
}

// LineReader reads one word per line. Empty lines are skipped.
type LineReader struct {
	scanner   *bufio.Scanner
	trimSpace bool
}

// LineOption configures a LineReader.
type LineOption func(*LineReader)

// WithTrimSpace strips leading and trailing white space from every line
// before it is checked for emptiness. Default: false, lines are used as is.
func WithTrimSpace(trim bool) LineOption {
	return func(l *LineReader) { l.trimSpace = trim }
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader, opts ...LineOption) *LineReader {
	l := &LineReader{scanner: bufio.NewScanner(r)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next returns the next non-empty line.
func (l *LineReader) Next() (string, error) {
	for l.scanner.Scan() {
		line := l.scanner.Text()
		if l.trimSpace {
			line = strings.TrimSpace(line)
		}
		if line != "" {
			return line, nil
		}
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// FileReader reads words from an open file. It must be closed.
type FileReader struct {
	Reader
	file *os.File
}

func openRegular(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidPath, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus %s: %w", path, err)
	}
	return f, nil
}

// OpenFile opens path for reading one word per line.
func OpenFile(path string, opts ...LineOption) (*FileReader, error) {
	f, err := openRegular(path)
	if err != nil {
		return nil, err
	}
	return &FileReader{Reader: NewLineReader(f, opts...), file: f}, nil
}

// OpenTextFile opens path for extracting words from running text with a
// SplitReader.
func OpenTextFile(path string, opts ...SplitOption) (*FileReader, error) {
	f, err := openRegular(path)
	if err != nil {
		return nil, err
	}
	return &FileReader{Reader: NewSplitReader(f, opts...), file: f}, nil
}

// Close closes the underlying file.
func (f *FileReader) Close() error {
	return f.file.Close()
}

// SliceReader serves words from memory.
type SliceReader struct {
	words []string
	pos   int
}

// NewSliceReader returns a Reader over words, in order.
func NewSliceReader(words ...string) *SliceReader {
	return &SliceReader{words: words}
}

// Next returns the next word. Empty strings are passed through.
func (s *SliceReader) Next() (string, error) {
	if s.pos >= len(s.words) {
		return "", io.EOF
	}
	w := s.words[s.pos]
	s.pos++
	return w, nil
}
