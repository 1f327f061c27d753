package corpus

import (
	"bufio"
	"io"
	"regexp"
)

// DefaultWordPattern matches runs of letters, apostrophes and hyphens, so
// "O'Brien" and "Jean-Luc" stay whole while digits and punctuation split.
const DefaultWordPattern = `[\p{L}\p{M}'’-]+`

// SplitReader extracts words from running text, such as a book or a scraped
// page, using a regular expression. Every match on a line is one word.
type SplitReader struct {
	scanner   *bufio.Scanner
	buffer    []string
	wordRegex *regexp.Regexp
	minLength int
}

// SplitOption configures a SplitReader.
type SplitOption func(*SplitReader)

// WithWordPattern sets the regular expression a word must match.
// Default: DefaultWordPattern
func WithWordPattern(re *regexp.Regexp) SplitOption {
	return func(s *SplitReader) {
		s.wordRegex = re
	}
}

// WithMinLength drops matches shorter than n characters.
// Default: 1
func WithMinLength(n int) SplitOption {
	return func(s *SplitReader) {
		s.minLength = n
	}
}

// NewSplitReader creates a SplitReader over r.
func NewSplitReader(r io.Reader, opts ...SplitOption) *SplitReader {
	s := &SplitReader{
		scanner:   bufio.NewScanner(r),
		wordRegex: regexp.MustCompile(DefaultWordPattern),
		minLength: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next word from the stream, or io.EOF when it is
// exhausted. Any other error is a read error from the underlying reader.
func (s *SplitReader) Next() (string, error) {
	for len(s.buffer) == 0 {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		for _, m := range s.wordRegex.FindAllString(s.scanner.Text(), -1) {
			if len([]rune(m)) >= s.minLength {
				s.buffer = append(s.buffer, m)
			}
		}
	}

	word := s.buffer[0]
	s.buffer = s.buffer[1:]
	return word, nil
}
