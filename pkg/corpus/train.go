package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Trainer is anything that learns from single words. *markov.Model
// satisfies it.
type Trainer interface {
	TrainWord(word string) bool
}

// Summary reports what a Train call consumed.
type Summary struct {
	Words   int `json:"words"`   // words read from the source
	Used    int `json:"used"`    // words the trainer accepted
	Skipped int `json:"skipped"` // words too short to contribute
}

// ctxCheckInterval is how many words are read between context checks.
const ctxCheckInterval = 1024

// Train reads every word from r and passes it to t. It stops early with the
// context's error if ctx is cancelled. logger may be nil.
func Train(ctx context.Context, t Trainer, r Reader, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = discardLogger
	}

	var s Summary
	for {
		if s.Words%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return s, err
			}
		}
		word, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return s, fmt.Errorf("corpus read error after %d words: %w", s.Words, err)
		}
		s.Words++
		if t.TrainWord(word) {
			s.Used++
		} else {
			s.Skipped++
		}
	}

	logger.InfoContext(ctx, "Training completed",
		slog.Int("words_read", s.Words),
		slog.Int("words_used", s.Used),
		slog.Int("words_skipped", s.Skipped),
	)
	return s, nil
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
