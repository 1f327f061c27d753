package markov

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrNoTrainingData is returned by Generate when no trained word was long
	// enough to produce a start state. It wraps ErrEmpty.
	ErrNoTrainingData = errors.New("markov: model has no training data")
	// ErrInconsistentModel reports a present transition table that could not
	// produce a successor. It indicates a bug, not bad input.
	ErrInconsistentModel = errors.New("markov: inconsistent model state")
	// ErrMaxLength is returned when a WithMaxLength bound is exceeded.
	ErrMaxLength = errors.New("markov: generated word exceeded maximum length")
)

// generateOptions holds per-call generation settings.
type generateOptions struct {
	maxLength int
	rand      Rand
}

// GenerateOption configures a single Generate call or an All sequence.
type GenerateOption func(*generateOptions)

// WithMaxLength bounds the number of characters a generated word may have.
// Generation that would exceed n fails with ErrMaxLength. A value of 0 or
// less leaves generation unbounded, which is the default.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// WithSource overrides the model's random source for this call.
func WithSource(r Rand) GenerateOption {
	return func(o *generateOptions) {
		if r != nil {
			o.rand = r
		}
	}
}

func (m *Model) options(opts []GenerateOption) *generateOptions {
	o := &generateOptions{rand: m.rand}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate walks the chain once and returns the resulting word.
//
// A start state is drawn in proportion to how often it began a training
// word, then successors are drawn until End is drawn or the current state
// has no recorded successors. An untrained model fails with
// ErrNoTrainingData.
//
// Every trained state lies on the path of some training word, so End is
// reachable from every state and generation terminates with probability 1.
// Its length is still unbounded: a chain with cycles can produce arbitrarily
// long words. Use WithMaxLength to cap it.
func (m *Model) Generate(opts ...GenerateOption) (string, error) {
	return m.generate(m.options(opts))
}

func (m *Model) generate(o *generateOptions) (string, error) {
	state, err := m.starts.ChooseWeighted(o.rand)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoTrainingData, err)
	}

	var sb strings.Builder
	length := 0
	for _, t := range state.Tokens() {
		if r, ok := t.Rune(); ok {
			sb.WriteRune(r)
			length++
		}
	}
	if o.maxLength > 0 && length > o.maxLength {
		return "", fmt.Errorf("%w: start state %q is longer than %d", ErrMaxLength, state, o.maxLength)
	}

	for {
		successors, ok := m.transitions[state]
		if !ok {
			break // dead end
		}
		next, err := successors.ChooseWeighted(o.rand)
		if err != nil {
			return "", fmt.Errorf("%w: drawing successor of %q: %w", ErrInconsistentModel, state, err)
		}
		r, ok := next.Rune()
		if !ok {
			break
		}
		if o.maxLength > 0 && length == o.maxLength {
			return "", fmt.Errorf("%w: %d characters", ErrMaxLength, o.maxLength)
		}
		sb.WriteRune(r)
		length++
		state = state.Shift(next)
	}
	return sb.String(), nil
}

// All returns an unbounded sequence of generated words. Every step calls
// Generate independently, so the sequence can be ranged over any number of
// times and several sequences can be consumed interleaved. A step that fails
// yields the error; ranging continues until the caller stops.
func (m *Model) All(opts ...GenerateOption) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		o := m.options(opts)
		for {
			if !yield(m.generate(o)) {
				return
			}
		}
	}
}
