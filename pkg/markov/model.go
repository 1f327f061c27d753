package markov

import (
	"errors"
	"fmt"
)

// DefaultOrder is the order used by the command line tool when none is given.
const DefaultOrder = 2

// ErrInvalidOrder is returned by NewModel for an order below 1.
var ErrInvalidOrder = errors.New("markov: order must be at least 1")

// Model is an order-k character Markov chain with an explicit End token.
//
// Training only ever adds states and increments counts; generation only
// reads. A Model is not safe for concurrent use: calls to TrainWord must be
// serialized against each other and against Generate.
type Model struct {
	order       int
	starts      *FrequencyTable[Ngram]
	transitions map[Ngram]*FrequencyTable[Token]
	rand        Rand
}

// Option configures a Model at construction.
type Option func(*Model)

// WithRand sets the default random source used by Generate. Without it the
// goroutine-safe global math/rand/v2 source is used.
func WithRand(r Rand) Option {
	return func(m *Model) {
		if r != nil {
			m.rand = r
		}
	}
}

// NewModel returns an empty model with the given order.
func NewModel(order int, opts ...Option) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	m := &Model{
		order:       order,
		starts:      NewFrequencyTable[Ngram](),
		transitions: make(map[Ngram]*FrequencyTable[Token]),
		rand:        globalRand{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Order returns the window length of the model.
func (m *Model) Order() int {
	return m.order
}

// Snapshot is a deep copy of a model's tables, for inspection.
type Snapshot struct {
	Order       int
	Starts      map[Ngram]int
	Transitions map[Ngram]map[Token]int
}

// Snapshot copies the current contents of the model.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Order:       m.order,
		Starts:      make(map[Ngram]int, m.starts.Len()),
		Transitions: make(map[Ngram]map[Token]int, len(m.transitions)),
	}
	for _, g := range m.starts.keys {
		s.Starts[g] = m.starts.Count(g)
	}
	for g, next := range m.transitions {
		counts := make(map[Token]int, next.Len())
		for _, t := range next.keys {
			counts[t] = next.Count(t)
		}
		s.Transitions[g] = counts
	}
	return s
}
