package markov

import (
	"errors"
	"math/rand/v2"
)

// ErrEmpty is returned by ChooseWeighted when the table holds no keys.
var ErrEmpty = errors.New("markov: frequency table is empty")

// Rand is the source of randomness used for weighted draws. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It may panic if n <= 0.
	IntN(n int) int
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FrequencyTable counts occurrences of keys and draws keys in proportion to
// their counts. A key is stored only once it has been incremented, so every
// stored count is at least 1. The zero value is ready to use.
type FrequencyTable[K comparable] struct {
	counts map[K]int
	keys   []K // insertion order
	total  int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{counts: make(map[K]int)}
}

// Increment adds one occurrence of key.
func (f *FrequencyTable[K]) Increment(key K) {
	if f.counts == nil {
		f.counts = make(map[K]int)
	}
	if _, ok := f.counts[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.counts[key]++
	f.total++
}

// Count returns the number of occurrences of key, 0 if absent.
func (f *FrequencyTable[K]) Count(key K) int {
	return f.counts[key]
}

// Total returns the sum of all counts.
func (f *FrequencyTable[K]) Total() int {
	return f.total
}

// Len returns the number of distinct keys.
func (f *FrequencyTable[K]) Len() int {
	return len(f.keys)
}

// Keys returns the distinct keys in the order they were first seen.
func (f *FrequencyTable[K]) Keys() []K {
	keys := make([]K, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// ChooseWeighted draws a key with probability Count(key)/Total(). It returns
// ErrEmpty if the table holds no keys.
func (f *FrequencyTable[K]) ChooseWeighted(r Rand) (K, error) {
	var zero K
	if f.total == 0 {
		return zero, ErrEmpty
	}
	if r == nil {
		r = globalRand{}
	}

	// n is in [1, total]; the first key whose running sum reaches n wins.
	n := r.IntN(f.total) + 1
	sum := 0
	for _, key := range f.keys {
		sum += f.counts[key]
		if sum >= n {
			return key, nil
		}
	}
	return zero, errInconsistentTotal
}

var errInconsistentTotal = errors.New("markov: frequency total does not match counts")

// clone returns a deep copy of f.
func (f *FrequencyTable[K]) clone() *FrequencyTable[K] {
	c := &FrequencyTable[K]{
		counts: make(map[K]int, len(f.counts)),
		keys:   make([]K, len(f.keys)),
		total:  f.total,
	}
	copy(c.keys, f.keys)
	for k, v := range f.counts {
		c.counts[k] = v
	}
	return c
}
