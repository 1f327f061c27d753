package markov

import (
	"testing"
)

// fixedRand always returns the same offset into [0, n), clamped.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// newTestModel creates a seeded model and trains it on words.
func newTestModel(t testing.TB, order int, words ...string) *Model {
	t.Helper()
	m, err := NewModel(order, WithRand(NewRand(42)))
	if err != nil {
		t.Fatalf("NewModel(%d) error = %v", order, err)
	}
	m.Train(words...)
	return m
}

var benchmarkNames = []string{
	"aldric", "alena", "amara", "anselm", "beatrix", "bertram", "caius",
	"cordelia", "dagny", "edmund", "elowen", "fenna", "gareth", "gisela",
	"hadrian", "isolde", "jorund", "katrin", "leofric", "maren", "nerys",
	"osric", "petra", "quill", "rowena", "sigrun", "tamsin", "ulric",
	"vesna", "wendel", "ysolde", "zora",
}
