package markov

import (
	"fmt"
	"reflect"
	"testing"
)

func TestTrainWordWindows(t *testing.T) {
	m := newTestModel(t, 2)

	if !m.TrainWord("abc") {
		t.Fatal("TrainWord(\"abc\") reported the word as unused")
	}

	want := Snapshot{
		Order:  2,
		Starts: map[Ngram]int{NgramOf("ab"): 1},
		Transitions: map[Ngram]map[Token]int{
			NgramOf("ab"): {Char('c'): 1},
			NgramOf("bc"): {End: 1},
		},
	}
	if got := m.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("after training \"abc\":\n got  %v\n want %v", got, want)
	}
}

func TestTrainWordTooShort(t *testing.T) {
	testCases := []struct {
		order int
		word  string
	}{
		{2, "a"},
		{2, ""},
		{1, ""},
		{4, "abc"},
		{3, "日本"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("order%d_%q", tc.order, tc.word), func(t *testing.T) {
			m := newTestModel(t, tc.order)
			if m.TrainWord(tc.word) {
				t.Errorf("TrainWord(%q) reported the word as used", tc.word)
			}
			if s := m.Stats(); s.TotalStarts != 0 || s.States != 0 {
				t.Errorf("short word changed the model: %+v", s)
			}
		})
	}
}

func TestTrainWordExactOrder(t *testing.T) {
	m := newTestModel(t, 3)
	m.TrainWord("abc")

	snap := m.Snapshot()
	if snap.Starts[NgramOf("abc")] != 1 {
		t.Errorf("expected start state \"abc\", got %v", snap.Starts)
	}
	if snap.Transitions[NgramOf("abc")][End] != 1 {
		t.Errorf("expected \"abc\" -> END, got %v", snap.Transitions)
	}
}

func TestTrainAccumulates(t *testing.T) {
	m := newTestModel(t, 2)
	used := m.Train("abc", "abd", "abc", "a", "")
	if used != 3 {
		t.Errorf("Train() used %d words, want 3", used)
	}

	snap := m.Snapshot()
	if snap.Starts[NgramOf("ab")] != 3 {
		t.Errorf("start count for \"ab\" = %d, want 3", snap.Starts[NgramOf("ab")])
	}
	next := snap.Transitions[NgramOf("ab")]
	if next[Char('c')] != 2 || next[Char('d')] != 1 {
		t.Errorf("successors of \"ab\" = %v, want c:2 d:1", next)
	}
}

func TestTrainInvariants(t *testing.T) {
	m := newTestModel(t, 3, benchmarkNames...)
	snap := m.Snapshot()

	for g := range snap.Starts {
		if _, ok := snap.Transitions[g]; !ok {
			t.Errorf("start state %q has no transitions", g)
		}
	}
	for g, next := range snap.Transitions {
		if g.Len() != 3 {
			t.Errorf("state %q has length %d, want 3", g, g.Len())
		}
		for tok, n := range next {
			if n < 1 {
				t.Errorf("stored count %d for %q -> %v", n, g, tok)
			}
		}
	}
}

func TestTrainUnicode(t *testing.T) {
	m := newTestModel(t, 2, "Ærø")
	snap := m.Snapshot()
	if snap.Starts[NgramOf("Ær")] != 1 {
		t.Errorf("expected multibyte start state, got %v", snap.Starts)
	}
	if snap.Transitions[NgramOf("Ær")][Char('ø')] != 1 {
		t.Errorf("expected \"Ær\" -> 'ø', got %v", snap.Transitions)
	}
}

func BenchmarkTrain(b *testing.B) {
	for _, order := range []int{1, 2, 3, 4} {
		b.Run(fmt.Sprintf("Order%d", order), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, _ := NewModel(order)
				m.Train(benchmarkNames...)
			}
		})
	}
}
