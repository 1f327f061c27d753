package markov

import (
	"errors"
	"math"
	"testing"
)

func TestFrequencyTableIncrement(t *testing.T) {
	f := NewFrequencyTable[string]()

	if f.Count("a") != 0 {
		t.Fatalf("expected absent key to have count 0, got %d", f.Count("a"))
	}
	f.Increment("a")
	if f.Count("a") != 1 {
		t.Errorf("expected count 1 after first increment, got %d", f.Count("a"))
	}
	for i := 0; i < 11; i++ {
		f.Increment("a")
	}
	if f.Count("a") != 12 {
		t.Errorf("expected count 12, got %d", f.Count("a"))
	}
	if f.Len() != 1 {
		t.Errorf("expected 1 distinct key, got %d", f.Len())
	}
}

func TestFrequencyTableCounting(t *testing.T) {
	calls := []string{"x", "y", "x", "z", "x", "y", "w"}
	want := map[string]int{}

	var f FrequencyTable[string] // zero value must be usable
	for _, k := range calls {
		f.Increment(k)
		want[k]++
	}

	if f.Total() != len(calls) {
		t.Errorf("Total() = %d, want %d", f.Total(), len(calls))
	}
	for k, n := range want {
		if f.Count(k) != n {
			t.Errorf("Count(%q) = %d, want %d", k, f.Count(k), n)
		}
	}
	keys := f.Keys()
	wantOrder := []string{"x", "y", "z", "w"}
	if len(keys) != len(wantOrder) {
		t.Fatalf("Keys() = %v, want %v", keys, wantOrder)
	}
	for i := range wantOrder {
		if keys[i] != wantOrder[i] {
			t.Fatalf("Keys() = %v, want insertion order %v", keys, wantOrder)
		}
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	f := NewFrequencyTable[string]()
	if f.Total() != 0 {
		t.Fatalf("empty table total = %d", f.Total())
	}
	_, err := f.ChooseWeighted(NewRand(1))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestChooseWeightedSingleKey(t *testing.T) {
	f := NewFrequencyTable[int]()
	for i := 0; i < 5; i++ {
		f.Increment(7)
	}
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		k, err := f.ChooseWeighted(r)
		if err != nil {
			t.Fatalf("ChooseWeighted() error = %v", err)
		}
		if k != 7 {
			t.Fatalf("ChooseWeighted() = %d, want 7", k)
		}
	}
}

func TestChooseWeightedBoundaries(t *testing.T) {
	f := NewFrequencyTable[string]()
	f.Increment("first")
	f.Increment("last")
	f.Increment("last")

	// The lowest draw must select the first key and the highest the last.
	got, err := f.ChooseWeighted(fixedRand(0))
	if err != nil || got != "first" {
		t.Errorf("lowest draw = %q, %v; want first", got, err)
	}
	got, err = f.ChooseWeighted(fixedRand(math.MaxInt))
	if err != nil || got != "last" {
		t.Errorf("highest draw = %q, %v; want last", got, err)
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	f := NewFrequencyTable[string]()
	f.Increment("A")
	f.Increment("B")
	f.Increment("B")

	const draws = 10000
	r := NewRand(2024)
	hits := map[string]int{}
	for i := 0; i < draws; i++ {
		k, err := f.ChooseWeighted(r)
		if err != nil {
			t.Fatalf("ChooseWeighted() error = %v", err)
		}
		hits[k]++
	}

	// Standard deviation of the A fraction is about 0.0047 at this sample size.
	const tolerance = 0.03
	if got := float64(hits["A"]) / draws; math.Abs(got-1.0/3) > tolerance {
		t.Errorf("A drawn with frequency %.4f, want about %.4f", got, 1.0/3)
	}
	if got := float64(hits["B"]) / draws; math.Abs(got-2.0/3) > tolerance {
		t.Errorf("B drawn with frequency %.4f, want about %.4f", got, 2.0/3)
	}
}

func BenchmarkChooseWeighted(b *testing.B) {
	f := NewFrequencyTable[rune]()
	for i, r := range "abcdefghijklmnopqrstuvwxyz" {
		for j := 0; j <= i; j++ {
			f.Increment(r)
		}
	}
	r := NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ChooseWeighted(r)
	}
}
