package markov

// TrainWord adds one word to the model. Every window of Order() consecutive
// characters is recorded together with the token that follows it, End for
// the last window. The first window is also recorded as a start state.
//
// Words shorter than Order() have no windows and contribute nothing; the
// return value reports whether the word was used.
func (m *Model) TrainWord(word string) bool {
	chars := []rune(word)
	if len(chars) < m.order {
		return false
	}

	window := NgramOf(string(chars[:m.order]))
	m.starts.Increment(window)

	for i := 0; i+m.order <= len(chars); i++ {
		next := End
		if pos := i + m.order; pos < len(chars) {
			next = Char(chars[pos])
		}

		successors, ok := m.transitions[window]
		if !ok {
			successors = NewFrequencyTable[Token]()
			m.transitions[window] = successors
		}
		successors.Increment(next)

		if !next.IsEnd() {
			window = window.Shift(next)
		}
	}
	return true
}

// Train calls TrainWord for every word and returns how many were used.
func (m *Model) Train(words ...string) int {
	used := 0
	for _, w := range words {
		if m.TrainWord(w) {
			used++
		}
	}
	return used
}
