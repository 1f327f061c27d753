/*
Package markov provides a small, in-memory, character-level Markov chain for
generating plausible new words and names from a list of examples.

A Model of order k treats every run of k consecutive characters as a state.
Training counts which states begin words and which token (a character, or the
End marker) follows each state. Generation picks a start state in proportion
to how often it began a training word, then keeps drawing successors in
proportion to their counts until End is drawn.

	m, err := markov.NewModel(2)
	if err != nil {
		return err
	}
	m.Train("alice", "alina", "marina")
	for name, err := range m.All() {
		...
	}

Models are not safe for concurrent use. See Model.Generate for the
termination caveats of unbounded generation.
*/
package markov
