package markov

// ModelStats holds aggregated counts for a trained model.
type ModelStats struct {
	Order            int `json:"order"`
	StartStates      int `json:"start_states"`      // distinct states that begin a word
	TotalStarts      int `json:"total_starts"`      // words that contributed a start state
	States           int `json:"states"`            // distinct states with recorded successors
	Transitions      int `json:"transitions"`       // distinct state->token links
	TotalTransitions int `json:"total_transitions"` // sum of all link counts
	TerminalStates   int `json:"terminal_states"`   // states that have been followed by End
}

// Stats returns a snapshot of the model's size.
func (m *Model) Stats() ModelStats {
	s := ModelStats{
		Order:       m.order,
		StartStates: m.starts.Len(),
		TotalStarts: m.starts.Total(),
		States:      len(m.transitions),
	}
	for _, next := range m.transitions {
		s.Transitions += next.Len()
		s.TotalTransitions += next.Total()
		if next.Count(End) > 0 {
			s.TerminalStates++
		}
	}
	return s
}
