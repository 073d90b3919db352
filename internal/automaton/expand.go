package automaton

// Expand walks terms in ascending order (as produced by a term
// iterator's Next) and returns every term accepted by a, bounded by
// limit (0 means unbounded). It is the bridge between a compiled
// automaton (prefix/wildcard/fuzzy) and a field's term dictionary:
// callers drive next/value themselves so this package never depends on
// the term package.
func Expand(a Automaton, next func() (term []byte, ok bool), limit int) [][]byte {
	var out [][]byte
	for {
		term, ok := next()
		if !ok {
			break
		}
		if Accepts(a, term) {
			out = append(out, term)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

// Accepts feeds s through a from its start state and reports whether it
// lands on an accepting state.
func Accepts(a Automaton, s []byte) bool {
	state := a.Start()
	for _, b := range s {
		state = a.Step(state, b)
		if state == DeadState {
			return false
		}
	}
	return a.IsAccept(state)
}
