package automaton

// Complete returns a copy of d whose transition function is total: missing
// transitions lead to an added non-accepting sink. A DFA which is already
// total is copied unchanged.
func (d *DFA) Complete() *DFA {
	c := d.Clone()
	total := true
	for i := range c.states {
		for _, to := range c.states[i].next {
			if to == NoState {
				total = false
			}
		}
	}
	if total && len(c.states) > 0 {
		return c
	}
	sink := len(c.states)
	c.states = append(c.states, newDFAState(false))
	for i := range c.states {
		for b, to := range c.states[i].next {
			if to == NoState {
				c.states[i].next[b] = sink
			}
		}
	}
	return c
}

// Complement returns a trimmed DFA accepting exactly the byte strings d
// rejects.
func Complement(d *DFA) *DFA {
	c := d.Complete()
	for i := range c.states {
		c.states[i].accept = !c.states[i].accept
	}
	c.Trim()
	return c
}

// Product runs a and b in lockstep. A pair state accepts if op holds for the
// acceptance of its components; a component without a transition continues
// in its (non-accepting) dead state. The result is trimmed.
func Product(a, b *DFA, op func(bool, bool) bool) *DFA {
	type pair struct{ i, j int }
	accepting := func(d *DFA, s int) bool { return s != NoState && d.states[s].accept }
	step := func(d *DFA, s int, c int) int {
		if s == NoState {
			return NoState
		}
		return d.states[s].next[c]
	}
	start := pair{0, 0}
	index := map[pair]int{start: 0}
	queue := []pair{start}
	p := &DFA{}
	for k := 0; k < len(queue); k++ {
		cur := queue[k]
		p.states = append(p.states, newDFAState(op(accepting(a, cur.i), accepting(b, cur.j))))
		for c := 0; c < AlphabetSize; c++ {
			np := pair{step(a, cur.i, c), step(b, cur.j, c)}
			if np.i == NoState && np.j == NoState {
				continue
			}
			to, ok := index[np]
			if !ok {
				to = len(queue)
				index[np] = to
				queue = append(queue, np)
			}
			p.states[k].next[c] = to
		}
	}
	p.Trim()
	return p
}

// Intersect accepts what both a and b accept.
func Intersect(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x && y }) }

// Union accepts what a or b accepts.
func Union(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x || y }) }

// Reverse returns a DFA accepting the reversals of the strings d accepts.
// It builds an NFA with the edges of d turned around and determinizes it:
// NFA state 0 is a fresh start with epsilon moves to every accepting state
// of d, state s+1 stands for state s of d, and the last state is the final
// one, reached by epsilon from the former start state.
func Reverse(d *DFA) *DFA {
	n := &NFA{}
	start := n.add()
	for range d.states {
		n.add()
	}
	final := n.add()
	n.states[final].accept = true
	for s := range d.states {
		if d.states[s].accept {
			n.link(start, Epsilon, s+1)
		}
		for c, to := range d.states[s].next {
			if to != NoState {
				n.link(to+1, c, s+1)
			}
		}
	}
	n.link(1, Epsilon, final)
	r := BuildDFA(n)
	r.Trim()
	return r
}
