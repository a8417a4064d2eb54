package automaton

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// NoState marks an absent DFA transition. Reading a byte without a
// transition rejects the input.
const NoState = -1

type dfaState struct {
	accept bool
	next   [AlphabetSize]int
}

func newDFAState(accept bool) dfaState {
	s := dfaState{accept: accept}
	for c := range s.next {
		s.next[c] = NoState
	}
	return s
}

// DFA is a deterministic automaton over bytes. State 0 is the start state.
type DFA struct {
	states []dfaState
}

// NewDFA creates a DFA with n states, none accepting and without
// transitions. Used to assemble automata by hand.
func NewDFA(n int) *DFA {
	d := &DFA{states: make([]dfaState, n)}
	for i := range d.states {
		d.states[i] = newDFAState(false)
	}
	return d
}

func (d *DFA) Len() int { return len(d.states) }

func (d *DFA) Accepting(id int) bool { return d.states[id].accept }

func (d *DFA) SetAccepting(id int, accept bool) { d.states[id].accept = accept }

// Next returns the successor of id on c.
func (d *DFA) Next(id int, c byte) (int, bool) {
	to := d.states[id].next[c]
	return to, to != NoState
}

// SetNext sets the transition of id on c; to may be NoState.
func (d *DFA) SetNext(id int, c byte, to int) {
	if to != NoState && (to < 0 || to >= len(d.states)) {
		panic("automaton: transition target out of range")
	}
	d.states[id].next[c] = to
}

// Walk runs input from state from. It returns the state reached and false
// if a byte had no transition.
func (d *DFA) Walk(from int, input []byte) (int, bool) {
	s := from
	for _, c := range input {
		s = d.states[s].next[c]
		if s == NoState {
			return NoState, false
		}
	}
	return s, true
}

// Accepts reports whether the DFA accepts input.
func (d *DFA) Accepts(input []byte) bool {
	s, ok := d.Walk(0, input)
	return ok && d.states[s].accept
}

// TransitionCount returns the number of present transitions.
func (d *DFA) TransitionCount() int {
	cnt := 0
	for i := range d.states {
		for _, to := range d.states[i].next {
			if to != NoState {
				cnt++
			}
		}
	}
	return cnt
}

// Clone returns a deep copy of d.
func (d *DFA) Clone() *DFA {
	c := &DFA{states: make([]dfaState, len(d.states))}
	copy(c.states, d.states)
	return c
}

/* ----------- subset construction ----------- */

// BuildDFA converts an NFA by subset construction. Every DFA state stands
// for the epsilon-closed set of NFA states it was discovered from; states
// are numbered in discovery order.
func BuildDFA(n *NFA) *DFA {
	d := &DFA{}
	start := n.Closure(NewStateSet(n.Start()))
	index := map[string]int{start.Key(): 0}
	subsets := arraylist.New() // position in list == DFA state index
	subsets.Add(start)
	for i := 0; i < subsets.Size(); i++ {
		v, _ := subsets.Get(i)
		q := v.(StateSet)
		d.states = append(d.states, newDFAState(n.AnyAccepting(q)))
		for c := 0; c < AlphabetSize; c++ {
			t := n.Step(q, byte(c))
			if t.IsEmpty() {
				continue
			}
			k := t.Key()
			to, seen := index[k]
			if !seen {
				to = subsets.Size()
				index[k] = to
				subsets.Add(t)
			}
			d.states[i].next[c] = to
		}
	}
	tracer().Debugf("subset construction: %d NFA states -> %d DFA states", n.Len(), d.Len())
	return d
}
