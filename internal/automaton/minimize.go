package automaton

// pairTable holds one mark per unordered pair of distinct states, stored as
// the lower triangle of an n×n matrix.
type pairTable struct {
	marks []bool
}

func newPairTable(n int) *pairTable {
	return &pairTable{marks: make([]bool, n*(n-1)/2)}
}

func (t *pairTable) index(i, j int) int {
	if i < j {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

func (t *pairTable) marked(i, j int) bool {
	if i == j {
		return false
	}
	return t.marks[t.index(i, j)]
}

func (t *pairTable) mark(i, j int) { t.marks[t.index(i, j)] = true }

// Minimize replaces d by the minimal DFA for the same language, assuming
// every state is reachable from state 0. Indistinguishable states are found
// by table filling; each class is represented by its lowest state and
// classes are numbered in order of their representatives, so state 0 stays
// the start state.
func (d *DFA) Minimize() {
	n := len(d.states)
	if n < 2 {
		return
	}
	table, _ := d.distinguish()
	classOf := make([]int, n)
	var reps []int
	for i := 0; i < n; i++ {
		classOf[i] = -1
		for j := 0; j < i; j++ {
			if !table.marked(i, j) {
				classOf[i] = classOf[j]
				break
			}
		}
		if classOf[i] < 0 {
			classOf[i] = len(reps)
			reps = append(reps, i)
		}
	}
	tracer().Debugf("minimize: %d states -> %d classes", n, len(reps))
	if len(reps) == n {
		return
	}
	states := make([]dfaState, len(reps))
	for k, rep := range reps {
		s := newDFAState(d.states[rep].accept)
		for c, to := range d.states[rep].next {
			if to != NoState {
				s.next[c] = classOf[to]
			}
		}
		states[k] = s
	}
	d.states = states
}

// distinguish fills the pair table to its fixpoint. A pair starts out
// marked when exactly one side accepts, and gets marked later when some
// byte leads from one side only, or into a marked pair. Pairs are scanned
// from the highest indices down: successors are mostly numbered after their
// predecessors, so most marks propagate within a single pass. distinguish
// also returns the number of passes it took.
func (d *DFA) distinguish() (*pairTable, int) {
	n := len(d.states)
	table := newPairTable(n)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if d.states[i].accept != d.states[j].accept {
				table.mark(i, j)
			}
		}
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for i := n - 1; i > 0; i-- {
			for j := i - 1; j >= 0; j-- {
				if !table.marked(i, j) && d.splits(table, i, j) {
					table.mark(i, j)
					changed = true
				}
			}
		}
	}
	tracer().Debugf("minimize: table filled after %d passes", passes)
	return table, passes
}

func (d *DFA) splits(table *pairTable, i, j int) bool {
	for c := 0; c < AlphabetSize; c++ {
		a, b := d.states[i].next[c], d.states[j].next[c]
		switch {
		case a == NoState && b == NoState:
		case a == NoState || b == NoState:
			return true
		case table.marked(a, b):
			return true
		}
	}
	return false
}

// Trim removes states which are unreachable from state 0 or cannot reach an
// accepting state, and the transitions into them. A DFA for the empty
// language is reduced to a single rejecting start state.
func (d *DFA) Trim() {
	n := len(d.states)
	if n == 0 {
		return
	}
	reach := make([]bool, n)
	reach[0] = true
	queue := []int{0}
	preds := make([][]int, n)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, to := range d.states[s].next {
			if to == NoState {
				continue
			}
			preds[to] = append(preds[to], s)
			if !reach[to] {
				reach[to] = true
				queue = append(queue, to)
			}
		}
	}
	live := make([]bool, n)
	for s := 0; s < n; s++ {
		if reach[s] && d.states[s].accept {
			live[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range preds[s] {
			if !live[p] {
				live[p] = true
				queue = append(queue, p)
			}
		}
	}
	if !live[0] { // empty language
		tracer().Debugf("trim: %d states -> 1, language is empty", n)
		d.states = []dfaState{newDFAState(false)}
		return
	}
	renum := make([]int, n)
	kept := 0
	for s := 0; s < n; s++ {
		renum[s] = NoState
		if live[s] {
			renum[s] = kept
			kept++
		}
	}
	if kept == n {
		return
	}
	states := make([]dfaState, 0, kept)
	for s := 0; s < n; s++ {
		if !live[s] {
			continue
		}
		t := newDFAState(d.states[s].accept)
		for c, to := range d.states[s].next {
			if to != NoState {
				t.next[c] = renum[to]
			}
		}
		states = append(states, t)
	}
	tracer().Debugf("trim: %d states -> %d", n, kept)
	d.states = states
}
