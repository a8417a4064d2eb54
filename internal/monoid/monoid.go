/*
Package monoid computes the transformation monoid of a DFA and decides
whether it is aperiodic.

Every input string acts on the states of a DFA, extended by a dead state,
as a total function: the state each state ends up in after reading the
string. These functions, closed under composition, form the transformation
monoid. For a minimal DFA it is the syntactic monoid of the language, and
the language is star-free exactly when that monoid is aperiodic, i.e. when
every element x has some power with x^n == x^(n+1).

Elements are addressed by index; index 0 is always the identity.
*/
package monoid

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"starfree/internal/automaton"
)

// tracer traces with key 'starfree.monoid'
func tracer() tracing.Trace {
	return tracing.Select("starfree.monoid")
}

// Monoid is the transformation monoid of a DFA. It is immutable after Build.
type Monoid struct {
	elements []Transformation
	words    [][]byte // a shortest word for every element
	table    [][]int  // table[x][y] == x·y
	morphism [automaton.AlphabetSize]int
	accept   []bool // accepting DFA states
}

// Build enumerates the monoid of d, starting from the identity and
// composing every element found with every byte generator until no new
// transformation appears.
func Build(d *automaton.DFA) *Monoid {
	n := d.Len()
	gens, genOf := generators(d)
	m := &Monoid{accept: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.accept[i] = d.Accepting(i)
	}
	index := make(map[string]int)
	queue := arraylist.New() // position in list == element index
	add := func(t Transformation, word []byte) int {
		k := t.key()
		if x, ok := index[k]; ok {
			return x
		}
		x := len(m.elements)
		index[k] = x
		m.elements = append(m.elements, t)
		m.words = append(m.words, word)
		queue.Add(x)
		return x
	}
	add(Identity(n), nil)
	for i := 0; i < queue.Size(); i++ {
		v, _ := queue.Get(i)
		x := v.(int)
		for _, g := range gens {
			word := make([]byte, len(m.words[x])+1)
			copy(word, m.words[x])
			word[len(word)-1] = g.symbol
			add(m.elements[x].Then(g.t), word)
		}
	}
	for c := range m.morphism {
		x, ok := index[gens[genOf[c]].t.key()]
		if !ok {
			panic("monoid: generator missing from element set")
		}
		m.morphism[c] = x
	}
	m.table = make([][]int, len(m.elements))
	for x, tx := range m.elements {
		m.table[x] = make([]int, len(m.elements))
		for y, ty := range m.elements {
			z, ok := index[tx.Then(ty).key()]
			if !ok {
				panic(fmt.Sprintf("monoid: product of %d and %d not in element set", x, y))
			}
			m.table[x][y] = z
		}
	}
	tracer().Debugf("monoid of %d-state DFA: %d distinct generators, %d elements",
		n, len(gens), len(m.elements))
	return m
}

type generator struct {
	t      Transformation
	symbol byte // lowest byte acting as t
}

// generators returns the distinct byte actions of d, and for every byte the
// position of its action in that list.
func generators(d *automaton.DFA) ([]generator, [automaton.AlphabetSize]int) {
	n := d.Len()
	var gens []generator
	var genOf [automaton.AlphabetSize]int
	seen := make(map[string]int)
	for c := 0; c < automaton.AlphabetSize; c++ {
		g := make(Transformation, n+1)
		for i := 0; i < n; i++ {
			g[i] = n
			if to, ok := d.Next(i, byte(c)); ok {
				g[i] = to
			}
		}
		g[n] = n
		k := g.key()
		pos, ok := seen[k]
		if !ok {
			pos = len(gens)
			seen[k] = pos
			gens = append(gens, generator{t: g, symbol: byte(c)})
		}
		genOf[c] = pos
	}
	return gens, genOf
}

// Size is the number of elements.
func (m *Monoid) Size() int { return len(m.elements) }

// Identity is the index of the identity element.
func (m *Monoid) Identity() int { return 0 }

// Multiply returns x·y, the element acting as x followed by y.
func (m *Monoid) Multiply(x, y int) int { return m.table[x][y] }

// Generator returns the element of the single-byte word c.
func (m *Monoid) Generator(c byte) int { return m.morphism[c] }

// Transformation returns a copy of the function element x stands for.
func (m *Monoid) Transformation(x int) Transformation {
	t := make(Transformation, len(m.elements[x]))
	copy(t, m.elements[x])
	return t
}

// Word returns a shortest input string whose action is element x.
func (m *Monoid) Word(x int) []byte {
	w := make([]byte, len(m.words[x]))
	copy(w, m.words[x])
	return w
}

// Eval returns the element of word.
func (m *Monoid) Eval(word []byte) int {
	x := m.Identity()
	for _, c := range word {
		x = m.table[x][m.morphism[c]]
	}
	return x
}

// Recognizes reports whether the DFA the monoid was built from accepts
// word: the element of word must send the start state to an accepting one.
func (m *Monoid) Recognizes(word []byte) bool {
	s := m.elements[m.Eval(word)][0]
	return s < len(m.accept) && m.accept[s]
}

// Power returns x^n; x^0 is the identity.
func (m *Monoid) Power(x, n int) int {
	if n < 0 {
		panic("monoid: negative exponent")
	}
	p := m.Identity()
	for ; n > 0; n-- {
		p = m.table[p][x]
	}
	return p
}

// Period returns index and period of the cyclic semigroup generated by x:
// the smallest i >= 1 and p >= 1 with x^i == x^(i+p).
func (m *Monoid) Period(x int) (index, period int) {
	seen := make(map[int]int) // element -> first exponent
	p := x
	for k := 1; ; k++ {
		if e, ok := seen[p]; ok {
			return e, k - e
		}
		seen[p] = k
		p = m.table[p][x]
	}
}

// Idempotents returns all elements e with e·e == e, in ascending order.
func (m *Monoid) Idempotents() []int {
	var ids []int
	for x := range m.elements {
		if m.table[x][x] == x {
			ids = append(ids, x)
		}
	}
	return ids
}

// IsAperiodic reports whether every element has period 1, i.e. the monoid
// contains no non-trivial group.
func (m *Monoid) IsAperiodic() bool {
	_, found := m.Witness()
	return !found
}

// Witness returns the lowest element whose period is greater than 1, if
// there is one.
func (m *Monoid) Witness() (int, bool) {
	for x := range m.elements {
		if _, p := m.Period(x); p > 1 {
			tracer().Debugf("element %d %v has period %d", x, m.elements[x], p)
			return x, true
		}
	}
	return -1, false
}
