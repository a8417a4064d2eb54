/*
Package regexlib puts the stages of the compiler behind one object.

A Regex is compiled once, from a pattern or a syntax tree, into a Thompson
NFA, the DFA found by subset construction ("raw DFA") and its minimization.
The transformation monoid of the minimal DFA is built on first use.

Patterns know five constructs: literal bytes, '.', concatenation, '|' and
'*'. Metacharacters are escaped with a backslash. Matching works on bytes,
a multi-byte UTF-8 character is the concatenation of its bytes.
*/
package regexlib

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"starfree/internal/automaton"
	"starfree/internal/monoid"
	"starfree/internal/syntax"
)

// tracer traces with key 'starfree.regexlib'
func tracer() tracing.Trace {
	return tracing.Select("starfree.regexlib")
}

// Regex is a compiled pattern. It is safe for concurrent use.
type Regex struct {
	pattern string
	tree    *syntax.Node
	nfa     *automaton.NFA
	rawDFA  *automaton.DFA
	dfa     *automaton.DFA

	monoidOnce sync.Once
	monoid     *monoid.Monoid
}

// Compile parses pattern and builds its automata.
func Compile(pattern string) (*Regex, error) {
	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	re, err := CompileTree(tree)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}
	re.pattern = pattern
	return re, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileTree builds the automata for an already parsed tree.
func CompileTree(tree *syntax.Node) (*Regex, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	nfa, err := automaton.BuildNFA(tree)
	if err != nil {
		return nil, err
	}
	raw := automaton.BuildDFA(nfa)
	min := raw.Clone()
	min.Minimize()
	tracer().Infof("compiled %v: NFA %d, DFA %d, minimal DFA %d states",
		tree, nfa.Len(), raw.Len(), min.Len())
	return &Regex{
		pattern: tree.String(),
		tree:    tree,
		nfa:     nfa,
		rawDFA:  raw,
		dfa:     min,
	}, nil
}

// fromDFA wraps an automaton produced by a set operation. Such a Regex has
// neither a syntax tree nor an NFA.
func fromDFA(pattern string, d *automaton.DFA) *Regex {
	min := d.Clone()
	min.Minimize()
	return &Regex{pattern: pattern, rawDFA: d, dfa: min}
}

/* ----------- getters ----------- */

func (re *Regex) String() string         { return re.pattern }
func (re *Regex) Pattern() string        { return re.pattern }
func (re *Regex) RawDFA() *automaton.DFA { return re.rawDFA }
func (re *Regex) DFA() *automaton.DFA    { return re.dfa }

// Tree returns the syntax tree, or nil for a Regex made by a set operation.
func (re *Regex) Tree() *syntax.Node { return re.tree }

// NFA returns the Thompson NFA, or nil for a Regex made by a set operation.
// A nil NFA still satisfies automaton.Graph; its WriteDOT returns
// automaton.ErrNilGraph.
func (re *Regex) NFA() *automaton.NFA { return re.nfa }

// Monoid returns the transformation monoid of the minimal DFA, building it
// on the first call.
func (re *Regex) Monoid() *monoid.Monoid {
	re.monoidOnce.Do(func() {
		re.monoid = monoid.Build(re.dfa)
	})
	return re.monoid
}

// IsStarFree reports whether the language can be written without Kleene
// star, using complement instead. It builds the monoid if necessary.
func (re *Regex) IsStarFree() bool {
	return re.Monoid().IsAperiodic()
}

/* ----------- matching ----------- */

// Match reports whether the whole of b is in the language.
func (re *Regex) Match(b []byte) bool { return re.dfa.Accepts(b) }

// MatchString reports whether the whole of s is in the language.
func (re *Regex) MatchString(s string) bool { return re.dfa.Accepts([]byte(s)) }

// Match is a match in a text, as byte offsets [Start, End).
type Match struct {
	Start, End int
}

// longestAt returns the length of the longest non-empty match starting at
// pos, or 0.
func (re *Regex) longestAt(text string, pos int) int {
	s, longest := 0, 0
	for i := pos; i < len(text); i++ {
		to, ok := re.dfa.Next(s, text[i])
		if !ok {
			break
		}
		s = to
		if re.dfa.Accepting(s) {
			longest = i + 1 - pos
		}
	}
	return longest
}

// FindAll returns all non-overlapping, non-empty matches in text, scanning
// left to right and taking the longest match at each position.
func (re *Regex) FindAll(text string) []Match {
	var out []Match
	for i := 0; i < len(text); {
		l := re.longestAt(text, i)
		if l == 0 {
			i++
			continue
		}
		out = append(out, Match{Start: i, End: i + l})
		i += l
	}
	return out
}

/* ----------- statistics ----------- */

// Stats summarizes the sizes of the automata of a Regex.
type Stats struct {
	NFAStates      int `json:"nfaStates"`
	RawDFAStates   int `json:"rawDfaStates"`
	DFAStates      int `json:"dfaStates"`
	DFATransitions int `json:"dfaTransitions"`
}

func (re *Regex) Stats() Stats {
	st := Stats{
		RawDFAStates:   re.rawDFA.Len(),
		DFAStates:      re.dfa.Len(),
		DFATransitions: re.dfa.TransitionCount(),
	}
	if re.nfa != nil {
		st.NFAStates = re.nfa.Len()
	}
	return st
}

/* ----------- set operations ----------- */

// Intersect returns a Regex for the strings both re and other match.
func (re *Regex) Intersect(other *Regex) *Regex {
	return fromDFA("("+re.pattern+")&("+other.pattern+")", automaton.Intersect(re.dfa, other.dfa))
}

// Union returns a Regex for the strings re or other match.
func (re *Regex) Union(other *Regex) *Regex {
	return fromDFA("("+re.pattern+")|("+other.pattern+")", automaton.Union(re.dfa, other.dfa))
}

// Complement returns a Regex for all byte strings re does not match.
func (re *Regex) Complement() *Regex {
	return fromDFA("!("+re.pattern+")", automaton.Complement(re.dfa))
}

// Reverse returns a Regex for the reversals of the strings re matches.
func (re *Regex) Reverse() *Regex {
	return fromDFA("reverse("+re.pattern+")", automaton.Reverse(re.dfa))
}
