package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
)

// StateSet is an immutable set of state indices. Members are kept sorted and
// free of duplicates, so equal sets have equal keys regardless of the order
// in which states were added.
type StateSet struct {
	ids []int
}

// NewStateSet creates a set holding ids.
func NewStateSet(ids ...int) StateSet {
	if len(ids) == 0 {
		return StateSet{}
	}
	s := make([]int, len(ids))
	copy(s, ids)
	sort.Ints(s)
	out := s[:1]
	for _, id := range s[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return StateSet{ids: out}
}

func (s StateSet) Len() int      { return len(s.ids) }
func (s StateSet) IsEmpty() bool { return len(s.ids) == 0 }

// Contains reports whether id is a member.
func (s StateSet) Contains(id int) bool {
	i := sort.SearchInts(s.ids, id)
	return i < len(s.ids) && s.ids[i] == id
}

// Members returns the states in ascending order.
func (s StateSet) Members() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Insert returns s ∪ {id}.
func (s StateSet) Insert(id int) StateSet {
	i := sort.SearchInts(s.ids, id)
	if i < len(s.ids) && s.ids[i] == id {
		return s
	}
	out := make([]int, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	out = append(out, s.ids[i:]...)
	return StateSet{ids: out}
}

// Union returns s ∪ o.
func (s StateSet) Union(o StateSet) StateSet {
	if len(o.ids) == 0 {
		return s
	}
	if len(s.ids) == 0 {
		return o
	}
	out := make([]int, 0, len(s.ids)+len(o.ids))
	i, j := 0, 0
	for i < len(s.ids) && j < len(o.ids) {
		switch {
		case s.ids[i] < o.ids[j]:
			out = append(out, s.ids[i])
			i++
		case s.ids[i] > o.ids[j]:
			out = append(out, o.ids[j])
			j++
		default:
			out = append(out, s.ids[i])
			i++
			j++
		}
	}
	out = append(out, s.ids[i:]...)
	out = append(out, o.ids[j:]...)
	return StateSet{ids: out}
}

func (s StateSet) Equal(o StateSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

func (s StateSet) IsSubsetOf(o StateSet) bool {
	for _, id := range s.ids {
		if !o.Contains(id) {
			return false
		}
	}
	return true
}

// stateSetKey is the serialized form of a StateSet.
type stateSetKey struct {
	Members []int `hash:"name:m"`
}

// Key returns a canonical string for s, suitable as a map key. Equal sets
// yield equal keys.
func (s StateSet) Key() string {
	return string(structhash.Dump(stateSetKey{Members: s.ids}, 1))
}

func (s StateSet) String() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
