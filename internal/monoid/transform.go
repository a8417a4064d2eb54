package monoid

import (
	"strconv"
	"strings"

	"github.com/cnf/structhash"
)

// Transformation is a total function on the states {0..N} of a DFA extended
// by the dead state N = len(t)-1. Index i holds the image of state i.
type Transformation []int

// Identity returns the identity on {0..n}.
func Identity(n int) Transformation {
	t := make(Transformation, n+1)
	for i := range t {
		t[i] = i
	}
	return t
}

// Sink is the dead state of t.
func (t Transformation) Sink() int { return len(t) - 1 }

// Then composes t and u, applying t first: t.Then(u)(i) == u(t(i)).
func (t Transformation) Then(u Transformation) Transformation {
	if len(t) != len(u) {
		panic("monoid: composing transformations of different size")
	}
	r := make(Transformation, len(t))
	for i, j := range t {
		r[i] = u[j]
	}
	return r
}

func (t Transformation) Equal(u Transformation) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// IsIdempotent reports whether t.Then(t) equals t.
func (t Transformation) IsIdempotent() bool {
	for _, j := range t {
		if t[j] != j {
			return false
		}
	}
	return true
}

type transformationKey struct {
	Image []int `hash:"name:i"`
}

func (t Transformation) key() string {
	return string(structhash.Dump(transformationKey{Image: t}, 1))
}

// String lists the images of the live states, with the dead state shown
// as '-', e.g. "[1 - 0]".
func (t Transformation) String() string {
	parts := make([]string, 0, len(t))
	for _, j := range t[:len(t)-1] {
		if j == t.Sink() {
			parts = append(parts, "-")
		} else {
			parts = append(parts, strconv.Itoa(j))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
