package automaton

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func TestComplete(t *testing.T) {
	d := newMinDFA(t, "ab")
	c := d.Complete()
	assert.Equal(t, d.Len()+1, c.Len())
	assert.Equal(t, c.Len()*AlphabetSize, c.TransitionCount())
	for _, w := range words("abc", 4) {
		assert.Equal(t, d.Accepts([]byte(w)), c.Accepts([]byte(w)), w)
	}
	// already total
	cc := c.Complete()
	assert.Equal(t, c.Len(), cc.Len())
}

func TestComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "starfree.automaton")
	defer teardown()
	//
	for _, p := range []string{"a", "a*c", "(a|c)*", "(aa)*", "."} {
		d := newMinDFA(t, p)
		c := Complement(d)
		for _, w := range words("abc", 5) {
			assert.NotEqual(t, d.Accepts([]byte(w)), c.Accepts([]byte(w)), "%s on %q", p, w)
		}
	}
	// the complement of everything is empty
	all := newMinDFA(t, ".*")
	none := Complement(all)
	assert.Equal(t, 1, none.Len())
	assert.Equal(t, 0, none.TransitionCount())
	assert.False(t, none.Accepts(nil))
}

func TestIntersectUnion(t *testing.T) {
	pairs := [][2]string{
		{"(a|b)*", "a*c*"},
		{"a*b", "ab*"},
		{"(aa)*", "(aaa)*"},
		{"a", "b"},
	}
	for _, pr := range pairs {
		x, y := newMinDFA(t, pr[0]), newMinDFA(t, pr[1])
		and, or := Intersect(x, y), Union(x, y)
		for _, w := range words("abc", 6) {
			in := []byte(w)
			assert.Equal(t, x.Accepts(in) && y.Accepts(in), and.Accepts(in), "%v ∩ on %q", pr, w)
			assert.Equal(t, x.Accepts(in) || y.Accepts(in), or.Accepts(in), "%v ∪ on %q", pr, w)
		}
	}
	disjoint := Intersect(newMinDFA(t, "a"), newMinDFA(t, "b"))
	assert.Equal(t, 1, disjoint.Len())
}

func TestReverse(t *testing.T) {
	for _, p := range []string{"ab", "a*c", "(ab|a)*c", "a(b|c)*d", "(a.*bc|bd)"} {
		d := newMinDFA(t, p)
		r := Reverse(d)
		for _, w := range words("abcd", 5) {
			assert.Equal(t, d.Accepts([]byte(w)), r.Accepts([]byte(reverse(w))), "%s on %q", p, w)
		}
	}
}
