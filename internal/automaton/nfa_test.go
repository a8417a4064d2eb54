package automaton

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfree/internal/syntax"
)

func TestNFAShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "starfree.automaton")
	defer teardown()
	//
	for _, p := range []string{"a", "ab", "a|b", "a*", "(a|c)*", "(a.*bc|bd)", "((a|b)*c)*"} {
		n := newNFA(t, p)
		assert.Equal(t, 0, n.Start(), p)
		assert.Equal(t, n.Len()-1, n.Final(), p)
		for id := 0; id < n.Len(); id++ {
			assert.Equal(t, id == n.Final(), n.Accepting(id), "%s: state %d", p, id)
		}
		assert.True(t, n.Targets(n.Final(), Epsilon).IsEmpty(), p)
	}
}

func TestNFALiteral(t *testing.T) {
	n := newNFA(t, "a")
	// start -ε-> entry -a-> exit -ε-> final
	require.Equal(t, 4, n.Len())
	assert.Equal(t, []int{1}, n.Targets(0, Epsilon).Members())
	assert.Equal(t, []int{2}, n.Targets(1, 'a').Members())
	assert.True(t, n.Targets(1, 'b').IsEmpty())
	assert.Equal(t, []int{3}, n.Targets(2, Epsilon).Members())
}

func TestNFADot(t *testing.T) {
	n := newNFA(t, ".")
	for c := 0; c < AlphabetSize; c++ {
		assert.Equal(t, []int{2}, n.Targets(1, c).Members())
	}
	assert.True(t, n.Targets(1, Epsilon).IsEmpty())
}

func TestNFAAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "starfree.automaton")
	defer teardown()
	//
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "aa", "b"}},
		{"a|b", []string{"a", "b"}, []string{"", "c", "ab"}},
		{"a*c", []string{"c", "ac", "aaaaac"}, []string{"a", "", "ca"}},
		{"(a.*bc|bd)", []string{"bd", "abc", "adddbc", "abcbc"}, []string{"ab", "bc", "abd"}},
		{"(a|c)*", []string{"", "a", "c", "acca"}, []string{"b", "ab"}},
		{"a**", []string{"", "aaa"}, []string{"b"}},
		{"(a*)*b", []string{"b", "aab"}, []string{"", "a"}},
	}
	for _, tt := range tests {
		n := newNFA(t, tt.pattern)
		for _, w := range tt.accept {
			assert.True(t, n.Accepts([]byte(w)), "%s should accept %q", tt.pattern, w)
		}
		for _, w := range tt.reject {
			assert.False(t, n.Accepts([]byte(w)), "%s should reject %q", tt.pattern, w)
		}
	}
}

func TestNFAUnionArmsConverge(t *testing.T) {
	// both arms must reach the same exit, whatever follows the union
	n := newNFA(t, "(a|bb)c")
	for _, w := range []string{"ac", "bbc"} {
		assert.True(t, n.Accepts([]byte(w)), w)
	}
	for _, w := range []string{"a", "bb", "c", "bc", "abbc"} {
		assert.False(t, n.Accepts([]byte(w)), w)
	}
}

func TestNFAErrors(t *testing.T) {
	_, err := BuildNFA(nil)
	assert.Equal(t, syntax.ErrEmptyTree, errors.Cause(err))
	//
	_, err = BuildNFA(&syntax.Node{Op: syntax.OpConcat, Left: syntax.Literal('a')})
	assert.Equal(t, syntax.ErrEmptyTree, errors.Cause(err))
	//
	_, err = BuildNFA(&syntax.Node{Op: syntax.OpStar})
	assert.Equal(t, syntax.ErrEmptyTree, errors.Cause(err))
	//
	_, err = BuildNFA(syntax.Union(syntax.Literal('a'), &syntax.Node{Op: 99}))
	assert.Equal(t, syntax.ErrUnsupportedNode, errors.Cause(err))
}

func TestClosureIdempotentAndMonotone(t *testing.T) {
	for _, p := range []string{"(a|c)*", "((a|b)*c)*d", "(a*)*|b"} {
		n := newNFA(t, p)
		for id := 0; id < n.Len(); id++ {
			s := NewStateSet(id)
			c := n.Closure(s)
			assert.True(t, s.IsSubsetOf(c), "%s: closure is not extensive at %d", p, id)
			assert.True(t, c.Equal(n.Closure(c)), "%s: closure not idempotent at %d", p, id)
			if id > 0 {
				sup := NewStateSet(id-1, id)
				assert.True(t, c.IsSubsetOf(n.Closure(sup)), "%s: closure not monotone at %d", p, id)
			}
		}
	}
}

func TestClosureOfStar(t *testing.T) {
	n := newNFA(t, "a*")
	// 0 -ε-> 1 -ε-> loop(2) -ε-> exit; loop -ε-> body entry; exit -ε-> final
	c := n.Closure(NewStateSet(0))
	assert.True(t, n.AnyAccepting(c))
	assert.True(t, c.Contains(n.Final()))
}

func TestNFADeepTree(t *testing.T) {
	// a left-leaning concatenation and a nested star, deep enough to break
	// a recursive builder
	const depth = 20000
	tree := syntax.Literal('a')
	for i := 1; i < depth; i++ {
		tree = syntax.Concat(tree, syntax.Literal('a'))
	}
	n, err := BuildNFA(tree)
	require.NoError(t, err)
	input := make([]byte, depth)
	for i := range input {
		input[i] = 'a'
	}
	assert.True(t, n.Accepts(input))
	assert.False(t, n.Accepts(input[1:]))
	//
	nested := syntax.Literal('b')
	for i := 0; i < depth; i++ {
		nested = syntax.Star(nested)
	}
	n, err = BuildNFA(nested)
	require.NoError(t, err)
	assert.True(t, n.Accepts([]byte("bbb")))
	assert.False(t, n.Accepts([]byte("ba")))
}
