package automaton

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"starfree/internal/syntax"
)

// ------------------------------------------------------------------- helpers

func newNFA(t *testing.T, pattern string) *NFA {
	t.Helper()
	tree, err := syntax.Parse(pattern)
	require.NoError(t, err, pattern)
	n, err := BuildNFA(tree)
	require.NoError(t, err, pattern)
	return n
}

func newDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	return BuildDFA(newNFA(t, pattern))
}

func newMinDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	d := newDFA(t, pattern)
	d.Minimize()
	return d
}

// words returns every string over alpha of length <= maxLen.
func words(alpha string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range level {
			for i := 0; i < len(alpha); i++ {
				next = append(next, w+alpha[i:i+1])
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// backtracker compiles pattern with regexp2, anchored at both ends.
func backtracker(t *testing.T, pattern string) func(string) bool {
	t.Helper()
	re := regexp2.MustCompile(`^(?:`+pattern+`)$`, regexp2.None)
	return func(s string) bool {
		ok, err := re.MatchString(s)
		require.NoError(t, err)
		return ok
	}
}

// lexerDFA compiles pattern with lexmachine. A non-empty string matches if
// the longest token at position 0 covers all of it.
func lexerDFA(t *testing.T, pattern string) func(string) bool {
	t.Helper()
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return string(m.Bytes), nil
	})
	require.NoError(t, lexer.Compile())
	return func(s string) bool {
		scanner, err := lexer.Scanner([]byte(s))
		require.NoError(t, err)
		tok, err, eos := scanner.Next()
		if err != nil || eos {
			return false
		}
		return tok.(string) == s
	}
}
