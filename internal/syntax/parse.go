package syntax

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Grammar
//
//	alternation = sequence { '|' sequence }
//	sequence    = repetition { repetition }
//	repetition  = atom { '*' }
//	atom        = '.' | '(' alternation ')' | Escaped | Char

type alternation struct {
	Branches []*sequence `parser:"@@ ( '|' @@ )*"`
}

type sequence struct {
	Factors []*repetition `parser:"@@+"`
}

type repetition struct {
	Atom  *atom    `parser:"@@"`
	Stars []string `parser:"@'*'*"`
}

type atom struct {
	Dot     bool         `parser:"  @'.'"`
	Group   *alternation `parser:"| '(' @@ ')'"`
	Escaped *string      `parser:"| @Escaped"`
	Char    *string      `parser:"| @Char"`
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\[\s\S]`},
	{Name: "Meta", Pattern: `[|*().]`},
	{Name: "Char", Pattern: `[\s\S]`},
})

var parser = participle.MustBuild[alternation](participle.Lexer(regexLexer))

// Parse reads a pattern into a syntax tree. Supported are literals, '.',
// concatenation, '|', '*' and parentheses; a backslash makes the next
// character literal. Characters outside ASCII are matched byte by byte.
func Parse(pattern string) (*Node, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	ast, err := parser.ParseString("pattern", pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", pattern)
	}
	tree := ast.node()
	tracer().Debugf("parsed %q into %d nodes", pattern, tree.Size())
	return tree, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

/* ----------- participle AST → syntax tree ----------- */

func (a *alternation) node() *Node {
	n := a.Branches[0].node()
	for _, br := range a.Branches[1:] {
		n = Union(n, br.node())
	}
	return n
}

func (s *sequence) node() *Node {
	n := s.Factors[0].node()
	for _, f := range s.Factors[1:] {
		n = Concat(n, f.node())
	}
	return n
}

func (r *repetition) node() *Node {
	n := r.Atom.node()
	if len(r.Stars) > 0 { // x** == x*
		n = Star(n)
	}
	return n
}

func (a *atom) node() *Node {
	switch {
	case a.Dot:
		return Dot()
	case a.Group != nil:
		return a.Group.node()
	case a.Escaped != nil:
		return bytesNode((*a.Escaped)[1:])
	default:
		return bytesNode(*a.Char)
	}
}

// bytesNode concatenates the bytes of a (possibly multi-byte) character.
func bytesNode(s string) *Node {
	n := Literal(s[0])
	for i := 1; i < len(s); i++ {
		n = Concat(n, Literal(s[i]))
	}
	return n
}
