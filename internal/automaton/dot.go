package automaton

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Graph is an automaton which can render itself in Graphviz DOT format.
type Graph interface {
	WriteDOT(w io.Writer) error
}

var (
	_ Graph = (*NFA)(nil)
	_ Graph = (*DFA)(nil)
)

// ErrNilGraph is returned when a nil automaton is asked to render itself.
var ErrNilGraph = errors.New("automaton: nil graph")

// dotWriter remembers the first write error, so callers check once.
type dotWriter struct {
	w   io.Writer
	err error
}

func (dw *dotWriter) printf(format string, args ...interface{}) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

func (dw *dotWriter) header(accepting []int) {
	dw.printf("digraph G {\nrankdir=LR;\nempty [label = \"\" shape = plaintext];\n")
	if len(accepting) > 0 {
		names := make([]string, len(accepting))
		for i, s := range accepting {
			names[i] = fmt.Sprintf("s%d", s)
		}
		dw.printf("node [shape = doublecircle] %s;\n", strings.Join(names, " "))
	}
	dw.printf("node [shape = circle];\nempty -> s0 [label = \"start\"];\n")
}

func (dw *dotWriter) edge(from, to, sym int) {
	dw.printf("s%d -> s%d [label = \"%s\"];\n", from, to, symbolLabel(sym))
}

func (dw *dotWriter) footer() error {
	dw.printf("}\n")
	return dw.err
}

// symbolLabel renders a byte (or Epsilon) for use inside a quoted DOT label.
func symbolLabel(sym int) string {
	switch {
	case sym == Epsilon:
		return "ε"
	case sym == '"' || sym == '\\':
		return `\` + string(rune(sym))
	case sym >= 0x20 && sym < 0x7f:
		return string(rune(sym))
	}
	return fmt.Sprintf(`\\x%02x`, sym)
}

// WriteDOT renders the NFA, one edge per state, symbol and target.
func (n *NFA) WriteDOT(w io.Writer) error {
	if n == nil {
		return ErrNilGraph
	}
	dw := &dotWriter{w: w}
	dw.header([]int{n.Final()})
	for id := range n.states {
		if len(n.states[id].trans) == 0 {
			continue
		}
		for sym := 0; sym <= Epsilon; sym++ {
			for _, to := range n.states[id].trans[sym].ids {
				dw.edge(id, to, sym)
			}
		}
	}
	return dw.footer()
}

// WriteDOT renders the DFA, one edge per state and byte with a transition.
func (d *DFA) WriteDOT(w io.Writer) error {
	if d == nil {
		return ErrNilGraph
	}
	dw := &dotWriter{w: w}
	var accepting []int
	for id := range d.states {
		if d.states[id].accept {
			accepting = append(accepting, id)
		}
	}
	dw.header(accepting)
	for id := range d.states {
		for c, to := range d.states[id].next {
			if to != NoState {
				dw.edge(id, to, c)
			}
		}
	}
	return dw.footer()
}

// WriteFile renders g and writes it to path. The graph is rendered in
// memory first, so the file is either written completely or not touched.
func WriteFile(path string, g Graph) error {
	var buf bytes.Buffer
	if err := g.WriteDOT(&buf); err != nil {
		return errors.Wrap(err, "render graph")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write graph to %s", path)
	}
	return nil
}
