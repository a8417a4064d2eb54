package automaton

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"starfree/internal/syntax"
)

// tracer traces with key 'starfree.automaton'
func tracer() tracing.Trace {
	return tracing.Select("starfree.automaton")
}

// AlphabetSize is the number of input symbols: every byte value.
const AlphabetSize = 256

// Epsilon is the pseudo-symbol of transitions which consume no input.
const Epsilon = AlphabetSize

type nfaState struct {
	accept bool
	trans  map[int]StateSet // symbol -> targets
}

// NFA is a Thompson automaton. States are addressed by index; state 0 is
// the start state and the last state is the single accepting one.
type NFA struct {
	states []nfaState
}

func (n *NFA) Len() int   { return len(n.states) }
func (n *NFA) Start() int { return 0 }
func (n *NFA) Final() int { return len(n.states) - 1 }

func (n *NFA) Accepting(id int) bool { return n.states[id].accept }

// Targets returns the states reachable from id by one transition on sym,
// where sym is a byte value or Epsilon.
func (n *NFA) Targets(id, sym int) StateSet { return n.states[id].trans[sym] }

func (n *NFA) add() int {
	n.states = append(n.states, nfaState{})
	return len(n.states) - 1
}

func (n *NFA) link(from, sym, to int) {
	s := &n.states[from]
	if s.trans == nil {
		s.trans = make(map[int]StateSet)
	}
	s.trans[sym] = s.trans[sym].Insert(to)
}

/* ----------- Thompson construction ----------- */

// frame is a pending fragment on the build stack. A fragment starts at
// entry and reports its exit state once completed.
type frame struct {
	node  *syntax.Node
	entry int
	phase int
	aux   [2]int
}

// BuildNFA compiles a syntax tree. It fails for an empty tree, a node with
// a missing operand, and any node tag it does not know.
func BuildNFA(tree *syntax.Node) (*NFA, error) {
	if tree == nil {
		return nil, syntax.ErrEmptyTree
	}
	n := &NFA{}
	start := n.add()
	entry := n.add()
	n.link(start, Epsilon, entry)
	exit, err := n.build(tree, entry)
	if err != nil {
		return nil, err
	}
	final := n.add()
	n.link(exit, Epsilon, final)
	n.states[final].accept = true
	tracer().Debugf("NFA for %d syntax nodes has %d states", tree.Size(), n.Len())
	return n, nil
}

// build constructs the fragment for root starting at entry and returns its
// exit. It walks the tree with an explicit stack instead of recursion.
func (n *NFA) build(root *syntax.Node, entry int) (int, error) {
	stack := arraystack.New()
	stack.Push(&frame{node: root, entry: entry})
	push := func(node *syntax.Node, entry int) error {
		if node == nil {
			return errors.Wrap(syntax.ErrEmptyTree, "missing operand")
		}
		stack.Push(&frame{node: node, entry: entry})
		return nil
	}
	var exit int // exit of the most recently completed fragment
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		switch f.node.Op {
		case syntax.OpLiteral:
			exit = n.add()
			n.link(f.entry, int(f.node.Byte), exit)
			stack.Pop()
		case syntax.OpDot:
			exit = n.add()
			for c := 0; c < AlphabetSize; c++ {
				n.link(f.entry, c, exit)
			}
			stack.Pop()
		case syntax.OpConcat:
			switch f.phase {
			case 0:
				f.phase++
				if err := push(f.node.Left, f.entry); err != nil {
					return 0, err
				}
			case 1:
				f.phase++
				if err := push(f.node.Right, exit); err != nil {
					return 0, err
				}
			default:
				stack.Pop()
			}
		case syntax.OpUnion:
			switch f.phase {
			case 0:
				l, r := n.add(), n.add()
				n.link(f.entry, Epsilon, l)
				n.link(f.entry, Epsilon, r)
				f.aux[0] = r
				f.phase++
				if err := push(f.node.Left, l); err != nil {
					return 0, err
				}
			case 1:
				f.aux[1] = exit // left arm's exit
				f.phase++
				if err := push(f.node.Right, f.aux[0]); err != nil {
					return 0, err
				}
			default:
				join := n.add()
				n.link(f.aux[1], Epsilon, join)
				n.link(exit, Epsilon, join)
				exit = join
				stack.Pop()
			}
		case syntax.OpStar:
			switch f.phase {
			case 0:
				loop := n.add()
				n.link(f.entry, Epsilon, loop)
				f.aux[0] = loop
				f.phase++
				if err := push(f.node.Left, loop); err != nil {
					return 0, err
				}
			default:
				loop := f.aux[0]
				n.link(exit, Epsilon, loop) // repeat
				exit = n.add()
				n.link(loop, Epsilon, exit) // leave
				stack.Pop()
			}
		default:
			return 0, errors.Wrapf(syntax.ErrUnsupportedNode, "%s", f.node.Op)
		}
	}
	return exit, nil
}

/* ----------- simulation ----------- */

// Step returns the closure of all states reachable from set on byte c.
func (n *NFA) Step(set StateSet, c byte) StateSet {
	var next StateSet
	for _, id := range set.ids {
		next = next.Union(n.states[id].trans[int(c)])
	}
	if next.IsEmpty() {
		return next
	}
	return n.Closure(next)
}

// AnyAccepting reports whether set contains an accepting state.
func (n *NFA) AnyAccepting(set StateSet) bool {
	for _, id := range set.ids {
		if n.states[id].accept {
			return true
		}
	}
	return false
}

// Accepts runs the NFA on input.
func (n *NFA) Accepts(input []byte) bool {
	cur := n.Closure(NewStateSet(n.Start()))
	for _, c := range input {
		cur = n.Step(cur, c)
		if cur.IsEmpty() {
			return false
		}
	}
	return n.AnyAccepting(cur)
}
