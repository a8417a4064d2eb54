package automaton

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Closure returns all states reachable from set by epsilon transitions,
// set itself included.
func (n *NFA) Closure(set StateSet) StateSet {
	visited := make(map[int]bool, set.Len())
	stack := arraystack.New()
	for _, id := range set.ids {
		stack.Push(id)
	}
	done := make([]int, 0, set.Len())
	for !stack.Empty() {
		v, _ := stack.Pop()
		id := v.(int)
		if visited[id] {
			continue
		}
		visited[id] = true
		done = append(done, id)
		for _, next := range n.states[id].trans[Epsilon].ids {
			if !visited[next] {
				stack.Push(next)
			}
		}
	}
	return NewStateSet(done...)
}
