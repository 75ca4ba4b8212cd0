package node

import (
	"fmt"
	"iter"
)

type walkConfig struct {
	pred     func(*Node) bool
	maxDepth int
	bounded  bool
}

// WalkOption configures a Walk call.
type WalkOption func(*walkConfig)

// Filter yields only nodes the predicate accepts. Traversal still descends
// through rejected nodes.
func Filter(pred func(*Node) bool) WalkOption {
	return func(c *walkConfig) { c.pred = pred }
}

// MaxDepth bounds the walk: 0 yields only the root. Negative values are a
// caller error reported by Walk.
func MaxDepth(depth int) WalkOption {
	return func(c *walkConfig) {
		c.maxDepth = depth
		c.bounded = true
	}
}

// Walk returns a restartable depth-first pre-order iterator over the graph.
// Each node is yielded exactly once by identity even when it is reachable
// through several parents, so the sequence is finite for any graph the
// inspector produces. The traversal is iterative: an explicit stack, no
// native recursion.
func Walk(root *Node, opts ...WalkOption) (iter.Seq[*Node], error) {
	cfg := walkConfig{maxDepth: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.bounded && cfg.maxDepth < 0 {
		return nil, fmt.Errorf("node: negative walk depth %d", cfg.maxDepth)
	}

	seq := func(yield func(*Node) bool) {
		if root == nil {
			return
		}

		type item struct {
			n     *Node
			depth int
		}

		// Shallowest depth each node was expanded at. A shared node first
		// reached through a deep path may have had its children withheld
		// by the depth bound, so a strictly shallower occurrence expands
		// it again; the node itself is still yielded only once.
		seen := map[*Node]int{}
		stack := []item{{n: root, depth: 0}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			prev, visited := seen[top.n]
			if visited && prev <= top.depth {
				continue
			}
			seen[top.n] = top.depth

			if !visited && (cfg.pred == nil || cfg.pred(top.n)) {
				if !yield(top.n) {
					return
				}
			}

			if cfg.maxDepth >= 0 && top.depth >= cfg.maxDepth {
				continue
			}

			kids := top.n.Children()
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, item{n: kids[i], depth: top.depth + 1})
			}
		}
	}

	return seq, nil
}
