package node

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Sprint renders the graph as an indented tree with edge labels, one node
// per line. Shared nodes are rendered once and referenced afterwards.
func Sprint(root *Node) string {
	var b strings.Builder

	seen := map[*Node]int{}
	sprintNode(&b, root, "", "", seen)

	return b.String()
}

func sprintNode(b *strings.Builder, n *Node, label, indent string, seen map[*Node]int) {
	b.WriteString(indent)

	if label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}

	if n == nil {
		b.WriteString("<nil>\n")
		return
	}

	if id, ok := seen[n]; ok {
		fmt.Fprintf(b, "^%d %s\n", id, n.String())
		return
	}
	seen[n] = len(seen) + 1

	b.WriteString(describe(n))
	b.WriteByte('\n')

	for _, e := range n.Edges() {
		sprintNode(b, e.Target, e.Label(), indent+"  ", seen)
	}
}

func describe(n *Node) string {
	desc := n.String()

	switch n.kind {
	case KindLiteral:
		desc += " " + strings.TrimSuffix(dumpConfig.Sdump(n.values), "\n")
	case KindForwardRef:
		desc += " [" + n.refState.String()
		if n.refErr != "" {
			desc += ": " + n.refErr
		}
		desc += "]"
	case KindTuple:
		switch {
		case n.homogeneous:
			desc += " [homogeneous]"
		case n.arbitrary:
			desc += " [arbitrary]"
		case len(n.elems) == 0:
			desc += " [empty]"
		}
	case KindCallable:
		desc += " [" + n.paramShape.String() + "]"
	}

	if len(n.quals) > 0 {
		parts := make([]string, len(n.quals))
		for i, q := range n.quals {
			parts[i] = string(q)
		}
		desc += " {" + strings.Join(parts, ", ") + "}"
	}

	if !n.meta.IsEmpty() {
		desc += " @" + strings.TrimSuffix(dumpConfig.Sdump(n.meta.Values()), "\n")
	}

	return desc
}
