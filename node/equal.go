package node

// Equal reports structural equality: same kind, same payload fields, equal
// qualifiers and metadata, and recursively equal children. Object identity,
// provenance and the cached derived sequences are not compared. Equal is
// safe on cyclic graphs: a node pair already under comparison is assumed
// equal, so a cycle proves equality instead of recursing forever.
func (n *Node) Equal(other *Node) bool {
	return eqNodes(n, other, make(map[[2]*Node]struct{}))
}

func eqNodes(a, b *Node, visiting map[[2]*Node]struct{}) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	pair := [2]*Node{a, b}
	if _, ok := visiting[pair]; ok {
		return true
	}
	visiting[pair] = struct{}{}

	if a.kind != b.kind ||
		a.name != b.name ||
		a.rtype != b.rtype ||
		!a.quals.Equal(b.quals) ||
		!a.meta.Equal(b.meta) {
		return false
	}

	if a.homogeneous != b.homogeneous || a.arbitrary != b.arbitrary ||
		a.paramShape != b.paramShape ||
		a.variance != b.variance || a.hasDefault != b.hasDefault ||
		a.inferVariance != b.inferVariance ||
		a.refState != b.refState || a.refErr != b.refErr ||
		a.total != b.total || a.closed != b.closed ||
		a.abstract != b.abstract || a.final != b.final ||
		a.checkable != b.checkable ||
		a.async != b.async || a.generator != b.generator ||
		a.pending != b.pending {
		return false
	}

	if !eqAnySlices(a.values, b.values) ||
		!eqStrings(a.decorators, b.decorators) {
		return false
	}

	if len(a.enumValues) != len(b.enumValues) {
		return false
	}
	for i := range a.enumValues {
		if a.enumValues[i].Name != b.enumValues[i].Name ||
			!looseEq(a.enumValues[i].Value, b.enumValues[i].Value) {
			return false
		}
	}

	for _, pair := range [][2]*Node{
		{a.origin, b.origin},
		{a.spec, b.spec},
		{a.ret, b.ret},
		{a.bound, b.bound},
		{a.def, b.def},
		{a.target, b.target},
		{a.elem, b.elem},
	} {
		if !eqChild(pair[0], pair[1], visiting) {
			return false
		}
	}

	for _, pair := range [][2][]*Node{
		{a.typeParams, b.typeParams},
		{a.args, b.args},
		{a.elems, b.elems},
		{a.members, b.members},
		{a.params, b.params},
		{a.constraints, b.constraints},
		{a.methods, b.methods},
		{a.bases, b.bases},
		{a.prefix, b.prefix},
	} {
		if !eqNodeSlices(pair[0], pair[1], visiting) {
			return false
		}
	}

	if !eqFields(a.fields, b.fields, visiting) ||
		!eqFields(a.classFields, b.classFields, visiting) ||
		!eqFields(a.instFields, b.instFields, visiting) {
		return false
	}

	return eqParams(a.sigParams, b.sigParams, visiting)
}

func eqChild(a, b *Node, visiting map[[2]*Node]struct{}) bool {
	if a == nil || b == nil {
		return a == b
	}

	return eqNodes(a, b, visiting)
}

func eqNodeSlices(a, b []*Node, visiting map[[2]*Node]struct{}) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !eqChild(a[i], b[i], visiting) {
			return false
		}
	}

	return true
}

func eqFields(a, b []Field, visiting map[[2]*Node]struct{}) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name ||
			a[i].Required != b[i].Required ||
			a[i].ReadOnly != b[i].ReadOnly ||
			a[i].HasDefault != b[i].HasDefault ||
			!looseEq(a[i].Default, b[i].Default) ||
			!a[i].Metadata.Equal(b[i].Metadata) ||
			!eqChild(a[i].Type, b[i].Type, visiting) {
			return false
		}
	}

	return true
}

func eqParams(a, b []Param, visiting map[[2]*Node]struct{}) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name ||
			a[i].Kind != b[i].Kind ||
			a[i].HasDefault != b[i].HasDefault ||
			!looseEq(a[i].Default, b[i].Default) ||
			!eqChild(a[i].Type, b[i].Type, visiting) {
			return false
		}
	}

	return true
}

func eqStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func eqAnySlices(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !looseEq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// looseEq compares raw payload values with ==, treating uncomparable
// dynamic types as unequal instead of panicking.
func looseEq(a, b any) (eq bool) {
	defer func() { _ = recover() }()
	return a == b
}
