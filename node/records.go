package node

import (
	"slices"

	"github.com/tbhb/typegraph/metadata"
	"github.com/tbhb/typegraph/typex"
)

// Qualifiers is an ordered, de-duplicated set of qualifier tags. The slice
// is sorted at construction so equal sets compare element-wise.
type Qualifiers []typex.Qualifier

// NewQualifiers builds a normalized qualifier set.
func NewQualifiers(quals ...typex.Qualifier) Qualifiers {
	if len(quals) == 0 {
		return nil
	}

	owned := make(Qualifiers, len(quals))
	copy(owned, quals)
	slices.Sort(owned)

	return slices.Compact(owned)
}

// Has reports whether the set contains the qualifier.
func (q Qualifiers) Has(qual typex.Qualifier) bool {
	_, found := slices.BinarySearch(q, qual)
	return found
}

// Union returns the normalized union of two sets.
func (q Qualifiers) Union(other Qualifiers) Qualifiers {
	if len(other) == 0 {
		return q
	}

	if len(q) == 0 {
		return other
	}

	return NewQualifiers(append(slices.Clone(q), other...)...)
}

// Equal reports element-wise equality of two normalized sets.
func (q Qualifiers) Equal(other Qualifiers) bool { return slices.Equal(q, other) }

// Source is optional provenance for a node: where the described type was
// defined. Fields the builder could not determine stay zero.
type Source struct {
	Module string // package import path
	Name   string // qualified type name
	File   string
	Line   int
}

// RefState is the resolution state of a forward-reference node. A node's
// state never changes; re-resolution produces a new node.
type RefState int

const (
	// RefUnresolved means resolution was never attempted.
	RefUnresolved RefState = iota
	// RefResolved means evaluation succeeded and the node carries a target.
	RefResolved
	// RefFailed means evaluation was attempted and failed.
	RefFailed
)

// String returns a human-readable state name.
func (s RefState) String() string {
	switch s {
	case RefResolved:
		return "resolved"
	case RefFailed:
		return "failed"
	default:
		return "unresolved"
	}
}

// ParamShape describes how a callable node's parameters are specified.
type ParamShape int

const (
	// ParamsList: an ordered tuple of parameter type nodes.
	ParamsList ParamShape = iota
	// ParamsEllipsis: the open "any arity" marker.
	ParamsEllipsis
	// ParamsSpec: a single parameter-specification placeholder node.
	ParamsSpec
	// ParamsConcat: a prefix-plus-placeholder combination node.
	ParamsConcat
)

// String returns a human-readable shape name.
func (s ParamShape) String() string {
	switch s {
	case ParamsEllipsis:
		return "ellipsis"
	case ParamsSpec:
		return "paramspec"
	case ParamsConcat:
		return "concat"
	default:
		return "list"
	}
}

// Field is one named field of a structured node (record, class, protocol).
type Field struct {
	Name       string
	Type       *Node
	Required   bool
	ReadOnly   bool
	HasDefault bool
	Default    any
	Metadata   metadata.Items
}

// ParamKind distinguishes how a signature parameter is passed.
type ParamKind int

const (
	ParamPositional ParamKind = iota
	ParamKeyword
	ParamVariadic
)

// String returns a human-readable parameter kind name.
func (k ParamKind) String() string {
	switch k {
	case ParamKeyword:
		return "keyword"
	case ParamVariadic:
		return "variadic"
	default:
		return "positional"
	}
}

// Param is one named parameter of a signature node.
type Param struct {
	Name       string
	Kind       ParamKind
	Type       *Node
	HasDefault bool
	Default    any
}

// EnumValue is one name/value pair of an enumerated-value node.
type EnumValue struct {
	Name  string
	Value any
}
