package node

import "strconv"

// EdgeKind names the semantic relationship between a node and one child.
type EdgeKind int

const (
	EdgeOrigin EdgeKind = iota
	EdgeTypeArg
	EdgeMember
	EdgeElement
	EdgeParam
	EdgeSpec
	EdgeReturn
	EdgeBound
	EdgeConstraint
	EdgeDefault
	EdgeTarget
	EdgeSupertype
	EdgeValue
	EdgeResolved
	EdgeField
	EdgeBase
	EdgeMethod
	EdgeTypeParam
	EdgePrefix
	EdgeAttribute
	EdgeValueType
	EdgeSignature
)

// String returns a human-readable relationship name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeOrigin:
		return "origin"
	case EdgeTypeArg:
		return "typearg"
	case EdgeMember:
		return "member"
	case EdgeElement:
		return "element"
	case EdgeParam:
		return "param"
	case EdgeSpec:
		return "spec"
	case EdgeReturn:
		return "return"
	case EdgeBound:
		return "bound"
	case EdgeConstraint:
		return "constraint"
	case EdgeDefault:
		return "default"
	case EdgeTarget:
		return "target"
	case EdgeSupertype:
		return "supertype"
	case EdgeValue:
		return "value"
	case EdgeResolved:
		return "resolved"
	case EdgeField:
		return "field"
	case EdgeBase:
		return "base"
	case EdgeMethod:
		return "method"
	case EdgeTypeParam:
		return "typeparam"
	case EdgePrefix:
		return "prefix"
	case EdgeAttribute:
		return "attribute"
	case EdgeValueType:
		return "valuetype"
	case EdgeSignature:
		return "signature"
	default:
		return "edge(" + strconv.Itoa(int(k)) + ")"
	}
}

// Edge is one labeled, ordered link from a node to a child. Index is the
// position among siblings with the same EdgeKind; Name is set for edges
// addressed by name (fields, methods, named parameters).
type Edge struct {
	Kind   EdgeKind
	Index  int
	Name   string
	Target *Node
}

// Label renders the edge descriptor, e.g. "member[2]" or "field[Email]".
func (e Edge) Label() string {
	switch {
	case e.Name != "":
		return e.Kind.String() + "[" + e.Name + "]"
	case e.Index >= 0:
		return e.Kind.String() + "[" + strconv.Itoa(e.Index) + "]"
	default:
		return e.Kind.String()
	}
}
