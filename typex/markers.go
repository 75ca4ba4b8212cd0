package typex

import "reflect"

// Marker is a singleton annotation with no structure of its own.
// Markers are compared by identity, never by value.
type Marker struct {
	name string
}

func (m *Marker) String() string { return m.name }

var (
	// Any is the unconstrained "any type" annotation.
	Any = &Marker{name: "Any"}
	// Never is the uninhabited bottom type annotation.
	Never = &Marker{name: "Never"}
	// Self refers to the enclosing declaration's own type.
	Self = &Marker{name: "Self"}
	// LiteralString stands for "any literal string value".
	LiteralString = &Marker{name: "LiteralString"}
	// Ellipsis is the "..." marker: the indefinite-repetition tail in a
	// tuple subscription and the any-arity parameter list in Callable.
	Ellipsis = &Marker{name: "Ellipsis"}
)

// op identifies the origin of a built-in subscription form. Each op value is
// a distinct singleton so the dispatcher can test origins by identity.
type op struct {
	name string
}

func (o *op) String() string { return o.name }

var (
	opUnion     = &op{name: "Union"}
	opLiteral   = &op{name: "Literal"}
	opClassOf   = &op{name: "ClassOf"}
	opTuple     = &op{name: "Tuple"}
	opEmptyTup  = &op{name: "EmptyTuple"}
	opTypeGuard = &op{name: "TypeGuard"}
	opTypeIs    = &op{name: "TypeIs"}
	opConcat    = &op{name: "Concat"}
	opUnpack    = &op{name: "Unpack"}
	opIntersect = &op{name: "Intersect"}
	opCallable  = &op{name: "Callable"}
)

type noneType struct{}

// NoneType is the concrete type of the nil annotation. Inspecting nil and
// inspecting NoneType produce the same concrete node.
var NoneType = reflect.TypeOf(noneType{})
