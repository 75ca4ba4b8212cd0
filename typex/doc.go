// Package typex defines the annotation expression domain consumed by the
// inspector.
//
// An annotation is an ordinary Go value describing a type: a reflect.Type, a
// string (forward reference), nil (the none type), one of the marker
// singletons (Any, Never, Self, LiteralString, Ellipsis), a type parameter
// (TypeVar, ParamSpec, TypeVarTuple), a declaration (NewType, Alias,
// GenericDecl), a subscription form built by constructors such as Union,
// Literal, Tuple or Callable, or a qualifier/metadata wrapper.
//
// Subscription forms are immutable once constructed. The one deliberate
// exception is Alias.Value, which stays assignable so callers can tie
// self-referential knots:
//
//	a := typex.NewAlias("JSON", nil)
//	a.Value = typex.Union(
//		reflect.TypeOf(""),
//		typex.Dict.Of(reflect.TypeOf(""), a),
//	)
package typex
