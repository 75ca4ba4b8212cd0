package typex

import (
	"fmt"
	"strings"
)

// Form identifies which subscription constructor produced an App.
type Form int

const (
	FormGeneric Form = iota // Subscript / GenericDecl.Of
	FormUnion
	FormLiteral
	FormClassOf
	FormTuple
	FormEmptyTuple
	FormTypeGuard
	FormTypeIs
	FormConcat
	FormUnpack
	FormIntersect
	FormCallable

	// FormTotal is a constant that represents the total number of forms defined
	FormTotal = int(iota)
)

// App is a subscription form: an origin applied to ordered arguments, the
// annotation-level analogue of X[a, b]. Apps are immutable; two structurally
// equal Apps built by separate constructor calls are still distinct
// annotation objects and are never conflated by the inspector.
type App struct {
	form   Form
	origin any // the subscripted constructor for FormGeneric, an internal op otherwise
	args   []any
}

// Form reports which constructor built this App.
func (a *App) Form() Form { return a.form }

// Origin returns the subscripted constructor for FormGeneric forms and nil
// for built-in forms.
func (a *App) Origin() any {
	if a.form == FormGeneric {
		return a.origin
	}
	return nil
}

// Args returns the ordered subscription arguments.
func (a *App) Args() []any {
	out := make([]any, len(a.args))
	copy(out, a.args)
	return out
}

// NumArgs returns the argument count without copying.
func (a *App) NumArgs() int { return len(a.args) }

// Arg returns the i-th subscription argument.
func (a *App) Arg(i int) any { return a.args[i] }

func (a *App) String() string {
	parts := make([]string, len(a.args))
	for i, arg := range a.args {
		parts[i] = fmt.Sprintf("%v", arg)
	}

	name := "?"
	if s, ok := a.origin.(fmt.Stringer); ok {
		name = s.String()
	} else if a.origin != nil {
		name = fmt.Sprintf("%v", a.origin)
	}

	return name + "[" + strings.Join(parts, ", ") + "]"
}

func newApp(form Form, origin any, args []any) *App {
	owned := make([]any, len(args))
	copy(owned, args)

	return &App{form: form, origin: origin, args: owned}
}

// Union builds the native union annotation over the given members, in order.
func Union(members ...any) *App { return newApp(FormUnion, opUnion, members) }

// Optional is shorthand for Union(t, nil).
func Optional(t any) *App { return Union(t, nil) }

// Literal builds a literal-value-set annotation. The values are carried
// verbatim; they are values, not types, and are never inspected recursively.
func Literal(values ...any) *App { return newApp(FormLiteral, opLiteral, values) }

// ClassOf builds the "class object of T" annotation.
func ClassOf(t any) *App { return newApp(FormClassOf, opClassOf, []any{t}) }

// Tuple builds a tuple annotation. Tuple(elem, Ellipsis) is the homogeneous
// indefinite-length form; Tuple() with no arguments is the unparameterized
// arbitrary-content form. Use EmptyTuple for the explicitly empty tuple.
func Tuple(elems ...any) *App { return newApp(FormTuple, opTuple, elems) }

// EmptyTuple builds the explicitly-empty tuple annotation: zero elements,
// distinct from the unparameterized Tuple().
func EmptyTuple() *App { return newApp(FormEmptyTuple, opEmptyTup, nil) }

// Callable builds a callable annotation. The supported shapes are
// Callable() for "any signature", and Callable(params, ret) where params is
// one of: a []any of parameter annotations, Ellipsis, a *ParamSpec, or a
// Concat form. Anything else is classified conservatively by the inspector.
func Callable(args ...any) *App { return newApp(FormCallable, opCallable, args) }

// TypeGuard builds the affirmative narrowing annotation.
func TypeGuard(t any) *App { return newApp(FormTypeGuard, opTypeGuard, []any{t}) }

// TypeIs builds the bidirectional narrowing annotation.
func TypeIs(t any) *App { return newApp(FormTypeIs, opTypeIs, []any{t}) }

// Concat builds a prepend-to-parameter-specification annotation. The last
// argument must be a *ParamSpec; the preceding arguments are the prefix.
func Concat(args ...any) *App { return newApp(FormConcat, opConcat, args) }

// Unpack builds an unpack annotation around a variadic tuple or TypeVarTuple.
func Unpack(t any) *App { return newApp(FormUnpack, opUnpack, []any{t}) }

// Intersect builds an intersection annotation over the given members.
func Intersect(members ...any) *App { return newApp(FormIntersect, opIntersect, members) }

// Subscript applies an arbitrary origin to ordered type arguments.
func Subscript(origin any, args ...any) *App { return newApp(FormGeneric, origin, args) }
