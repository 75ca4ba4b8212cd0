package inspect

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// classify dispatches a bare annotation (wrappers already stripped) to a
// node kind. It never returns a nil node; inputs outside the annotation
// domain become failed reference nodes naming the offending runtime type.
func (ins *inspector) classify(bare any, fr *frame) (*node.Node, error) {
	if bare == nil {
		return node.NewConcrete(typex.NoneType), nil
	}

	switch v := bare.(type) {
	case string:
		return ins.resolveRef(v, fr)

	case *typex.Ref:
		return ins.resolveRef(v.Name(), fr)

	case *typex.Marker:
		return ins.classifyMarker(v), nil

	case *typex.TypeVarTuple:
		return ins.classifyTypeVarTuple(v, fr)

	case *typex.TypeVar:
		return ins.classifyTypeVar(v, fr)

	case *typex.ParamSpec:
		return ins.classifyParamSpec(v, fr)

	case *typex.Distinct:
		base, err := ins.inspect(v.Base(), fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewNewType(v.Name(), base).With(node.SetDecl(v)), nil

	case *typex.Alias:
		return ins.classifyAlias(v, fr)

	case *typex.App:
		return ins.classifyApp(v, fr)

	case *typex.GenericDecl:
		return ins.classifyGenericDecl(v, fr)

	case reflect.Type:
		return node.NewConcrete(v), nil
	}

	ins.log.Debug("unclassifiable annotation", zap.String("type", fmt.Sprintf("%T", bare)))
	return unclassified(bare), nil
}

func unclassified(bare any) *node.Node {
	return node.NewFailedRef(refText(bare),
		fmt.Sprintf("unsupported annotation type %T", bare))
}

func (ins *inspector) classifyMarker(m *typex.Marker) *node.Node {
	switch m {
	case typex.Any:
		return node.NewAny()
	case typex.Never:
		return node.NewNever()
	case typex.Self:
		return node.NewSelf()
	case typex.LiteralString:
		return node.NewLiteralString()
	case typex.Ellipsis:
		return node.NewEllipsis()
	}
	return unclassified(m)
}

func (ins *inspector) classifyTypeVar(v *typex.TypeVar, fr *frame) (*node.Node, error) {
	opts := node.TypeVarOpts{
		Variance:      v.Variance(),
		InferVariance: v.InferredVariance(),
	}
	var err error
	if b := v.BoundType(); b != nil {
		if opts.Bound, err = ins.inspect(b, fr.child()); err != nil {
			return nil, err
		}
	}
	for _, c := range v.ConstraintTypes() {
		cn, err := ins.inspect(c, fr.child())
		if err != nil {
			return nil, err
		}
		opts.Constraints = append(opts.Constraints, cn)
	}
	if d, ok := v.DefaultType(); ok {
		if opts.Default, err = ins.inspect(d, fr.child()); err != nil {
			return nil, err
		}
		opts.HasDefault = true
	}
	return node.NewTypeVar(v.Name(), opts), nil
}

func (ins *inspector) classifyParamSpec(v *typex.ParamSpec, fr *frame) (*node.Node, error) {
	var def *node.Node
	var hasDefault bool
	if d, ok := v.DefaultType(); ok {
		var err error
		if def, err = ins.inspect(d, fr.child()); err != nil {
			return nil, err
		}
		hasDefault = true
	}
	return node.NewParamSpec(v.Name(), def, hasDefault), nil
}

func (ins *inspector) classifyTypeVarTuple(v *typex.TypeVarTuple, fr *frame) (*node.Node, error) {
	var def *node.Node
	var hasDefault bool
	if d, ok := v.DefaultType(); ok {
		var err error
		if def, err = ins.inspect(d, fr.child()); err != nil {
			return nil, err
		}
		hasDefault = true
	}
	return node.NewTypeVarTuple(v.Name(), def, hasDefault), nil
}

// classifyAlias memoizes an incomplete alias node before descending into the
// value so a self-referential alias ties back to its own node instead of
// recursing forever.
func (ins *inspector) classifyAlias(a *typex.Alias, fr *frame) (*node.Node, error) {
	params, err := ins.inspectAll(a.Params(), fr)
	if err != nil {
		return nil, err
	}

	shell := node.NewAlias(a.Name(), params).With(node.SetDecl(a))
	key, _ := memoKey(a)
	fr.seen[key] = shell

	vf := fr.child()
	if len(a.Scope) > 0 {
		vf.cfg.LocalNS = MergeScopes(a.Scope, vf.cfg.LocalNS)
	}
	value, err := ins.inspect(a.Value, vf)
	if err != nil {
		delete(fr.seen, key)
		return nil, err
	}
	node.CompleteAlias(shell, value)
	return shell, nil
}

func (ins *inspector) classifyGenericDecl(d *typex.GenericDecl, fr *frame) (*node.Node, error) {
	params, err := ins.inspectAll(d.Params(), fr)
	if err != nil {
		return nil, err
	}
	return node.NewGeneric(d.Name(), d, params), nil
}

func (ins *inspector) classifyApp(app *typex.App, fr *frame) (*node.Node, error) {
	switch app.Form() {
	case typex.FormUnion:
		members, err := ins.inspectAll(app.Args(), fr)
		if err != nil {
			return nil, err
		}
		return node.NewUnion(members), nil

	case typex.FormLiteral:
		// Literal payloads are values, not annotations; taken verbatim.
		return node.NewLiteral(app.Args()), nil

	case typex.FormClassOf:
		target, err := ins.inspect(app.Arg(0), fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewClassOf(target), nil

	case typex.FormTuple:
		return ins.classifyTuple(app, fr)

	case typex.FormEmptyTuple:
		return node.NewEmptyTuple(), nil

	case typex.FormTypeGuard:
		target, err := ins.inspect(app.Arg(0), fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewTypeGuard(target), nil

	case typex.FormTypeIs:
		target, err := ins.inspect(app.Arg(0), fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewTypeIs(target), nil

	case typex.FormUnpack:
		target, err := ins.inspect(app.Arg(0), fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewUnpack(target), nil

	case typex.FormConcat:
		return ins.classifyConcat(app, fr)

	case typex.FormIntersect:
		members, err := ins.inspectAll(app.Args(), fr)
		if err != nil {
			return nil, err
		}
		return node.NewIntersection(members), nil

	case typex.FormCallable:
		return ins.classifyCallable(app, fr)

	case typex.FormGeneric:
		return ins.classifySubscript(app, fr)
	}

	return unclassified(app), nil
}

// classifyTuple distinguishes the three tuple shapes: a trailing ellipsis
// after exactly one element means homogeneous, no arguments means arbitrary
// length and content, anything else is a fixed heterogeneous sequence.
func (ins *inspector) classifyTuple(app *typex.App, fr *frame) (*node.Node, error) {
	args := app.Args()
	if len(args) == 0 {
		return node.NewArbitraryTuple(), nil
	}
	if len(args) == 2 && args[1] == any(typex.Ellipsis) {
		elem, err := ins.inspect(args[0], fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewTuple([]*node.Node{elem}, true), nil
	}
	elems, err := ins.inspectAll(args, fr)
	if err != nil {
		return nil, err
	}
	return node.NewTuple(elems, false), nil
}

func (ins *inspector) classifyConcat(app *typex.App, fr *frame) (*node.Node, error) {
	args := app.Args()
	if len(args) == 0 {
		return node.NewFailedRef(refText(app), "Concatenate requires at least a parameter specification"), nil
	}
	spec, err := ins.inspect(args[len(args)-1], fr.child())
	if err != nil {
		return nil, err
	}
	if spec.Kind() != node.KindParamSpec && spec.Kind() != node.KindEllipsis {
		return node.NewFailedRef(refText(app), "Concatenate must end in a parameter specification"), nil
	}
	prefix, err := ins.inspectAll(args[:len(args)-1], fr)
	if err != nil {
		return nil, err
	}
	return node.NewConcat(prefix, spec), nil
}

// classifyCallable handles the four parameter shapes: an explicit parameter
// list, an ellipsis, a parameter specification, and a concatenation prefix.
// Classification never rejects a malformed shape; a bare callable and every
// unrecognized form degrade to an empty parameter list with an any return.
func (ins *inspector) classifyCallable(app *typex.App, fr *frame) (*node.Node, error) {
	if app.NumArgs() != 2 {
		return node.NewCallableList(nil, node.NewAny()), nil
	}

	ret, err := ins.inspect(app.Arg(1), fr.child())
	if err != nil {
		return nil, err
	}

	switch first := app.Arg(0).(type) {
	case *typex.Marker:
		if first == typex.Ellipsis {
			return node.NewCallableEllipsis(ret), nil
		}

	case *typex.ParamSpec:
		spec, err := ins.inspect(first, fr.child())
		if err != nil {
			return nil, err
		}
		return node.NewCallableSpec(spec, ret), nil

	case *typex.App:
		if first.Form() == typex.FormConcat {
			concat, err := ins.inspect(first, fr.child())
			if err != nil {
				return nil, err
			}
			if concat.Kind() == node.KindConcat {
				return node.NewCallableConcat(concat, ret), nil
			}
		}

	case []any:
		params, err := ins.inspectAll(first, fr)
		if err != nil {
			return nil, err
		}
		return node.NewCallableList(params, ret), nil
	}

	return node.NewCallableList(nil, node.NewAny()), nil
}

// classifySubscript handles origin[args...] applications. Subscriptions of
// the legacy Union alias fold into plain union nodes unless normalization
// is disabled.
func (ins *inspector) classifySubscript(app *typex.App, fr *frame) (*node.Node, error) {
	if app.Origin() == any(typex.UnionAlias) && fr.cfg.NormalizeUnions {
		members, err := ins.inspectAll(app.Args(), fr)
		if err != nil {
			return nil, err
		}
		return node.NewUnion(members), nil
	}

	origin, err := ins.originNode(app.Origin(), fr)
	if err != nil {
		return nil, err
	}
	args, err := ins.inspectAll(app.Args(), fr)
	if err != nil {
		return nil, err
	}
	return node.NewSubscripted(origin, args), nil
}

// originNode builds the unsubscripted-generic node for a subscription's
// origin. Plain runtime types become generic nodes too, so the subscripted
// shape is uniform regardless of how the origin was declared.
func (ins *inspector) originNode(origin any, fr *frame) (*node.Node, error) {
	if t, ok := origin.(reflect.Type); ok {
		return node.NewGeneric(t.String(), t, nil), nil
	}
	return ins.inspect(origin, fr.child())
}

func (ins *inspector) inspectAll(annotations []any, fr *frame) ([]*node.Node, error) {
	if len(annotations) == 0 {
		return nil, nil
	}
	out := make([]*node.Node, len(annotations))
	for i, a := range annotations {
		n, err := ins.inspect(a, fr.child())
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
