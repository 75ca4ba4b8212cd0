package members

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
)

// OfFunc extracts a function node from a func type or func value. Inputs
// become positional parameters (the last one variadic when the type is),
// and results become the return annotation: none for zero results, the
// result itself for one, and a fixed tuple for several.
func OfFunc(name string, fn any, opts ...inspect.Option) (*node.Node, error) {
	cfg := inspect.NewConfig(opts...)

	t, ok := fn.(reflect.Type)
	if !ok {
		v := reflect.ValueOf(fn)
		if !v.IsValid() || v.Kind() != reflect.Func {
			return nil, fmt.Errorf("members: %T is not a function", fn)
		}
		t = v.Type()
	}
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("members: %v is not a function type", t)
	}
	return functionNode(name, t, false, cfg)
}

// functionNode builds a function node wrapping a signature node. skipRecv
// drops the first input, used for methods taken from a type's method set.
func functionNode(name string, t reflect.Type, skipRecv bool, cfg inspect.Config) (*node.Node, error) {
	var errs *multierror.Error
	var params []node.Param

	start := 0
	if skipRecv {
		start = 1
	}
	for i := start; i < t.NumIn(); i++ {
		pt := t.In(i)
		kind := node.ParamPositional
		if t.IsVariadic() && i == t.NumIn()-1 {
			kind = node.ParamVariadic
			pt = pt.Elem()
		}
		pn, err := inspect.Inspect(pt, inspect.WithConfig(cfg))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		params = append(params, node.Param{
			Name: fmt.Sprintf("arg%d", i-start),
			Kind: kind,
			Type: pn,
		})
	}

	ret, err := returnNode(t, cfg)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	sig := node.NewSignature(params, ret, nil)
	return node.NewFunction(name, sig, false, false, nil), nil
}

func returnNode(t reflect.Type, cfg inspect.Config) (*node.Node, error) {
	switch t.NumOut() {
	case 0:
		return inspect.Inspect(nil, inspect.WithConfig(cfg))
	case 1:
		return inspect.Inspect(t.Out(0), inspect.WithConfig(cfg))
	}

	outs := make([]*node.Node, t.NumOut())
	for i := range outs {
		n, err := inspect.Inspect(t.Out(i), inspect.WithConfig(cfg))
		if err != nil {
			return nil, err
		}
		outs[i] = n
	}
	return node.NewTuple(outs, false), nil
}
