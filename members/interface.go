package members

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
)

// OfInterface extracts a protocol node from an interface type. Each method
// becomes a function node; an interface whose methods are all exported is
// runtime-checkable via type assertion, so the node is marked checkable.
func OfInterface(t reflect.Type, opts ...inspect.Option) (*node.Node, error) {
	cfg := inspect.NewConfig(opts...)

	if t == nil || t.Kind() != reflect.Interface {
		return nil, fmt.Errorf("members: %v is not an interface type", t)
	}

	var errs *multierror.Error
	var methods []*node.Node
	checkable := true

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			checkable = false
			if !cfg.IncludePrivate {
				continue
			}
		}
		// Interface method types carry no receiver.
		fn, err := functionNode(m.Name, m.Type, false, cfg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("members: method %s.%s: %w", t, m.Name, err))
			continue
		}
		methods = append(methods, fn)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	n := node.NewProtocol(t.Name(), t, methods, nil, checkable)
	if cfg.IncludeSourceLocations && t.PkgPath() != "" {
		n = n.With(node.SetSource(&node.Source{Module: t.PkgPath(), Name: t.Name()}))
	}
	return n, nil
}
