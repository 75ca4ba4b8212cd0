package members

import (
	"fmt"
	"reflect"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// OfEnum builds an enumerated-value node. The value-type annotation is
// unified from the member values: one runtime type yields a concrete node,
// several distinct types yield a union over them in first-seen order, and
// an empty enum has the never type.
func OfEnum(name string, values []node.EnumValue, opts ...inspect.Option) (*node.Node, error) {
	cfg := inspect.NewConfig(opts...)

	var types []reflect.Type
	seen := map[reflect.Type]struct{}{}
	for _, v := range values {
		t := typex.NoneType
		if v.Value != nil {
			t = reflect.TypeOf(v.Value)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}

	valueType, err := unifiedValueType(types, cfg)
	if err != nil {
		return nil, fmt.Errorf("members: enum %s: %w", name, err)
	}
	return node.NewEnum(name, valueType, values), nil
}

func unifiedValueType(types []reflect.Type, cfg inspect.Config) (*node.Node, error) {
	switch len(types) {
	case 0:
		return node.NewNever(), nil
	case 1:
		return inspect.Inspect(types[0], inspect.WithConfig(cfg))
	}

	members := make([]*node.Node, len(types))
	for i, t := range types {
		n, err := inspect.Inspect(t, inspect.WithConfig(cfg))
		if err != nil {
			return nil, err
		}
		members[i] = n
	}
	return node.NewUnion(members), nil
}
