package inspect

import (
	"reflect"

	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// sourceFor extracts best-effort provenance from an annotation. Runtime
// types carry their package path; declared objects carry only their name.
// Anything without provenance yields nil and the node stays untagged.
func sourceFor(bare any) *node.Source {
	switch v := bare.(type) {
	case reflect.Type:
		if v.PkgPath() == "" {
			return nil
		}
		return &node.Source{Module: v.PkgPath(), Name: v.Name()}
	case *typex.Alias:
		return &node.Source{Name: v.Name()}
	case *typex.Distinct:
		return &node.Source{Name: v.Name()}
	case *typex.GenericDecl:
		return &node.Source{Name: v.Name()}
	}
	return nil
}
