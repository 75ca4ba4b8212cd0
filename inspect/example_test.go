package inspect_test

import (
	"fmt"
	"reflect"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

func ExampleInspect() {
	n, err := inspect.Inspect(typex.Optional(reflect.TypeOf(0)), inspect.WithoutCache())
	if err != nil {
		panic(err)
	}

	fmt.Println(n.Kind())
	for _, m := range node.UnionMembers(n) {
		fmt.Println("  member:", m)
	}
	fmt.Println("includes none:", node.UnionIncludesNone(n))
	// Output:
	// KindUnion
	//   member: KindConcrete(int)
	//   member: KindConcrete(typex.noneType)
	// includes none: true
}

func ExampleInspect_forwardReference() {
	ns := inspect.Namespace{"Score": reflect.TypeOf(0)}

	n, err := inspect.Inspect("Score", inspect.WithNamespaces(ns, nil))
	if err != nil {
		panic(err)
	}

	fmt.Println(n.RefState(), n.Name(), "->", n.RefTarget())
	// Output:
	// resolved Score -> KindConcrete(int)
}

func ExampleToNative() {
	ann := typex.List.Of(reflect.TypeOf(""))

	n, _ := inspect.Inspect(ann, inspect.WithoutCache())
	back, _ := inspect.ToNative(n, false)

	fmt.Println(inspect.EquivalentAnnotations(ann, back))
	// Output:
	// true
}
