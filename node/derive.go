package node

// derive recomputes the children and edges sequences from the node's
// payload. It is the single place where the child/edge shape of every kind
// is defined, which keeps the "edges mirror children" invariant checkable in
// one exhaustive switch.
func (n *Node) derive() {
	n.children = nil
	n.edges = nil

	link := func(kind EdgeKind, index int, name string, target *Node) {
		if target == nil {
			return
		}

		n.children = append(n.children, target)
		n.edges = append(n.edges, Edge{Kind: kind, Index: index, Name: name, Target: target})
	}

	each := func(kind EdgeKind, targets []*Node) {
		for i, t := range targets {
			link(kind, i, "", t)
		}
	}

	fields := func(kind EdgeKind, fs []Field) {
		for _, f := range fs {
			link(kind, -1, f.Name, f.Type)
		}
	}

	switch n.kind {
	case KindConcrete, KindAny, KindNever, KindSelf,
		KindLiteralString, KindEllipsis, KindLiteral:
		// leaves

	case KindGeneric:
		// Declared type parameters stay reachable through TypeParams()
		// but are not part of the walked graph.

	case KindSubscripted:
		// The origin is reachable through Origin(); a subscripted node's
		// walked children are its type arguments only.
		each(EdgeTypeArg, n.args)

	case KindTuple:
		each(EdgeElement, n.elems)

	case KindUnion, KindIntersection:
		each(EdgeMember, n.members)

	case KindCallable:
		switch n.paramShape {
		case ParamsList:
			each(EdgeParam, n.params)
		case ParamsSpec, ParamsConcat:
			link(EdgeSpec, -1, "", n.spec)
		case ParamsEllipsis:
			// no parameter children
		}
		link(EdgeReturn, -1, "", n.ret)

	case KindTypeVar:
		link(EdgeBound, -1, "", n.bound)
		each(EdgeConstraint, n.constraints)
		link(EdgeDefault, -1, "", n.def)

	case KindParamSpec, KindTypeVarTuple:
		link(EdgeDefault, -1, "", n.def)

	case KindForwardRef:
		if n.refState == RefResolved {
			link(EdgeResolved, -1, "", n.target)
		}

	case KindNewType:
		link(EdgeSupertype, -1, "", n.elem)

	case KindAlias:
		each(EdgeTypeParam, n.typeParams)
		link(EdgeValue, -1, "", n.elem)

	case KindClassOf, KindTypeGuard, KindTypeIs, KindUnpack:
		link(EdgeTarget, -1, "", n.elem)

	case KindConcat:
		each(EdgePrefix, n.prefix)
		link(EdgeSpec, -1, "", n.spec)

	case KindRecord, KindNamedRecord:
		fields(EdgeField, n.fields)

	case KindClass:
		each(EdgeTypeParam, n.typeParams)
		each(EdgeBase, n.bases)
		for _, m := range n.methods {
			link(EdgeMethod, -1, m.name, m)
		}
		fields(EdgeField, n.classFields)
		fields(EdgeField, n.instFields)

	case KindEnum:
		link(EdgeValueType, -1, "", n.elem)

	case KindProtocol:
		for _, m := range n.methods {
			link(EdgeMethod, -1, m.name, m)
		}
		fields(EdgeAttribute, n.fields)

	case KindSignature:
		each(EdgeTypeParam, n.typeParams)
		for _, p := range n.sigParams {
			link(EdgeParam, -1, p.Name, p.Type)
		}
		link(EdgeReturn, -1, "", n.ret)

	case KindFunction:
		link(EdgeSignature, -1, "", n.elem)
	}
}
