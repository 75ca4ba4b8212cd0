package inspect

import (
	"go.uber.org/zap"

	"github.com/tbhb/typegraph/node"
)

// resolveRef turns reference text into a reference node according to the
// configured policy. A name already being resolved higher in the call tree
// stays unresolved, which is what terminates textual cycles.
func (ins *inspector) resolveRef(text string, fr *frame) (*node.Node, error) {
	if fr.cfg.EvalMode == EvalStringified {
		return node.NewUnresolvedRef(text), nil
	}

	if _, busy := fr.resolving[text]; busy {
		ins.log.Debug("cyclic reference left unresolved", zap.String("name", text))
		return node.NewUnresolvedRef(text), nil
	}
	fr.resolving[text] = struct{}{}
	defer delete(fr.resolving, text)

	val, ok := lookupName(fr.cfg, text)
	if !ok {
		err := &NameError{Name: text}
		if fr.cfg.EvalMode == EvalEager {
			return nil, err
		}
		ins.log.Debug("reference resolution failed", zap.String("name", text))
		return node.NewFailedRef(text, err.Error()), nil
	}

	target, err := ins.inspect(val, fr.child())
	if err != nil {
		return nil, err
	}
	return node.NewResolvedRef(text, target), nil
}

// lookupName consults the local namespace before the global one. A name
// explicitly bound to nil resolves to the none type.
func lookupName(cfg Config, name string) (any, bool) {
	if v, ok := cfg.LocalNS[name]; ok {
		return v, true
	}
	if v, ok := cfg.GlobalNS[name]; ok {
		return v, true
	}
	return nil, false
}

// MergeScopes layers over on top of under; bindings in over win. Neither
// input is modified. It is how an alias's defining scope combines with a
// caller-supplied namespace.
func MergeScopes(under map[string]any, over Namespace) Namespace {
	merged := make(Namespace, len(under)+len(over))
	for k, v := range under {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// ResolveRef resolves a single reference name against the given namespaces
// without building a surrounding graph. Resolution is always eager: an
// undefined name is a *NameError, never a failed reference node. Callers
// wanting the deferred policy inspect the name through Inspect instead.
func ResolveRef(name string, opts ...Option) (*node.Node, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	o.cfg.EvalMode = EvalEager
	ins := &inspector{cfg: o.cfg, log: o.logger()}
	return ins.resolveRef(name, newFrame(o.cfg))
}
