package inspect

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/tbhb/typegraph/metadata"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// NameError reports a forward reference that is not defined in any
// configured namespace. Inspect returns it only under EvalEager.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("inspect: name %q is not defined", e.Name)
}

// Inspect classifies an annotation into a type graph rooted at the returned
// node. Calls with no options (or only WithoutCache) use DefaultConfig;
// fully default calls are additionally served from the process-wide cache.
func Inspect(annotation any, opts ...Option) (*node.Node, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.explicit && !o.noCache {
		return cachedInspect(annotation, o.cfg)
	}
	ins := &inspector{cfg: o.cfg, log: o.logger()}
	return ins.inspect(annotation, newFrame(o.cfg))
}

// memoKey reports whether an annotation value has a usable identity for
// memoization, and returns it. Pointer-shaped annotations and reflect.Type
// values are identity-comparable; strings and other values are not keyed
// (repeated text is handled by the resolving set instead).
func memoKey(annotation any) (any, bool) {
	switch annotation.(type) {
	case nil:
		return nil, false
	case string:
		return nil, false
	case reflect.Type:
		return annotation, true
	}
	if reflect.ValueOf(annotation).Kind() == reflect.Pointer {
		return annotation, true
	}
	return nil, false
}

type inspector struct {
	cfg Config
	log *zap.Logger
}

func (ins *inspector) inspect(annotation any, fr *frame) (*node.Node, error) {
	if !fr.depthOK() {
		ins.log.Debug("max depth exceeded",
			zap.Int("depth", fr.depth),
			zap.Int("limit", fr.cfg.MaxDepth))
		return node.NewFailedRef(refText(annotation), "max depth exceeded"), nil
	}

	key, keyable := memoKey(annotation)
	if keyable {
		if n, ok := fr.seen[key]; ok {
			return n, nil
		}
	}

	bare, quals, meta := unwrap(annotation)

	n, err := ins.classify(bare, fr)
	if err != nil {
		return nil, err
	}

	var extra []node.Option
	if len(quals) > 0 {
		extra = append(extra, node.AddQualifiers(quals...))
	}
	if !meta.IsEmpty() {
		extra = append(extra, node.AddMetadata(meta))
	}
	if ins.cfg.IncludeSourceLocations && n.Source() == nil {
		if src := sourceFor(bare); src != nil {
			extra = append(extra, node.SetSource(src))
		}
	}
	if len(extra) > 0 {
		n = n.With(extra...)
	}

	if keyable {
		fr.seen[key] = n
	}
	return n, nil
}

// unwrap strips qualifier and metadata wrappers, accumulating qualifiers
// and outer-before-inner metadata. A qualifier applied to nothing denotes
// the unconstrained type.
func unwrap(annotation any) (any, []typex.Qualifier, metadata.Items) {
	var quals []typex.Qualifier
	var meta metadata.Items
	cur := annotation
	for {
		switch w := cur.(type) {
		case *typex.Qualified:
			quals = append(quals, w.Qualifier())
			if w.Inner() == nil {
				return typex.Any, quals, meta
			}
			cur = w.Inner()
		case *typex.Annotated:
			meta = meta.Concat(metadata.New(w.Metadata()...))
			cur = w.Inner()
		default:
			return cur, quals, meta
		}
	}
}

// refText renders an annotation as reference text for terminal nodes.
func refText(annotation any) string {
	switch v := annotation.(type) {
	case nil:
		return "None"
	case string:
		return v
	case *typex.Ref:
		return v.Name()
	case fmt.Stringer:
		return v.String()
	case reflect.Type:
		return v.String()
	}
	return fmt.Sprintf("%v", annotation)
}
