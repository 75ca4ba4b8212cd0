package inspect

import "github.com/tbhb/typegraph/node"

// frame is the per-call state threaded through one inspection tree. The
// depth is copied on descent; the memo and the resolving set are shared by
// reference so every branch sees the same identities.
type frame struct {
	depth     int
	cfg       Config
	seen      map[any]*node.Node
	resolving map[string]struct{}
}

func newFrame(cfg Config) *frame {
	return &frame{
		cfg:       cfg,
		seen:      map[any]*node.Node{},
		resolving: map[string]struct{}{},
	}
}

func (f *frame) child() *frame {
	return &frame{
		depth:     f.depth + 1,
		cfg:       f.cfg,
		seen:      f.seen,
		resolving: f.resolving,
	}
}

func (f *frame) depthOK() bool {
	return f.cfg.MaxDepth < 0 || f.depth <= f.cfg.MaxDepth
}
