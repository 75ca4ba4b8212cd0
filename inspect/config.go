package inspect

import "go.uber.org/zap"

// EvalMode selects the forward-reference resolution policy.
type EvalMode int

const (
	// EvalDeferred resolves references against the configured namespaces
	// and records failures as failed reference nodes. The default.
	EvalDeferred EvalMode = iota
	// EvalEager resolves references and returns a *NameError when a name
	// is not defined.
	EvalEager
	// EvalStringified skips resolution entirely; every reference becomes
	// an unresolved node carrying its text.
	EvalStringified
)

func (m EvalMode) String() string {
	switch m {
	case EvalDeferred:
		return "deferred"
	case EvalEager:
		return "eager"
	case EvalStringified:
		return "stringified"
	}
	return "unknown"
}

// Namespace maps reference names to the annotation values they denote.
type Namespace map[string]any

// Unbounded disables the recursion depth limit.
const Unbounded = -1

// Config carries every knob of an inspection run. The zero value is not
// ready to use; start from DefaultConfig.
type Config struct {
	// EvalMode is the forward-reference policy.
	EvalMode EvalMode

	// GlobalNS and LocalNS are consulted when resolving reference text,
	// local first.
	GlobalNS Namespace
	LocalNS  Namespace

	// MaxDepth bounds recursion. Nodes at depths beyond the limit become
	// terminal failed references. Unbounded disables the limit.
	MaxDepth int

	// NormalizeUnions folds subscripted applications of the Union alias
	// into plain union nodes. Default true.
	NormalizeUnions bool

	// IncludeSourceLocations attaches best-effort source records to nodes
	// whose annotation carries provenance.
	IncludeSourceLocations bool

	// Member extraction filters, consumed by the members package.
	IncludePrivate      bool
	IncludeInherited    bool
	IncludeMethods      bool
	IncludeClassVars    bool
	IncludeInstanceVars bool

	// HoistFieldMetadata moves metadata found on a field's annotation onto
	// the field record itself.
	HoistFieldMetadata bool

	// Logger receives debug-level progress. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration Inspect uses when no options are
// given.
func DefaultConfig() Config {
	return Config{
		MaxDepth:            Unbounded,
		NormalizeUnions:     true,
		IncludeInherited:    true,
		IncludeClassVars:    true,
		IncludeInstanceVars: true,
		HoistFieldMetadata:  true,
	}
}

// NewConfig applies options on top of DefaultConfig and returns the result.
// Packages layering on top of Inspect use it to share one option surface.
func NewConfig(opts ...Option) Config {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o.cfg
}

type options struct {
	cfg      Config
	explicit bool
	noCache  bool
}

// Option customizes a single Inspect call. Supplying any option other than
// WithoutCache makes the call ineligible for the process-wide cache.
type Option func(*options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
		o.explicit = true
	}
}

// WithEvalMode sets the forward-reference policy.
func WithEvalMode(mode EvalMode) Option {
	return func(o *options) {
		o.cfg.EvalMode = mode
		o.explicit = true
	}
}

// WithNamespaces sets the global and local resolution namespaces.
func WithNamespaces(global, local Namespace) Option {
	return func(o *options) {
		o.cfg.GlobalNS = global
		o.cfg.LocalNS = local
		o.explicit = true
	}
}

// WithMaxDepth bounds recursion depth. Pass Unbounded to disable the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.cfg.MaxDepth = depth
		o.explicit = true
	}
}

// WithUnionNormalization toggles folding of Union-alias subscriptions.
func WithUnionNormalization(enabled bool) Option {
	return func(o *options) {
		o.cfg.NormalizeUnions = enabled
		o.explicit = true
	}
}

// WithSourceLocations toggles source provenance on nodes.
func WithSourceLocations(enabled bool) Option {
	return func(o *options) {
		o.cfg.IncludeSourceLocations = enabled
		o.explicit = true
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.cfg.Logger = log
		o.explicit = true
	}
}

// WithMembers sets the member extraction filters.
func WithMembers(private, inherited, methods, classVars, instanceVars bool) Option {
	return func(o *options) {
		o.cfg.IncludePrivate = private
		o.cfg.IncludeInherited = inherited
		o.cfg.IncludeMethods = methods
		o.cfg.IncludeClassVars = classVars
		o.cfg.IncludeInstanceVars = instanceVars
		o.explicit = true
	}
}

// WithoutCache bypasses the process-wide cache while keeping the default
// configuration. The result is structurally equal to a cached one but is a
// fresh graph.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

func (o *options) logger() *zap.Logger {
	if o.cfg.Logger != nil {
		return o.cfg.Logger
	}
	return zap.NewNop()
}
