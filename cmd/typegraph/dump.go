package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
)

var (
	dumpEvalMode  string
	dumpMaxDepth  int
	dumpKeepUnion bool
	dumpSources   bool
	dumpRoundtrip bool
	dumpVerbose   bool
	dumpDefines   []string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpEvalMode, "eval-mode", "deferred", "Forward-reference policy: deferred, eager or stringified")
	dumpCmd.Flags().IntVar(&dumpMaxDepth, "max-depth", inspect.Unbounded, "Recursion depth limit (-1 for unbounded)")
	dumpCmd.Flags().BoolVar(&dumpKeepUnion, "keep-legacy-unions", false, "Keep Union[...] in its subscripted shape")
	dumpCmd.Flags().BoolVar(&dumpSources, "sources", false, "Attach source locations where known")
	dumpCmd.Flags().BoolVar(&dumpRoundtrip, "roundtrip", false, "Also render the graph back into an annotation")
	dumpCmd.Flags().BoolVar(&dumpVerbose, "verbose", false, "Log inspection progress")
	dumpCmd.Flags().StringArrayVar(&dumpDefines, "define", nil, "Bind a name for reference resolution, e.g. --define User=str")
}

var dumpCmd = &cobra.Command{
	Use:   "dump EXPR",
	Short: "Inspect an annotation expression and print its graph",
	Long: `Parse an annotation expression, run the inspector over it and print the
resulting graph as a tree. Shared subgraphs are printed once and referred
to by ^N markers afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ann, err := parseExpr(args[0])
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}

		mode, err := evalMode(dumpEvalMode)
		if err != nil {
			return err
		}
		ns, err := namespaceFromDefines(dumpDefines)
		if err != nil {
			return err
		}

		opts := []inspect.Option{
			inspect.WithEvalMode(mode),
			inspect.WithMaxDepth(dumpMaxDepth),
			inspect.WithUnionNormalization(!dumpKeepUnion),
			inspect.WithSourceLocations(dumpSources),
			inspect.WithNamespaces(ns, nil),
		}
		if dumpVerbose {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck
			opts = append(opts, inspect.WithLogger(log))
		}

		n, err := inspect.Inspect(ann, opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		r := newRenderer()
		r.render(out, n, "", "")

		if dumpRoundtrip {
			back, err := inspect.ToNative(n, true)
			if err != nil {
				return fmt.Errorf("roundtrip: %w", err)
			}
			fmt.Fprintf(out, "\nroundtrip: %v\n", back)
		}
		return nil
	},
}

func evalMode(s string) (inspect.EvalMode, error) {
	switch s {
	case "deferred":
		return inspect.EvalDeferred, nil
	case "eager":
		return inspect.EvalEager, nil
	case "stringified":
		return inspect.EvalStringified, nil
	}
	return 0, fmt.Errorf("unknown eval mode %q", s)
}

func namespaceFromDefines(defines []string) (inspect.Namespace, error) {
	if len(defines) == 0 {
		return nil, nil
	}
	ns := inspect.Namespace{}
	for _, d := range defines {
		name, expr, ok := strings.Cut(d, "=")
		if !ok {
			return nil, fmt.Errorf("bad --define %q, want name=expr", d)
		}
		v, err := parseExpr(expr)
		if err != nil {
			return nil, fmt.Errorf("bad --define %q: %w", d, err)
		}
		ns[name] = v
	}
	return ns, nil
}

type renderer struct {
	ids   map[*node.Node]int
	kind  *color.Color
	label *color.Color
	extra *color.Color
	back  *color.Color
}

func newRenderer() *renderer {
	return &renderer{
		ids:   map[*node.Node]int{},
		kind:  color.New(color.FgCyan, color.Bold),
		label: color.New(color.Faint),
		extra: color.New(color.FgYellow),
		back:  color.New(color.FgMagenta),
	}
}

// render prints one node and recurses along its edges. A node already
// printed is shown as a back-reference to its first occurrence.
func (r *renderer) render(w io.Writer, n *node.Node, indent, edgeLabel string) {
	prefix := indent
	if edgeLabel != "" {
		prefix += r.label.Sprintf("%s: ", edgeLabel)
	}

	if id, ok := r.ids[n]; ok {
		fmt.Fprintf(w, "%s%s\n", prefix, r.back.Sprintf("^%d", id))
		return
	}
	r.ids[n] = len(r.ids) + 1

	line := r.kind.Sprint(strings.TrimPrefix(n.Kind().String(), "Kind"))
	if d := describeNode(n); d != "" {
		line += " " + r.extra.Sprint(d)
	}
	if src := n.Source(); src != nil {
		line += r.label.Sprintf("  (%s.%s)", src.Module, src.Name)
	}
	fmt.Fprintf(w, "%s%s\n", prefix, line)

	if origin := n.Origin(); origin != nil {
		r.render(w, origin, indent+"  ", "origin")
	}
	for _, e := range n.Edges() {
		if e.Target == nil {
			continue
		}
		r.render(w, e.Target, indent+"  ", e.Label())
	}
}

func describeNode(n *node.Node) string {
	var parts []string
	switch {
	case n.Kind() == node.KindConcrete && n.Type() != nil:
		parts = append(parts, n.Type().String())
	case n.Kind() == node.KindLiteral:
		parts = append(parts, fmt.Sprintf("%v", n.LiteralValues()))
	case n.Kind() == node.KindForwardRef:
		parts = append(parts, fmt.Sprintf("%q %s", n.Name(), n.RefState()))
		if msg := n.RefError(); msg != "" {
			parts = append(parts, "("+msg+")")
		}
	case n.Kind() == node.KindCallable:
		parts = append(parts, n.ParamShape().String())
	case n.Name() != "":
		parts = append(parts, n.Name())
	}
	if quals := n.Qualifiers(); len(quals) > 0 {
		qs := make([]string, len(quals))
		for i, q := range quals {
			qs[i] = string(q)
		}
		parts = append(parts, "["+strings.Join(qs, ",")+"]")
	}
	if !n.Metadata().IsEmpty() {
		parts = append(parts, fmt.Sprintf("meta=%v", n.Metadata().Values()))
	}
	return strings.Join(parts, " ")
}
