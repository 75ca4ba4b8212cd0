package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/tbhb/typegraph/typex"
)

// The dump command accepts a small annotation expression language:
//
//	int | None
//	list[dict[str, int]]
//	tuple[int, ...]
//	Callable[[int, str], bool]
//	Optional['User']
//	Literal[1, 2, "three"]
//
// Bare identifiers outside the builtin table become forward references, so
// the inspector's resolution policy decides what happens to them.

var builtinTypes = map[string]any{
	"int":     reflect.TypeOf(0),
	"str":     reflect.TypeOf(""),
	"float":   reflect.TypeOf(0.0),
	"bool":    reflect.TypeOf(false),
	"bytes":   reflect.TypeOf([]byte(nil)),
	"complex": reflect.TypeOf(complex(0, 0)),

	"None":          nil,
	"Any":           typex.Any,
	"Never":         typex.Never,
	"Self":          typex.Self,
	"LiteralString": typex.LiteralString,

	"list": typex.List,
	"dict": typex.Dict,
	"set":  typex.Set,
}

type parser struct {
	toks []token
	pos  int
}

type token struct {
	kind tokenKind
	text string
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokNumber
	tokEllipsis
	tokPunct // one of [ ] ( ) , |
	tokEOF
)

func parseExpr(src string) (any, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	expr, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q after expression", p.peek().text)
	}
	return resolveExpr(expr), nil
}

func scan(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case strings.ContainsRune("[](),|", r):
			toks = append(toks, token{tokPunct, string(r)})
			i++
		case r == '.':
			if i+2 < len(rs) && rs[i+1] == '.' && rs[i+2] == '.' {
				toks = append(toks, token{tokEllipsis, "..."})
				i += 3
				continue
			}
			return nil, fmt.Errorf("stray %q at offset %d", r, i)
		case r == '\'' || r == '"':
			quote := r
			j := i + 1
			for j < len(rs) && rs[j] != quote {
				j++
			}
			if j == len(rs) {
				return nil, fmt.Errorf("unterminated string at offset %d", i)
			}
			toks = append(toks, token{tokString, string(rs[i+1 : j])})
			i = j + 1
		case unicode.IsDigit(r) || r == '-':
			j := i + 1
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(rs[i:j])})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			toks = append(toks, token{tokIdent, string(rs[i:j])})
			i = j
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", r, i)
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(text string) error {
	t := p.next()
	if t.kind != tokPunct || t.text != text {
		return fmt.Errorf("expected %q, got %q", text, t.text)
	}
	return nil
}

// union := postfix ('|' postfix)*
func (p *parser) union() (any, error) {
	first, err := p.postfix()
	if err != nil {
		return nil, err
	}
	members := []any{first}
	for p.peek().kind == tokPunct && p.peek().text == "|" {
		p.next()
		m, err := p.postfix()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if len(members) == 1 {
		return first, nil
	}
	return typex.Union(resolveIdents(members)...), nil
}

// postfix := primary ('[' args ']')*
func (p *parser) postfix() (any, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPunct && p.peek().text == "[" {
		p.next()
		expr, err = p.subscript(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *parser) primary() (any, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		if v, ok := builtinTypes[t.text]; ok {
			return v, nil
		}
		return identExpr{t.text}, nil
	case tokString:
		return typex.NewRef(t.text), nil
	case tokEllipsis:
		return typex.Ellipsis, nil
	case tokNumber:
		return parseNumber(t.text)
	case tokPunct:
		if t.text == "(" {
			// only the empty tuple spelling
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return emptyParens{}, nil
		}
	}
	return nil, fmt.Errorf("unexpected %q", t.text)
}

// identExpr defers special-form identifiers (Optional, Literal, Callable,
// type, Union, tuple) until subscription, where their argument rules differ.
// A special form used bare, or an unknown name, becomes a forward reference.
type identExpr struct{ name string }

type emptyParens struct{}

func (p *parser) args() ([]any, error) {
	var out []any
	for {
		if p.peek().kind == tokPunct && p.peek().text == "]" {
			break
		}
		a, err := p.union()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		if p.peek().kind == tokPunct && p.peek().text == "," {
			p.next()
			continue
		}
		break
	}
	return out, p.expect("]")
}

// paramList := '[' expr (',' expr)* ']'
func (p *parser) paramList() ([]any, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	return p.args()
}

func (p *parser) subscript(origin any) (any, error) {
	id, special := origin.(identExpr)
	if !special {
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		return subscriptOf(origin, args)
	}

	switch id.name {
	case "Optional":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("Optional takes one argument, got %d", len(args))
		}
		return typex.Optional(resolveIdents(args)[0]), nil

	case "Union":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		return typex.UnionAlias.Of(resolveIdents(args)...), nil

	case "Literal":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		return typex.Literal(literalValues(args)...), nil

	case "tuple":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		resolved := resolveIdents(args)
		if len(resolved) == 1 {
			if _, ok := resolved[0].(emptyParens); ok {
				return typex.EmptyTuple(), nil
			}
		}
		return typex.Tuple(resolved...), nil

	case "type":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("type takes one argument, got %d", len(args))
		}
		return typex.ClassOf(resolveIdents(args)[0]), nil

	case "Callable":
		if p.peek().kind == tokPunct && p.peek().text == "[" {
			params, err := p.paramList()
			if err != nil {
				return nil, err
			}
			if err := p.expect(","); err != nil {
				return nil, err
			}
			ret, err := p.union()
			if err != nil {
				return nil, err
			}
			if err := p.expect("]"); err != nil {
				return nil, err
			}
			return typex.Callable(resolveIdents(params), resolveExpr(ret)), nil
		}
		if p.peek().kind == tokEllipsis {
			p.next()
			if err := p.expect(","); err != nil {
				return nil, err
			}
			ret, err := p.union()
			if err != nil {
				return nil, err
			}
			if err := p.expect("]"); err != nil {
				return nil, err
			}
			return typex.Callable(typex.Ellipsis, resolveExpr(ret)), nil
		}
		return nil, fmt.Errorf("Callable takes [params, return] or [..., return]")
	}

	// unknown name with subscript: X[...] over a forward reference
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	return subscriptOf(typex.NewRef(id.name), args)
}

func subscriptOf(origin any, args []any) (any, error) {
	resolved := resolveIdents(args)
	if d, ok := origin.(*typex.GenericDecl); ok {
		return d.Of(resolved...), nil
	}
	return typex.Subscript(resolveExpr(origin), resolved...), nil
}

// resolveExpr turns leftover identExpr values into forward references.
func resolveExpr(v any) any {
	if id, ok := v.(identExpr); ok {
		return typex.NewRef(id.name)
	}
	return v
}

func resolveIdents(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = resolveExpr(a)
	}
	return out
}

// literalValues keeps numbers, strings and bools as plain values.
func literalValues(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case identExpr:
			switch v.name {
			case "True":
				out[i] = true
			case "False":
				out[i] = false
			case "None":
				out[i] = nil
			default:
				out[i] = v.name
			}
		case *typex.Ref:
			out[i] = v.Name()
		default:
			out[i] = a
		}
	}
	return out
}

func parseNumber(text string) (any, error) {
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", text)
		}
		return f, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("bad number %q", text)
	}
	return n, nil
}
