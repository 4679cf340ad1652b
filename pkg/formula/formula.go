// Package formula evaluates user-authored arithmetic over named numeric
// variables. Input is parsed against a fixed grammar and walked as a tree;
// it is never handed to a code execution facility.
package formula

import (
	"math"
	"sort"
)

// Resolver returns the value bound to an identifier. ok=false means the
// identifier is unknown and evaluation fails with UnknownIdentifierError.
type Resolver func(name string) (value float64, ok bool)

// MapResolver resolves identifiers from a fixed map.
func MapResolver(vars map[string]float64) Resolver {
	return func(name string) (float64, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// Expression is a parsed formula. It is immutable and safe for concurrent use.
type Expression struct {
	src  string
	root node
}

// String returns the source text the expression was parsed from.
func (e *Expression) String() string { return e.src }

// Eval evaluates the expression. A NaN or infinite result is reported as ErrNotFinite.
func (e *Expression) Eval(resolve Resolver) (float64, error) {
	v, err := e.root.eval(resolve)
	if err != nil {
		return 0, err
	}
	// Infinity is reported like NaN so callers fall back to 0.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Identifiers lists the distinct identifiers referenced by the expression, sorted.
func (e *Expression) Identifiers() []string {
	seen := map[string]struct{}{}
	e.root.collect(seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Evaluate parses and evaluates src in one step.
func Evaluate(src string, resolve Resolver) (float64, error) {
	expr, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return expr.Eval(resolve)
}

type node interface {
	eval(resolve Resolver) (float64, error)
	collect(seen map[string]struct{})
}

type numberNode float64

func (n numberNode) eval(Resolver) (float64, error) { return float64(n), nil }
func (n numberNode) collect(map[string]struct{})    {}

type identNode string

func (n identNode) eval(resolve Resolver) (float64, error) {
	if resolve != nil {
		if v, ok := resolve(string(n)); ok {
			return v, nil
		}
	}
	return 0, &UnknownIdentifierError{Name: string(n)}
}

func (n identNode) collect(seen map[string]struct{}) { seen[string(n)] = struct{}{} }

type unaryNode struct {
	op      tokenKind
	operand node
}

func (n unaryNode) eval(resolve Resolver) (float64, error) {
	v, err := n.operand.eval(resolve)
	if err != nil {
		return 0, err
	}
	if n.op == tokMinus {
		return -v, nil
	}
	return v, nil
}

func (n unaryNode) collect(seen map[string]struct{}) { n.operand.collect(seen) }

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(resolve Resolver) (float64, error) {
	l, err := n.left.eval(resolve)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(resolve)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case tokPlus:
		return l + r, nil
	case tokMinus:
		return l - r, nil
	case tokStar:
		return l * r, nil
	default:
		// IEEE semantics: x/0 is ±Inf and 0/0 is NaN; Eval rejects both.
		return l / r, nil
	}
}

func (n binaryNode) collect(seen map[string]struct{}) {
	n.left.collect(seen)
	n.right.collect(seen)
}
