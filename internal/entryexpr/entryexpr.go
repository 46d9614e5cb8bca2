// Package entryexpr compiles user expressions over a single matrix entry.
//
// Expressions see the entry as `row`, `col`, `value` and the operand shape as
// `rows`, `cols`, e.g. `value * 2`, `row == col ? value : 0`, `abs(value) > 3`.
package entryexpr

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/katalvlaran/sparsemat/sparse"
)

// Env is the expression environment for one entry.
type Env struct {
	Row   int `expr:"row"`
	Col   int `expr:"col"`
	Value int `expr:"value"`
	Rows  int `expr:"rows"`
	Cols  int `expr:"cols"`
}

func envFor(m *sparse.Matrix, e sparse.Entry) Env {
	return Env{Row: e.Row, Col: e.Col, Value: int(e.Value), Rows: m.Rows(), Cols: m.Cols()}
}

// Value is a compiled integer-valued expression.
type Value struct {
	src string
	prg *vm.Program
}

// CompileValue type-checks src as an integer expression.
func CompileValue(src string) (*Value, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsInt64())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}

	return &Value{src: src, prg: prg}, nil
}

// For returns a sparse.Map function evaluating v against entries of m.
func (v *Value) For(m *sparse.Matrix) func(sparse.Entry) (int64, error) {
	return func(e sparse.Entry) (int64, error) {
		out, err := expr.Run(v.prg, envFor(m, e))
		if err != nil {
			return 0, fmt.Errorf("error evaluating %q at (%d,%d): %w", v.src, e.Row, e.Col, err)
		}
		n, ok := out.(int64)
		if !ok {
			return 0, fmt.Errorf("%q returned %T, want int64", v.src, out)
		}
		return n, nil
	}
}

// Predicate is a compiled boolean expression.
type Predicate struct {
	src string
	prg *vm.Program
}

// CompilePredicate type-checks src as a boolean expression.
func CompilePredicate(src string) (*Predicate, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}

	return &Predicate{src: src, prg: prg}, nil
}

// For returns a sparse.Filter function evaluating p against entries of m.
func (p *Predicate) For(m *sparse.Matrix) func(sparse.Entry) (bool, error) {
	return func(e sparse.Entry) (bool, error) {
		out, err := expr.Run(p.prg, envFor(m, e))
		if err != nil {
			return false, fmt.Errorf("error evaluating %q at (%d,%d): %w", p.src, e.Row, e.Col, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("%q returned %T, want bool", p.src, out)
		}
		return keep, nil
	}
}
