// Package mask builds logical subscripts from CEL predicates.
//
// A predicate is evaluated once per element of the container with these
// variables bound:
//
//	pos  int     1-based position
//	name string  element name, "" when the container is unnamed
//	size int     container size
//
// true and false select and drop the element, null marks it missing.
package mask

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/shibukawa/vecloc/location"
)

var (
	ErrInvalidPredicate = errors.New("mask: invalid predicate")
	ErrNotBoolean       = errors.New("mask: predicate must evaluate to a bool or null")
	ErrEvaluation       = errors.New("mask: predicate evaluation failed")
	ErrNamesLength      = errors.New("mask: names length must match size")
)

// Predicate is a compiled predicate. It is safe for concurrent use.
type Predicate struct {
	source  string
	program cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.HomogeneousAggregateLiterals(),
		cel.EagerlyValidateDeclarations(true),
		cel.Variable("pos", cel.IntType),
		cel.Variable("name", cel.StringType),
		cel.Variable("size", cel.IntType),
	)
}

// Compile parses and type-checks expr.
func Compile(expr string) (*Predicate, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPredicate, err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPredicate, issues.Err())
	}

	switch ast.OutputType().Kind() {
	case types.BoolKind, types.NullTypeKind, types.DynKind:
	default:
		return nil, fmt.Errorf("%w, got %s", ErrNotBoolean, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPredicate, err)
	}

	return &Predicate{source: expr, program: program}, nil
}

// Source returns the expression the predicate was compiled from.
func (p *Predicate) Source() string {
	return p.source
}

// Eval builds a full-length mask for a container of the given size.
// names may be nil.
func (p *Predicate) Eval(size int, names []string) (*location.Logical, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w, got %d", location.ErrInvalidSize, size)
	}

	if names != nil && len(names) != size {
		return nil, fmt.Errorf("%w: %d names for size %d", ErrNamesLength, len(names), size)
	}

	values := make([]location.Bool, size)

	for i := range values {
		name := ""
		if names != nil {
			name = names[i]
		}

		result, _, err := p.program.Eval(map[string]any{
			"pos":  int64(i + 1),
			"name": name,
			"size": int64(size),
		})
		if err != nil {
			return nil, fmt.Errorf("%w at position %d: %w", ErrEvaluation, i+1, err)
		}

		switch v := result.Value().(type) {
		case bool:
			if v {
				values[i] = location.True
			} else {
				values[i] = location.False
			}
		default:
			if result.Type() != types.NullType {
				return nil, fmt.Errorf("%w, got %s at position %d", ErrNotBoolean, result.Type().TypeName(), i+1)
			}

			values[i] = location.NA
		}
	}

	return &location.Logical{Values: values}, nil
}

// Build compiles expr and evaluates it in one step.
func Build(expr string, size int, names []string) (*location.Logical, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	return p.Eval(size, names)
}
