package slb

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Rules is a compiled set of CEL boolean expressions a record must satisfy.
// Rules are safe for concurrent use.
type Rules struct {
	schema string
	rules  []rule
}

type rule struct {
	source  string
	program cel.Program
}

// NewRules compiles sources against an environment declaring vars.
func NewRules(schema string, vars []cel.EnvOption, sources ...string) (*Rules, error) {
	env, err := cel.NewEnv(vars...)
	if err != nil {
		return nil, fmt.Errorf("creating CEL environment for %s: %w", schema, err)
	}

	rules := make([]rule, 0, len(sources))
	for _, source := range sources {
		ast, issues := env.Compile(source)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("compiling %s rule %q: %w", schema, source, issues.Err())
		}
		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("creating program for %s rule %q: %w", schema, source, err)
		}
		rules = append(rules, rule{source: source, program: program})
	}

	return &Rules{schema: schema, rules: rules}, nil
}

func mustRules(schema string, vars []cel.EnvOption, sources ...string) *Rules {
	r, err := NewRules(schema, vars, sources...)
	if err != nil {
		panic(err)
	}
	return r
}

// Check evaluates every rule in order and returns a *ConstraintError for the
// first one that does not hold or cannot be evaluated. A nil *Rules accepts everything.
func (r *Rules) Check(vars map[string]any) error {
	if r == nil {
		return nil
	}
	for _, rl := range r.rules {
		out, _, err := rl.program.Eval(vars)
		if err != nil {
			return &ConstraintError{Schema: r.schema, Rule: rl.source, Err: err}
		}
		if ok, isBool := out.Value().(bool); !isBool || !ok {
			return &ConstraintError{Schema: r.schema, Rule: rl.source}
		}
	}
	return nil
}
