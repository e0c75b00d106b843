package debugs

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Condition evaluates a compiled break expression against globals.
type Condition func(globals map[string]any) (bool, error)

// CompileBreak parses a starlark expression once. An empty expression never breaks.
type CompileBreak func(expr string) (Condition, error)

var exprOptions = &syntax.FileOptions{}

func (Module) CompileBreak() CompileBreak {
	return func(src string) (Condition, error) {
		if src == "" {
			return func(map[string]any) (bool, error) {
				return false, nil
			}, nil
		}

		expr, err := exprOptions.ParseExpr("break", src, 0)
		if err != nil {
			return nil, fmt.Errorf("parse break condition: %w", err)
		}

		thread := &starlark.Thread{
			Name: "break",
		}

		return func(globals map[string]any) (bool, error) {
			env := make(starlark.StringDict, len(globals))
			for name, value := range globals {
				env[name] = toStarlarkValue(value)
			}
			value, err := starlark.EvalExprOptions(exprOptions, thread, expr, env)
			if err != nil {
				return false, fmt.Errorf("eval break condition %q: %w", src, err)
			}
			return bool(value.Truth()), nil
		}, nil
	}
}
