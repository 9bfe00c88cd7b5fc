// Package eval runs expr-lang expressions against a root value, with
// deep-collection path access exposed to the expression as functions:
//
//	get(path)     value at a concrete path, failing when absent
//	has(path)     whether a concrete path resolves
//	values(pat)   all values matching a search pattern
//	paths(pat)    the concrete paths matching a search pattern
//	getenv(name)  process environment lookup
//
// The root value itself is bound to the variable "root".
package eval

import (
	"os"

	"github.com/expr-lang/expr"

	deep "github.com/terminal-labs/deep-collection"
	"github.com/terminal-labs/deep-collection/debug"
)

func exprOpts(root any) []expr.Option {
	return []expr.Option{
		expr.Env(env(root)),
		expr.Function("get", func(params ...any) (any, error) {
			return deep.Get(root, params[0].(string))
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			return deep.Has(root, params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("values", func(params ...any) (any, error) {
			matches, err := deep.Search(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := []any{}
			for m := range matches {
				if m.Err != nil {
					return nil, m.Err
				}
				res = append(res, m.Value)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("paths", func(params ...any) (any, error) {
			matches, err := deep.Search(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := []string{}
			for m := range matches {
				if m.Err != nil {
					return nil, m.Err
				}
				res = append(res, m.Path.String())
			}
			return res, nil
		},
			new(func(string) []string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func env(root any) map[string]any {
	return map[string]any{"root": root}
}

// Eval compiles and runs src against root.
func Eval(src string, root any) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", src)
	}
	program, err := expr.Compile(src, exprOpts(root)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, env(root))
}
