package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// FprintYAML writes a YAML representation of the AST to w. It uses the
// same document shape as FprintJSON.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}

// toTree converts node into maps and slices for the generic encoders.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":   "Program",
			"pos":    n.pos.String(),
			"tasks":  numbers(n.Tasks),
			"polys":  mapSlice(n.Polys, func(d *PolyDecl) interface{} { return toTree(d) }),
			"stmts":  mapSlice(n.Stmts, func(s Stmt) interface{} { return toTree(s) }),
			"inputs": numbers(n.Inputs),
		}

	case *PolyDecl:
		m := map[string]interface{}{
			"type":   "PolyDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": n.ParamNames(),
			"body":   toTree(n.Body),
		}
		if n.Params == nil {
			m["implicit"] = true
		}
		return m

	case *TermList:
		return map[string]interface{}{
			"type":  "TermList",
			"pos":   n.pos.String(),
			"terms": mapSlice(n.Terms, func(t *Term) interface{} { return toTree(t) }),
		}

	case *Term:
		return map[string]interface{}{
			"type":  "Term",
			"pos":   n.pos.String(),
			"op":    n.Op.String(),
			"coef":  n.Coef,
			"monos": mapSlice(n.Monos, func(m *Monomial) interface{} { return toTree(m) }),
		}

	case *Monomial:
		return map[string]interface{}{
			"type": "Monomial",
			"pos":  n.pos.String(),
			"base": toTree(n.Base),
			"exp":  n.Exp,
		}

	case *ParenExpr:
		return map[string]interface{}{
			"type": "ParenExpr",
			"pos":  n.pos.String(),
			"x":    toTree(n.X),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *NumberLit:
		return map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, func(a Arg) interface{} { return toTree(a) }),
		}

	case *InputStmt:
		return map[string]interface{}{
			"type": "InputStmt",
			"pos":  n.pos.String(),
			"var":  n.Var.Value,
		}

	case *OutputStmt:
		return map[string]interface{}{
			"type": "OutputStmt",
			"pos":  n.pos.String(),
			"var":  n.Var.Value,
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"lhs":  n.LHS.Value,
			"rhs":  toTree(n.RHS),
		}
	}

	return nil
}

func numbers(list []*NumberLit) []int {
	out := make([]int, len(list))
	for i, n := range list {
		out[i] = n.Value
	}
	return out
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
