// Package code answers structural questions about Go code.
package code

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

var RequiredAnalyzers = []*analysis.Analyzer{inspect.Analyzer}

func Inspector(pass *analysis.Pass) *inspector.Inspector {
	return pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
}

func Preorder(pass *analysis.Pass, fn func(ast.Node), types ...ast.Node) {
	Inspector(pass).Preorder(types, fn)
}

// Unparen returns the outermost cursor of a chain of parenthesized
// expressions wrapping cur.
func Unparen(cur inspector.Cursor) inspector.Cursor {
	for {
		if k, _ := cur.ParentEdge(); k != edge.ParenExpr_X {
			return cur
		}
		cur = cur.Parent()
	}
}

func IsBlank(x ast.Expr) bool {
	id, ok := ast.Unparen(x).(*ast.Ident)
	return ok && id.Name == "_"
}

// IsConversion reports whether call is a type conversion rather than
// a function call.
func IsConversion(info *types.Info, call *ast.CallExpr) bool {
	tv, ok := info.Types[call.Fun]
	return ok && tv.IsType()
}

// SelectedMethod returns the method selected by sel, or nil if sel
// doesn't select a method value.
func SelectedMethod(info *types.Info, sel *ast.SelectorExpr) *types.Func {
	s, ok := info.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return nil
	}
	fn, _ := s.Obj().(*types.Func)
	return fn
}
