package mustuse

import (
	"go/ast"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/code"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// InvokeMethod is the name of the method that counts as invoking a
// value, in addition to calling it directly.
const InvokeMethod = "Invoke"

// A Reference is a use of a parameter inside its function's body.
type Reference struct {
	Ident   *ast.Ident
	Context Context
	// Node is the innermost node that determined Context, or Ident
	// for ContextOther.
	Node ast.Node
}

// Collect returns all references to b in its function's body, in
// source order. Identifiers that resolve to other objects, including
// shadowing declarations of the same name, are ignored.
func (c *Checker) Collect(b Binding) []Reference {
	var refs []Reference
	for cur := range b.Body.Preorder((*ast.Ident)(nil)) {
		id := cur.Node().(*ast.Ident)
		if c.Info.Uses[id] != b.Obj {
			continue
		}
		ctx, node := c.context(cur)
		refs = append(refs, Reference{
			Ident:   id,
			Context: ctx,
			Node:    node,
		})
	}
	return refs
}

func (c *Checker) context(cur inspector.Cursor) (Context, ast.Node) {
	cur = code.Unparen(cur)
	kind, idx := cur.ParentEdge()
	parent := cur.Parent().Node()
	switch kind {
	case edge.CallExpr_Fun:
		return ContextCallee, parent
	case edge.CallExpr_Args:
		if code.IsConversion(c.Info, parent.(*ast.CallExpr)) {
			break
		}
		return ContextArgument, parent
	case edge.SelectorExpr_X:
		sel := parent.(*ast.SelectorExpr)
		if fn := code.SelectedMethod(c.Info, sel); fn != nil && fn.Name() == InvokeMethod {
			return ContextInvoke, sel
		}
		return ContextMember, sel
	case edge.AssignStmt_Lhs, edge.IncDecStmt_X:
		return ContextAssignTarget, parent
	case edge.AssignStmt_Rhs:
		stmt := parent.(*ast.AssignStmt)
		if len(stmt.Lhs) == len(stmt.Rhs) && code.IsBlank(stmt.Lhs[idx]) {
			return ContextDiscard, stmt
		}
		return ContextAssignSource, stmt
	case edge.ValueSpec_Values:
		spec := parent.(*ast.ValueSpec)
		if len(spec.Names) == len(spec.Values) && spec.Names[idx].Name == "_" {
			return ContextDiscard, spec
		}
		return ContextAssignSource, spec
	}
	return ContextOther, cur.Node()
}
