package mustuse

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// A Binding is a parameter whose type carries the must-use marker.
type Binding struct {
	// Obj is the parameter's identity. References are matched
	// against it, never against its name.
	Obj *types.Var
	// Ident is the parameter's declaring identifier.
	Ident *ast.Ident
	// Func is the FuncDecl or FuncLit declaring the parameter.
	Func inspector.Cursor
	// Body is the body of Func.
	Body inspector.Cursor
}

func (b Binding) Name() string { return b.Obj.Name() }

// Scan returns the marked parameters of all functions and function
// literals below root, in source order. Function literals are scanned
// as functions of their own.
//
// Functions without bodies, receivers, results and parameters that
// are unnamed or named _ are skipped, as are parameters the type
// checker has no object for.
func (c *Checker) Scan(root inspector.Cursor) []Binding {
	var out []Binding
	for cur := range root.Preorder((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var typ *ast.FuncType
		var body *ast.BlockStmt
		switch fn := cur.Node().(type) {
		case *ast.FuncDecl:
			typ, body = fn.Type, fn.Body
		case *ast.FuncLit:
			typ, body = fn.Type, fn.Body
		}
		if body == nil || typ.Params == nil {
			continue
		}
		curBody, ok := cur.FindNode(body)
		if !ok {
			continue
		}

		for _, field := range typ.Params.List {
			for _, name := range field.Names {
				if name.Name == "_" {
					continue
				}
				obj, ok := c.Info.Defs[name].(*types.Var)
				if !ok {
					continue
				}
				if !c.Marked(obj.Type()) {
					continue
				}
				out = append(out, Binding{
					Obj:   obj,
					Ident: name,
					Func:  cur,
					Body:  curBody,
				})
			}
		}
	}
	return out
}
