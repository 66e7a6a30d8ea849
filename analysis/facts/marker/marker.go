// Package marker computes which types carry the must-use marker.
//
// A type is marked by an annotation named MustUse, in any namespace,
// in the doc comment of its declaration:
//
//	//lint:MustUse
//	type Callback func()
//
// Package-level marked types are exported as IsMarked facts, so that
// the marker is visible to packages importing them.
package marker

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/code"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/facts/directives"
	"github.com/jkendall327/InvocationRequiredAnalyzer/go/types/typeutil"

	"golang.org/x/tools/go/analysis"
)

// Name is the annotation name that marks a type as must-use.
const Name = "MustUse"

// IsMarked is the fact attached to marked type names.
type IsMarked struct {
	// The namespace of the annotation that marked the type.
	Namespace string
}

func (*IsMarked) AFact() {}

func (m *IsMarked) String() string {
	return "must-use (" + m.Namespace + ")"
}

// Result is the set of marked types visible to a package: its own
// types, including function-local ones, and those of its
// dependencies.
type Result struct {
	marked map[*types.TypeName]*IsMarked
}

// Marked reports whether values of type T carry a must-use
// obligation. Invalid types are never marked.
func (r *Result) Marked(T types.Type) bool {
	return r.marked0(T, true)
}

func (r *Result) marked0(T types.Type, deref bool) bool {
	if T == nil {
		return false
	}
	// An alias declaration can carry the marker itself.
	for {
		alias, ok := T.(*types.Alias)
		if !ok {
			break
		}
		if r.Object(alias.Origin().Obj()) != nil {
			return true
		}
		T = alias.Rhs()
	}
	switch T := T.(type) {
	case *types.Named:
		return r.Object(T.Origin().Obj()) != nil
	case *types.Pointer:
		return deref && r.marked0(T.Elem(), false)
	case *types.TypeParam:
		terms := typeutil.TermTypes(T)
		if len(terms) == 0 {
			return false
		}
		for _, term := range terms {
			if !r.marked0(term, deref) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Object returns the marker fact of a type name, or nil.
func (r *Result) Object(obj *types.TypeName) *IsMarked {
	if r == nil || obj == nil {
		return nil
	}
	return r.marked[obj]
}

var Analyzer = &analysis.Analyzer{
	Name:             "mustusemarker",
	Doc:              "Mark types carrying the MustUse annotation",
	Run:              run,
	Requires:         code.RequiredAnalyzers,
	FactTypes:        []analysis.Fact{(*IsMarked)(nil)},
	ResultType:       reflect.TypeOf((*Result)(nil)),
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	res := &Result{marked: map[*types.TypeName]*IsMarked{}}

	for _, f := range pass.AllObjectFacts() {
		if tn, ok := f.Object.(*types.TypeName); ok {
			res.marked[tn] = f.Fact.(*IsMarked)
		}
	}

	fn := func(node ast.Node) {
		decl := node.(*ast.GenDecl)
		if decl.Tok != token.TYPE {
			return
		}
		for _, spec := range decl.Specs {
			spec := spec.(*ast.TypeSpec)
			for _, a := range directives.TypeDoc(decl, spec) {
				if a.Name != Name {
					continue
				}
				tn, ok := pass.TypesInfo.Defs[spec.Name].(*types.TypeName)
				if !ok {
					break
				}
				fact := &IsMarked{Namespace: a.Namespace}
				res.marked[tn] = fact
				if tn.Parent() == pass.Pkg.Scope() {
					pass.ExportObjectFact(tn, fact)
				}
				break
			}
		}
	}
	code.Preorder(pass, fn, (*ast.GenDecl)(nil))

	return res, nil
}
