// Package directives parses annotation comments.
//
// An annotation is a comment of the form '//<namespace>:<name>
// [arguments...]', with no space between the slashes and the
// namespace. Annotations in the doc comment of a type declaration
// attach metadata to that type. Annotations in the 'lint' namespace
// attached to any node are linter directives, such as
// '//lint:ignore'.
package directives

import (
	"go/ast"
	"go/token"
	"reflect"
	"strings"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/report"

	"golang.org/x/tools/go/analysis"
)

// An Annotation is a single parsed annotation comment.
type Annotation struct {
	Namespace string
	Name      string
	Arguments []string
	Comment   *ast.Comment
}

// Parse parses a single comment. It reports false if the comment
// isn't an annotation.
func Parse(c *ast.Comment) (Annotation, bool) {
	s, ok := strings.CutPrefix(c.Text, "//")
	if !ok {
		return Annotation{}, false
	}
	head, rest, _ := strings.Cut(s, " ")
	ns, name, ok := strings.Cut(head, ":")
	if !ok || !validNamespace(ns) || !validName(name) {
		return Annotation{}, false
	}
	return Annotation{
		Namespace: ns,
		Name:      name,
		Arguments: strings.Fields(rest),
		Comment:   c,
	}, true
}

func validNamespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// FromDoc returns all annotations in a comment group, in order.
func FromDoc(cg *ast.CommentGroup) []Annotation {
	if cg == nil {
		return nil
	}
	var out []Annotation
	for _, c := range cg.List {
		if a, ok := Parse(c); ok {
			out = append(out, a)
		}
	}
	return out
}

// TypeDoc returns the annotations attached to a type declaration.
// For a declaration that isn't parenthesized, the doc comment
// belongs to the GenDecl rather than the TypeSpec.
func TypeDoc(decl *ast.GenDecl, spec *ast.TypeSpec) []Annotation {
	out := FromDoc(spec.Doc)
	if !decl.Lparen.IsValid() {
		out = append(out, FromDoc(decl.Doc)...)
	}
	return out
}

// A Directive is an annotation in the 'lint' namespace. It represents
// instructions to the static analysis tool.
type Directive struct {
	Command   string
	Arguments []string
	Directive *ast.Comment
	Node      ast.Node
}

type SerializedDirective struct {
	Command   string
	Arguments []string
	// The position of the comment
	DirectivePosition token.Position
	// The position of the node that the comment is attached to
	NodePosition token.Position
}

func ParseDirectives(files []*ast.File, fset *token.FileSet) []Directive {
	var dirs []Directive
	for _, f := range files {
		cm := ast.NewCommentMap(fset, f, f.Comments)
		for node, cgs := range cm {
			for _, cg := range cgs {
				for _, a := range FromDoc(cg) {
					if a.Namespace != "lint" {
						continue
					}
					dirs = append(dirs, Directive{
						Command:   a.Name,
						Arguments: a.Arguments,
						Directive: a.Comment,
						Node:      node,
					})
				}
			}
		}
	}
	return dirs
}

func SerializeDirective(dir Directive, fset *token.FileSet) SerializedDirective {
	return SerializedDirective{
		Command:           dir.Command,
		Arguments:         dir.Arguments,
		DirectivePosition: report.DisplayPosition(fset, dir.Directive.Pos()),
		NodePosition:      report.DisplayPosition(fset, dir.Node.Pos()),
	}
}

var Analyzer = &analysis.Analyzer{
	Name:             "directives",
	Doc:              "extracts linter directives",
	Run:              directives,
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf([]SerializedDirective{}),
}

func directives(pass *analysis.Pass) (any, error) {
	dirs := ParseDirectives(pass.Files, pass.Fset)
	out := make([]SerializedDirective, len(dirs))
	for i, dir := range dirs {
		out[i] = SerializeDirective(dir, pass.Fset)
	}
	return out, nil
}
