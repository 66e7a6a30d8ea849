package directives

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Annotation
		ok   bool
	}{
		{"//lint:MustUse", Annotation{Namespace: "lint", Name: "MustUse"}, true},
		{"//acme.io:MustUse", Annotation{Namespace: "acme.io", Name: "MustUse"}, true},
		{"//lint:ignore MustUseType reason goes here", Annotation{Namespace: "lint", Name: "ignore", Arguments: []string{"MustUseType", "reason", "goes", "here"}}, true},
		{"//go:generate", Annotation{Namespace: "go", Name: "generate"}, true},
		{"// lint:MustUse", Annotation{}, false},
		{"//MustUse", Annotation{}, false},
		{"//lint:", Annotation{}, false},
		{"//:MustUse", Annotation{}, false},
		{"//Lint:MustUse", Annotation{Namespace: "Lint", Name: "MustUse"}, true},
		{"//Acme:MustUse", Annotation{Namespace: "Acme", Name: "MustUse"}, true},
		{"//ac me:MustUse", Annotation{}, false},
		{"//http://example.com", Annotation{}, false},
		{"/* lint:MustUse */", Annotation{}, false},
	}
	for _, tt := range tests {
		got, ok := Parse(&ast.Comment{Text: tt.text})
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %t, want %t", tt.text, ok, tt.ok)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Annotation{}, "Comment"), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

const src = `//lint:file-ignore MustUseType generated by hand
package pkg

// Grouped has a doc comment on the spec.
type (
	//lint:MustUse
	Grouped func()

	Plain func()
)

// Single is not grouped.
//
//acme:MustUse extra
type Single interface{ Invoke() }

//lint:ignore MustUseType this is fine
func fn(s Single) {}
`

func TestTypeDoc(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "pkg.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}

	got := map[string][]string{}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			var names []string
			for _, a := range TypeDoc(gd, ts) {
				names = append(names, a.Namespace+":"+a.Name)
			}
			got[ts.Name.Name] = names
		}
	}
	want := map[string][]string{
		"Grouped": {"lint:MustUse"},
		"Plain":   nil,
		"Single":  {"acme:MustUse"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("TypeDoc mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDirectives(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "pkg.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, dir := range ParseDirectives([]*ast.File{f}, fset) {
		sd := SerializeDirective(dir, fset)
		got = append(got, sd.Command)
		if sd.Command == "ignore" {
			if sd.NodePosition.Line != 18 {
				t.Errorf("ignore directive attached to line %d, want 18", sd.NodePosition.Line)
			}
			if diff := cmp.Diff([]string{"MustUseType", "this", "is", "fine"}, sd.Arguments); diff != "" {
				t.Errorf("arguments mismatch (-want +got):\n%s", diff)
			}
		}
	}
	want := []string{"MustUse", "file-ignore", "ignore"}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("directives mismatch (-want +got):\n%s", diff)
	}
}
