package report

import (
	"go/token"
	"path/filepath"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/facts/generated"

	"golang.org/x/tools/go/analysis"
)

type Options struct {
	FilterGenerated bool
	Related         []analysis.RelatedInformation
	Fixes           []analysis.SuggestedFix
}

type Option func(*Options)

// FilterGenerated suppresses the diagnostic if it points into a
// generated file.
func FilterGenerated() Option {
	return func(opts *Options) {
		opts.FilterGenerated = true
	}
}

// Related attaches an additional location to the diagnostic.
func Related(node Positioner, message string) Option {
	return func(opts *Options) {
		pos, end := getRange(node)
		r := analysis.RelatedInformation{
			Pos:     pos,
			End:     end,
			Message: message,
		}
		opts.Related = append(opts.Related, r)
	}
}

func Fixes(fixes ...analysis.SuggestedFix) Option {
	return func(opts *Options) {
		opts.Fixes = append(opts.Fixes, fixes...)
	}
}

type Positioner interface {
	Pos() token.Pos
}

type fullPositioner interface {
	Pos() token.Pos
	End() token.Pos
}

func getRange(node Positioner) (start, end token.Pos) {
	switch n := node.(type) {
	case fullPositioner:
		return n.Pos(), n.End()
	default:
		return n.Pos(), token.NoPos
	}
}

func Report(pass *analysis.Pass, node Positioner, message string, opts ...Option) {
	cfg := &Options{}
	for _, opt := range opts {
		opt(cfg)
	}

	file := DisplayPosition(pass.Fset, node.Pos()).Filename
	if cfg.FilterGenerated {
		m := pass.ResultOf[generated.Analyzer].(map[string]bool)
		if m[file] {
			return
		}
	}

	start, end := getRange(node)
	d := analysis.Diagnostic{
		Pos:            start,
		End:            end,
		Message:        message,
		SuggestedFixes: cfg.Fixes,
		Related:        cfg.Related,
	}
	pass.Report(d)
}

// DisplayPosition returns the position of p for display to the user.
func DisplayPosition(fset *token.FileSet, p token.Pos) token.Position {
	if p == token.NoPos {
		return token.Position{}
	}

	// Only use the adjusted position if it points to another Go file.
	// This means we'll point to the original file for cgo files, but
	// we won't point to a YACC grammar file.
	pos := fset.PositionFor(p, false)
	adjPos := fset.PositionFor(p, true)

	if filepath.Ext(adjPos.Filename) == ".go" {
		return adjPos
	}

	return pos
}
