// Package mustuse checks that parameters of must-use types are used.
//
// A type is must-use if its declaration carries a MustUse annotation
// (see package marker). Inside a function, a parameter of such a type
// has to be consumed: called, have its Invoke method called, or be
// passed on to another function. Which contexts count as consuming is
// decided by a Policy.
package mustuse

import (
	"fmt"
	"go/types"
	"runtime"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/code"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/facts/generated"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/facts/marker"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/lint"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/report"
	"github.com/jkendall327/InvocationRequiredAnalyzer/config"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var SCAnalyzer = lint.InitializeAnalyzer(&lint.Analyzer{
	Analyzer: &analysis.Analyzer{
		Name:             "MustUseType",
		Run:              run,
		Requires:         []*analysis.Analyzer{inspect.Analyzer, marker.Analyzer, generated.Analyzer, config.Analyzer},
		RunDespiteErrors: true,
	},
	Doc: &lint.Documentation{
		Title: `Parameter of a must-use type is never used`,
		Text: `Types whose declaration is annotated with MustUse, in any
namespace, impose an obligation on every function that receives a
value of that type: the value has to be used. This is useful for
callbacks and continuations that must be run, and for resources
that must be handed on.

Under the default, strict policy a parameter is used if it is called,
if its Invoke method is called, or if it is passed as an argument to
another function. What the other function does with it is not
checked. Assigning to the parameter or assigning it to the blank
identifier does not use it.

The policy can be changed with the -policy flag or the policy key in
the [mustuse] section of mustuse.conf. The invocation policy only
accepts direct calls; the permissive policy additionally accepts any
method call or field access and storing the value in a variable.

Parameters named _ are deliberately unused and are not flagged.`,
		Before: `
//lint:MustUse
type Done func()

func work(done Done) {
	_ = done
}`,
		After: `
//lint:MustUse
type Done func()

func work(done Done) {
	defer done()
}`,
		Since:    "2026.1",
		Options:  []string{"policy"},
		Severity: lint.SeverityWarning,
	},
})

var Analyzer = SCAnalyzer.Analyzer

var policy policyFlag

func init() {
	Analyzer.Flags.Var(&policy, "policy", "`policy` deciding which uses count (invocation, strict or permissive); defaults to the configured policy")
}

// A Checker finds parameters of must-use types that are never
// consumed. It only reads Info, so a Checker can be used for
// multiple functions concurrently.
type Checker struct {
	Info *types.Info
	// Marked reports whether a type carries the must-use marker.
	Marked func(types.Type) bool
	Policy Policy
}

// A Finding is the outcome of checking one binding.
type Finding struct {
	Binding
	References []Reference
	Verdict    Verdict
}

// Check scans root for marked parameters and classifies each of
// them. Parameters are classified in parallel; the findings are
// returned in source order.
func (c *Checker) Check(root inspector.Cursor) []Finding {
	bindings := c.Scan(root)
	findings := make([]Finding, len(bindings))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range bindings {
		g.Go(func() error {
			refs := c.Collect(b)
			findings[i] = Finding{
				Binding:    b,
				References: refs,
				Verdict:    c.Policy.Fold(refs),
			}
			return nil
		})
	}
	_ = g.Wait()
	return findings
}

func policyFor(pass *analysis.Pass) (Policy, error) {
	if policy.set {
		return policy.policy, nil
	}
	return configuredPolicy(config.For(pass).MustUse.Policy)
}

func configuredPolicy(name string) (Policy, error) {
	p, err := ParsePolicy(name)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", config.ConfigName, err)
	}
	return p, nil
}

var notAUse = map[Context]string{
	ContextOther:        "referenced here",
	ContextInvoke:       "Invoke is called here, which the invocation policy doesn't count",
	ContextArgument:     "passed on here, which the invocation policy doesn't count",
	ContextAssignTarget: "overwritten here",
	ContextDiscard:      "discarded here",
	ContextMember:       "accessed here, which only the permissive policy counts",
	ContextAssignSource: "stored here, which only the permissive policy counts",
}

func run(pass *analysis.Pass) (any, error) {
	p, err := policyFor(pass)
	if err != nil {
		return nil, err
	}
	marked := pass.ResultOf[marker.Analyzer].(*marker.Result)
	c := &Checker{
		Info:   pass.TypesInfo,
		Marked: marked.Marked,
		Policy: p,
	}

	for _, f := range c.Check(code.Inspector(pass).Root()) {
		if f.Verdict == Consumed {
			continue
		}
		opts := []report.Option{report.FilterGenerated()}
		for _, ref := range f.References {
			opts = append(opts, report.Related(ref.Node, notAUse[ref.Context]))
		}
		if len(f.References) == 0 {
			opts = append(opts, report.Fixes(analysis.SuggestedFix{
				Message: "Rename the parameter to _",
				TextEdits: []analysis.TextEdit{{
					Pos:     f.Ident.Pos(),
					End:     f.Ident.End(),
					NewText: []byte("_"),
				}},
			}))
		}
		report.Report(pass, f.Ident, fmt.Sprintf("parameter '%s' has a must-use type but is never used", f.Name()), opts...)
	}
	return nil, nil
}
