package lintcmd

import (
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/facts/directives"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/lint"
	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/report"
	"github.com/jkendall327/InvocationRequiredAnalyzer/config"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"
)

type severity uint8

const (
	severityError severity = iota
	severityWarning
	severityIgnored
)

func (s severity) String() string {
	switch s {
	case severityError:
		return "error"
	case severityWarning:
		return "warning"
	case severityIgnored:
		return "ignored"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

type related struct {
	Position token.Position
	End      token.Position
	Message  string
}

// diagnostic is a diagnostic enriched with the information the
// frontend needs to display it.
type diagnostic struct {
	Position token.Position
	End      token.Position
	Category string
	Message  string
	Related  []related
	Severity severity
}

func (p diagnostic) String() string {
	if p.Category == "compile" {
		return p.Message
	}
	return fmt.Sprintf("%s (%s)", p.Message, p.Category)
}

type options struct {
	// Checks is the list of enabled checks. The entry "inherit" is
	// replaced, per package, with the checks of that package's
	// configuration.
	Checks    []string
	Tags      string
	LintTests bool
	// Dir is the directory packages are loaded from; empty means
	// the current directory.
	Dir string
}

type ignore interface {
	Match(p diagnostic) bool
}

type lineIgnore struct {
	File    string
	Line    int
	Checks  []string
	Matched bool
	Pos     token.Position
}

func (li *lineIgnore) Match(p diagnostic) bool {
	if p.Position.Filename != li.File || p.Position.Line != li.Line {
		return false
	}
	for _, c := range li.Checks {
		if m, _ := filepath.Match(c, p.Category); m {
			li.Matched = true
			return true
		}
	}
	return false
}

func (li *lineIgnore) String() string {
	matched := "not matched"
	if li.Matched {
		matched = "matched"
	}
	return fmt.Sprintf("%s:%d %s (%s)", li.File, li.Line, strings.Join(li.Checks, ", "), matched)
}

type fileIgnore struct {
	File   string
	Checks []string
}

func (fi *fileIgnore) Match(p diagnostic) bool {
	if p.Position.Filename != fi.File {
		return false
	}
	for _, c := range fi.Checks {
		if m, _ := filepath.Match(c, p.Category); m {
			return true
		}
	}
	return false
}

func parseDirectives(dirs []directives.SerializedDirective) ([]ignore, []diagnostic) {
	var ignores []ignore
	var problems []diagnostic

	for _, dir := range dirs {
		cmd := dir.Command
		args := dir.Arguments
		switch cmd {
		case "ignore", "file-ignore":
			if len(args) < 2 {
				p := diagnostic{
					Position: dir.NodePosition,
					Message:  "malformed linter directive; missing the required reason field?",
					Category: "compile",
					Severity: severityError,
				}
				problems = append(problems, p)
				continue
			}
		default:
			// unknown directive, ignore
			continue
		}
		checks := strings.Split(args[0], ",")
		pos := dir.NodePosition
		var ig ignore
		switch cmd {
		case "ignore":
			ig = &lineIgnore{
				File:   pos.Filename,
				Line:   pos.Line,
				Checks: checks,
				Pos:    dir.DirectivePosition,
			}
		case "file-ignore":
			ig = &fileIgnore{
				File:   pos.Filename,
				Checks: checks,
			}
		}
		ignores = append(ignores, ig)
	}

	return ignores, problems
}

// filterAnalyzerNames resolves a list of check selectors, such as
// "all", "-MustUseType" or "MustUse*", to the set of enabled
// analyzers. Names are matched case-insensitively.
func filterAnalyzerNames(analyzers []string, checks []string) (map[string]bool, error) {
	allowedChecks := map[string]bool{}
	byLower := map[string]string{}
	for _, a := range analyzers {
		byLower[strings.ToLower(a)] = a
	}

	for _, check := range checks {
		b := true
		if len(check) > 1 && check[0] == '-' {
			b = false
			check = check[1:]
		}
		lcheck := strings.ToLower(check)
		if lcheck == "*" || lcheck == "all" {
			// Match all
			for _, c := range analyzers {
				allowedChecks[c] = b
			}
		} else if prefix, ok := strings.CutSuffix(lcheck, "*"); ok {
			// Glob
			matched := false
			for lc, c := range byLower {
				if strings.HasPrefix(lc, prefix) {
					allowedChecks[c] = b
					matched = true
				}
			}
			if !matched {
				return nil, fmt.Errorf("check %q matched no checks", check)
			}
		} else {
			// Literal check name
			c, ok := byLower[lcheck]
			if !ok {
				return nil, fmt.Errorf("unknown check %q", check)
			}
			allowedChecks[c] = b
		}
	}
	return allowedChecks, nil
}

type linter struct {
	analyzers map[string]*lint.Analyzer
	opts      *options
}

func doLint(as []*lint.Analyzer, paths []string, opts *options) ([]diagnostic, []string, error) {
	l := &linter{
		analyzers: map[string]*lint.Analyzer{},
		opts:      opts,
	}
	for _, a := range as {
		l.analyzers[a.Analyzer.Name] = a
	}
	return l.lint(paths)
}

func (l *linter) analyzerNames() []string {
	names := make([]string, 0, len(l.analyzers))
	for name := range l.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// enabledChecks resolves the enabled checks of a package with the
// given configuration.
func (l *linter) enabledChecks(cfg *config.Config) (map[string]bool, error) {
	return filterAnalyzerNames(l.analyzerNames(), resolveChecks(l.opts.Checks, cfg.Checks))
}

func (l *linter) lint(paths []string) ([]diagnostic, []string, error) {
	var warnings []string
	names := l.analyzerNames()
	// Catch unknown checks on the command line before loading anything.
	if _, err := filterAnalyzerNames(names, resolveChecks(l.opts.Checks, nil)); err != nil {
		return nil, nil, err
	}
	if !slices.Contains(l.opts.Checks, "inherit") {
		// Without inherit, configuration files cannot enable anything.
		allowed, err := filterAnalyzerNames(names, l.opts.Checks)
		if err != nil {
			return nil, nil, err
		}
		if !slices.ContainsFunc(names, func(name string) bool { return allowed[name] }) {
			warnings = append(warnings, "no checks are enabled")
			return nil, warnings, nil
		}
	}

	cfg := &packages.Config{
		Mode:  packages.LoadAllSyntax,
		Tests: l.opts.LintTests,
		Dir:   l.opts.Dir,
	}
	if l.opts.Tags != "" {
		cfg.BuildFlags = []string{"-tags", l.opts.Tags}
	}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't load packages: %w", err)
	}
	if len(pkgs) == 0 {
		warnings = append(warnings, "no packages matched the given patterns")
		return nil, warnings, nil
	}

	var problems []diagnostic
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			problems = append(problems, compileError(err))
		}
	})

	roots := []*analysis.Analyzer{directives.Analyzer, config.Analyzer}
	for _, name := range names {
		roots = append(roots, l.analyzers[name].Analyzer)
	}
	graph, err := checker.Analyze(roots, pkgs, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't run analyzers: %w", err)
	}

	// Checks are enabled per package, according to the configuration
	// files of the package's directory.
	enabled := map[*packages.Package]map[string]bool{}
	for _, act := range graph.Roots {
		if act.Analyzer != config.Analyzer {
			continue
		}
		if act.Err != nil {
			problems = append(problems, actionError(act))
			continue
		}
		allowed, err := l.enabledChecks(act.Result.(*config.Config))
		if err != nil {
			problems = append(problems, packageProblem(act.Package, fmt.Sprintf("invalid %s: %s", config.ConfigName, err)))
			continue
		}
		enabled[act.Package] = allowed
	}

	var ignores []ignore
	for _, act := range graph.Roots {
		switch act.Analyzer {
		case config.Analyzer:
			continue
		case directives.Analyzer:
			if act.Err != nil {
				problems = append(problems, actionError(act))
				continue
			}
			igs, ps := parseDirectives(act.Result.([]directives.SerializedDirective))
			ignores = append(ignores, igs...)
			problems = append(problems, ps...)
			continue
		}
		allowed, ok := enabled[act.Package]
		if !ok || !allowed[act.Analyzer.Name] {
			continue
		}
		if act.Err != nil {
			if len(act.Package.Errors) > 0 && !act.Analyzer.RunDespiteErrors {
				// The package's errors have already been reported.
				warnings = append(warnings, fmt.Sprintf("%s: %s", act, act.Err))
			} else {
				problems = append(problems, actionError(act))
			}
			continue
		}
		sev := severityWarning
		if a, ok := l.analyzers[act.Analyzer.Name]; ok && a.Doc != nil && a.Doc.Severity == lint.SeverityError {
			sev = severityError
		}
		for _, d := range act.Diagnostics {
			problems = append(problems, convertDiagnostic(act.Package.Fset, act.Analyzer.Name, d, sev))
		}
	}

	for i := range problems {
		for _, ig := range ignores {
			if ig.Match(problems[i]) {
				problems[i].Severity = severityIgnored
				break
			}
		}
	}

	return uniqueDiagnostics(problems), warnings, nil
}

// actionError turns a failed analysis into an error diagnostic, so
// that a broken configuration cannot pass unnoticed.
func actionError(act *checker.Action) diagnostic {
	return packageProblem(act.Package, fmt.Sprintf("%s: %s", act.Analyzer.Name, act.Err))
}

// packageProblem returns a compile diagnostic positioned at the first
// file of pkg.
func packageProblem(pkg *packages.Package, msg string) diagnostic {
	var pos token.Position
	if len(pkg.GoFiles) > 0 {
		pos.Filename = pkg.GoFiles[0]
	}
	return diagnostic{
		Position: pos,
		End:      pos,
		Message:  msg,
		Category: "compile",
		Severity: severityError,
	}
}

func compileError(err packages.Error) diagnostic {
	var pos token.Position
	if err.Pos != "" && err.Pos != "-" {
		pos = parsePos(err.Pos)
	}
	return diagnostic{
		Position: pos,
		End:      pos,
		Message:  err.Msg,
		Category: "compile",
		Severity: severityError,
	}
}

// parsePos parses a position of the form file:line:column, or a
// prefix thereof.
func parsePos(s string) token.Position {
	var pos token.Position
	parts := strings.Split(s, ":")
	// Windows paths contain a colon after the drive letter.
	if len(parts) > 3 {
		parts = append([]string{strings.Join(parts[:len(parts)-2], ":")}, parts[len(parts)-2:]...)
	}
	pos.Filename = parts[0]
	if len(parts) > 1 {
		fmt.Sscanf(parts[1], "%d", &pos.Line)
	}
	if len(parts) > 2 {
		fmt.Sscanf(parts[2], "%d", &pos.Column)
	}
	return pos
}

func convertDiagnostic(fset *token.FileSet, check string, d analysis.Diagnostic, sev severity) diagnostic {
	p := diagnostic{
		Position: report.DisplayPosition(fset, d.Pos),
		End:      report.DisplayPosition(fset, d.End),
		Category: check,
		Message:  d.Message,
		Severity: sev,
	}
	for _, r := range d.Related {
		p.Related = append(p.Related, related{
			Position: report.DisplayPosition(fset, r.Pos),
			End:      report.DisplayPosition(fset, r.End),
			Message:  r.Message,
		})
	}
	return p
}

// uniqueDiagnostics sorts diagnostics by position and removes
// duplicates. Duplicates occur when a file is part of a package and
// of that package's test variant.
func uniqueDiagnostics(ps []diagnostic) []diagnostic {
	sort.SliceStable(ps, func(i, j int) bool {
		pi, pj := ps[i].Position, ps[j].Position
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		if ps[i].Category != ps[j].Category {
			return ps[i].Category < ps[j].Category
		}
		return ps[i].Message < ps[j].Message
	})

	out := ps[:0]
	for i, p := range ps {
		if i > 0 {
			prev := ps[i-1]
			if prev.Position == p.Position && prev.Category == p.Category && prev.Message == p.Message {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
