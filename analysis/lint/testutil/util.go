// Package testutil runs lint.Analyzer analyzers on test data.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/lint"

	"golang.org/x/tools/go/analysis/analysistest"
)

// CheckDocumentation verifies that the analyzer's structured
// documentation is complete and in sync with its flags.
func CheckDocumentation(t *testing.T, a *lint.Analyzer) {
	t.Helper()
	if a.Doc == nil {
		t.Fatalf("analyzer %s has no documentation", a.Analyzer.Name)
	}
	if a.Doc.Title == "" {
		t.Errorf("analyzer %s has no title", a.Analyzer.Name)
	}
	if strings.HasSuffix(a.Doc.Title, ".") {
		t.Errorf("title of analyzer %s ends with a period", a.Analyzer.Name)
	}
	if a.Doc.Severity == lint.SeverityNone {
		t.Errorf("analyzer %s has no severity", a.Analyzer.Name)
	}
	for _, opt := range a.Doc.Options {
		if a.Analyzer.Flags.Lookup(opt) == nil {
			t.Errorf("analyzer %s documents option %q but has no such flag", a.Analyzer.Name, opt)
		}
	}
	if a.Analyzer.Doc != a.Doc.String() {
		t.Errorf("analyzer %s wasn't initialized with InitializeAnalyzer", a.Analyzer.Name)
	}
}

// Run checks a's documentation and runs it on the named packages in
// testdata/src. If no packages are named, all of them are used.
// Packages containing .golden files also have their suggested fixes
// checked.
func Run(t *testing.T, a *lint.Analyzer, pkgs ...string) {
	t.Helper()
	CheckDocumentation(t, a)

	testdata := analysistest.TestData()
	if len(pkgs) == 0 {
		dirs, err := filepath.Glob(filepath.Join(testdata, "src", "*"))
		if err != nil {
			t.Fatalf("couldn't enumerate test data: %s", err)
		}
		for _, dir := range dirs {
			pkgs = append(pkgs, filepath.Base(dir))
		}
	}
	if len(pkgs) == 0 {
		t.Fatalf("found no tests")
	}

	for _, pkg := range pkgs {
		if hasGolden(t, filepath.Join(testdata, "src", pkg)) {
			analysistest.RunWithSuggestedFixes(t, testdata, a.Analyzer, pkg)
		} else {
			analysistest.Run(t, testdata, a.Analyzer, pkg)
		}
	}
}

func hasGolden(t *testing.T, dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("couldn't read test data: %s", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".golden") {
			return true
		}
	}
	return false
}
