package lint

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
)

func TestInitializeAnalyzer(t *testing.T) {
	a := InitializeAnalyzer(&Analyzer{
		Analyzer: &analysis.Analyzer{Name: "Example"},
		Doc: &Documentation{
			Title:    "Title of the check",
			Text:     "Longer text.",
			Before:   "f()",
			After:    "g()",
			Since:    "2026.1",
			Options:  []string{"policy"},
			Severity: SeverityWarning,
		},
	})

	doc := a.Analyzer.Doc
	for _, want := range []string{
		"Title of the check\n\nLonger text.\n",
		"Before:\n\n    f()\n",
		"After:\n\n    g()\n",
		"Severity: warning\n",
		"Options: policy\n",
		"Available since\n    2026.1\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("documentation %q does not contain %q", doc, want)
		}
	}
	if !strings.HasSuffix(a.Analyzer.URL, "#example") {
		t.Errorf("unexpected URL %q", a.Analyzer.URL)
	}
}

func TestDocumentationWithoutMetadata(t *testing.T) {
	doc := &Documentation{Title: "Title", Severity: SeverityWarning}
	if got := doc.Format(false); got != "Title\n" {
		t.Errorf("got %q, want %q", got, "Title\n")
	}
	if got := doc.Format(true); !strings.Contains(got, "Unreleased") {
		t.Errorf("expected unreleased marker in %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityNone:    "none",
		SeverityError:   "error",
		SeverityWarning: "warning",
		SeverityInfo:    "info",
		SeverityHint:    "hint",
		Severity(42):    "Severity(42)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
