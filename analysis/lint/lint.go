// Package lint provides abstractions on top of go/analysis.
// These abstractions add extra information to analyzers, such as structured documentation and severities.
package lint

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer wraps a go/analysis.Analyzer and provides structured documentation.
type Analyzer struct {
	// The analyzer's documentation. Unlike go/analysis.Analyzer.Doc,
	// this field is structured, providing access to severity and
	// the version in which the check was added.
	Doc *Documentation
	// The actual analyzer.
	Analyzer *analysis.Analyzer
}

// InitializeAnalyzer fills in the analyzer's unstructured documentation
// and URL from its structured documentation.
func InitializeAnalyzer(a *Analyzer) *Analyzer {
	a.Analyzer.Doc = a.Doc.String()
	a.Analyzer.URL = "https://github.com/jkendall327/InvocationRequiredAnalyzer#" + strings.ToLower(a.Analyzer.Name)
	return a
}

// Severity describes the severity of diagnostics reported by an analyzer.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Documentation describes an analyzer.
type Documentation struct {
	// The title of the analyzer. Usually a single sentence.
	Title string
	// The main documentation text.
	Text string
	// Example code demonstrating the issue, and the fixed version.
	Before string
	After  string
	// The version in which the analyzer was first added.
	Since string
	// Options lists the flags or configuration keys that affect the analyzer.
	Options []string
	// Severity of diagnostics reported by the analyzer.
	Severity Severity
}

func (doc *Documentation) String() string {
	return doc.format(true)
}

// Format renders the documentation as plain text. If metadata is true,
// the severity, options and version are included.
func (doc *Documentation) Format(metadata bool) string {
	return doc.format(metadata)
}

func (doc *Documentation) format(metadata bool) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, doc.Title)
	if doc.Text != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, strings.TrimSpace(doc.Text))
	}
	if doc.Before != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, "Before:")
		fmt.Fprintln(b)
		for _, line := range strings.Split(strings.TrimSpace(doc.Before), "\n") {
			fmt.Fprint(b, "    ", line, "\n")
		}
		fmt.Fprintln(b)
		fmt.Fprintln(b, "After:")
		fmt.Fprintln(b)
		for _, line := range strings.Split(strings.TrimSpace(doc.After), "\n") {
			fmt.Fprint(b, "    ", line, "\n")
		}
	}
	if !metadata {
		return b.String()
	}
	fmt.Fprintln(b)
	if doc.Severity != SeverityNone {
		fmt.Fprintf(b, "Severity: %s\n", doc.Severity)
	}
	if len(doc.Options) > 0 {
		fmt.Fprintf(b, "Options: %s\n", strings.Join(doc.Options, ", "))
	}
	if doc.Since == "" || doc.Since == "Unreleased" {
		fmt.Fprint(b, "Available since\n    Unreleased\n")
	} else {
		fmt.Fprintf(b, "Available since\n    %s\n", doc.Since)
	}
	return b.String()
}
