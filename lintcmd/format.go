package lintcmd

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/lint"

	"github.com/fatih/color"
)

func shortPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && len(rel) < len(path) {
		return rel
	}
	return path
}

func relativePositionString(pos token.Position) string {
	s := shortPath(pos.Filename)
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

type statter interface {
	Stats(total, errors, warnings, ignored int)
}

type formatter interface {
	Format(checks []*lint.Analyzer, diagnostics []diagnostic)
}

type textFormatter struct {
	W io.Writer
}

func (o textFormatter) Format(_ []*lint.Analyzer, ps []diagnostic) {
	for _, p := range ps {
		fmt.Fprintf(o.W, "%s: %s\n", relativePositionString(p.Position), p.String())
		for _, r := range p.Related {
			fmt.Fprintf(o.W, "\t%s: %s\n", relativePositionString(r.Position), r.Message)
		}
	}
}

type nullFormatter struct{}

func (nullFormatter) Format([]*lint.Analyzer, []diagnostic) {}

type jsonFormatter struct {
	W io.Writer
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func newJSONLocation(pos token.Position) jsonLocation {
	return jsonLocation{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

type jsonRelated struct {
	Location jsonLocation `json:"location"`
	End      jsonLocation `json:"end"`
	Message  string       `json:"message"`
}

type jsonDiagnostic struct {
	Code     string        `json:"code"`
	Severity string        `json:"severity,omitempty"`
	Location jsonLocation  `json:"location"`
	End      jsonLocation  `json:"end"`
	Message  string        `json:"message"`
	Related  []jsonRelated `json:"related,omitempty"`
}

func (o jsonFormatter) Format(_ []*lint.Analyzer, ps []diagnostic) {
	enc := json.NewEncoder(o.W)
	for _, p := range ps {
		jp := jsonDiagnostic{
			Code:     p.Category,
			Severity: p.Severity.String(),
			Location: newJSONLocation(p.Position),
			End:      newJSONLocation(p.End),
			Message:  p.Message,
		}
		for _, r := range p.Related {
			jp.Related = append(jp.Related, jsonRelated{
				Location: newJSONLocation(r.Position),
				End:      newJSONLocation(r.End),
				Message:  r.Message,
			})
		}
		_ = enc.Encode(jp)
	}
}

var (
	errorCode   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningCode = color.New(color.FgYellow).SprintFunc()
	okIcon      = color.GreenString("✔")
	warningIcon = color.New(color.FgYellow, color.Bold).Sprint("!")
	errorIcon   = color.RedString("✘")
)

type stylishFormatter struct {
	W io.Writer

	prevFile string
	tw       *tabwriter.Writer
}

func (o *stylishFormatter) Format(_ []*lint.Analyzer, ps []diagnostic) {
	for _, p := range ps {
		pos := p.Position
		if pos.Filename == "" {
			pos.Filename = "-"
		}

		if pos.Filename != o.prevFile {
			if o.prevFile != "" {
				o.tw.Flush()
				fmt.Fprintln(o.W)
			}
			fmt.Fprintln(o.W, pos.Filename)
			o.prevFile = pos.Filename
			o.tw = tabwriter.NewWriter(o.W, 0, 4, 2, ' ', 0)
		}

		code := warningCode
		if p.Severity == severityError {
			code = errorCode
		}

		fmt.Fprintf(o.tw, "  (%d, %d)\t%s\t%s\n", pos.Line, pos.Column, code(p.Category), p.Message)
		for _, r := range p.Related {
			fmt.Fprintf(o.tw, "    (%d, %d)\t\t  %s\n", r.Position.Line, r.Position.Column, r.Message)
		}
	}
}

func (o *stylishFormatter) Stats(total, errors, warnings, ignored int) {
	if o.tw != nil {
		o.tw.Flush()
		fmt.Fprintln(o.W)
	}

	icon := okIcon
	if warnings != 0 {
		icon = warningIcon
	}
	if errors != 0 {
		icon = errorIcon
	}

	fmt.Fprintf(o.W, " %s %d problems (%d errors, %d warnings, %d ignored)\n",
		icon, total, errors, warnings, ignored)
}
