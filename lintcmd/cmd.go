// Package lintcmd implements the frontend of an analysis runner.
// It serves as the entry-point for the mustuse command, and can also
// be used to implement other linters that behave like mustuse.
package lintcmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sort"
	"strings"

	"github.com/jkendall327/InvocationRequiredAnalyzer/analysis/lint"
	"github.com/jkendall327/InvocationRequiredAnalyzer/lintcmd/version"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/buildutil"
)

// Command represents a linter command line tool.
type Command struct {
	name           string
	analyzers      map[string]*lint.Analyzer
	version        string
	machineVersion string

	stdout io.Writer
	stderr io.Writer

	flags struct {
		fs *flag.FlagSet

		tags         string
		tests        bool
		printVersion bool
		showIgnored  bool
		formatter    string
		explain      string
		listChecks   bool

		debugCpuprofile string
		debugMemprofile string
		debugVersion    bool
		debugTrace      string

		checks list
		fail   list
	}
}

// NewCommand returns a new Command.
func NewCommand(name string) *Command {
	cmd := &Command{
		name:           name,
		analyzers:      map[string]*lint.Analyzer{},
		version:        "devel",
		machineVersion: "devel",
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
	cmd.initFlagSet(name)
	return cmd
}

// SetVersion sets the command's version.
// It is divided into a human part and a machine part.
// If you only use Semver, you can set both parts to the same value.
//
// Calling this method is optional. Both versions default to "devel",
// and we'll attempt to deduce more version information from the Go
// module.
func (cmd *Command) SetVersion(human, machine string) {
	cmd.version = human
	cmd.machineVersion = machine
}

// FlagSet returns the command's flag set.
// This can be used to add additional command line arguments.
func (cmd *Command) FlagSet() *flag.FlagSet {
	return cmd.flags.fs
}

// AddAnalyzers adds analyzers to the command.
// These are lint.Analyzer analyzers, which wrap analysis.Analyzer
// analyzers, bundling them with structured documentation.
//
// The flags of each analyzer are made available as -Name.flag.
//
// To add analysis.Analyzer analyzers without providing structured
// documentation, use AddBareAnalyzers.
func (cmd *Command) AddAnalyzers(as ...*lint.Analyzer) {
	for _, a := range as {
		cmd.analyzers[a.Analyzer.Name] = a
		cmd.addAnalyzerFlags(a.Analyzer)
	}
}

// AddBareAnalyzers adds bare analyzers to the command.
func (cmd *Command) AddBareAnalyzers(as ...*analysis.Analyzer) {
	for _, a := range as {
		var title, text string
		if idx := strings.Index(a.Doc, "\n\n"); idx > -1 {
			title = a.Doc[:idx]
			text = a.Doc[idx+2:]
		} else {
			title = a.Doc
		}

		doc := &lint.Documentation{
			Title:    title,
			Text:     text,
			Severity: lint.SeverityWarning,
		}

		cmd.analyzers[a.Name] = &lint.Analyzer{
			Doc:      doc,
			Analyzer: a,
		}
		cmd.addAnalyzerFlags(a)
	}
}

func (cmd *Command) addAnalyzerFlags(a *analysis.Analyzer) {
	a.Flags.VisitAll(func(f *flag.Flag) {
		cmd.flags.fs.Var(f.Value, a.Name+"."+f.Name, f.Usage)
	})
}

func (cmd *Command) initFlagSet(name string) {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	cmd.flags.fs = flags
	flags.Usage = usage(name, flags)

	flags.StringVar(&cmd.flags.tags, "tags", "", "List of `build tags`")
	flags.BoolVar(&cmd.flags.tests, "tests", true, "Include tests")
	flags.BoolVar(&cmd.flags.printVersion, "version", false, "Print version and exit")
	flags.BoolVar(&cmd.flags.showIgnored, "show-ignored", false, "Don't filter ignored problems")
	flags.StringVar(&cmd.flags.formatter, "f", "text", "Output `format` (valid choices are 'stylish', 'text', 'json' and 'null')")
	flags.StringVar(&cmd.flags.explain, "explain", "", "Print description of `check`")
	flags.BoolVar(&cmd.flags.listChecks, "list-checks", false, "List all available checks")

	flags.StringVar(&cmd.flags.debugCpuprofile, "debug.cpuprofile", "", "Write CPU profile to `file`")
	flags.StringVar(&cmd.flags.debugMemprofile, "debug.memprofile", "", "Write memory profile to `file`")
	flags.BoolVar(&cmd.flags.debugVersion, "debug.version", false, "Print detailed version information about this program")
	flags.StringVar(&cmd.flags.debugTrace, "debug.trace", "", "Write trace to `file`")

	cmd.flags.checks = list{"inherit"}
	cmd.flags.fail = list{"all"}
	flags.Var(&cmd.flags.checks, "checks", "Comma-separated list of `checks` to enable.")
	flags.Var(&cmd.flags.fail, "fail", "Comma-separated list of `checks` that can cause a non-zero exit status.")
}

type list []string

func (list *list) String() string {
	return `"` + strings.Join(*list, ",") + `"`
}

func (list *list) Set(s string) error {
	if s == "" {
		*list = nil
		return nil
	}

	*list = strings.Split(s, ",")
	return nil
}

// ParseFlags parses command line flags.
// It must be called before calling Run.
// After calling ParseFlags, the values of flags can be accessed.
//
// Example:
//
//	cmd.ParseFlags(os.Args[1:])
func (cmd *Command) ParseFlags(args []string) {
	cmd.flags.fs.Parse(args)
}

// resolveChecks replaces "inherit" in the -checks flag with the
// checks enabled by a package's configuration.
func resolveChecks(flagChecks, cfgChecks []string) []string {
	out := make([]string, 0, len(flagChecks)+len(cfgChecks))
	for _, c := range flagChecks {
		if c == "inherit" {
			out = append(out, cfgChecks...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Run runs all registered analyzers and reports their findings.
// It always calls os.Exit and does not return.
func (cmd *Command) Run() {
	exit := func(code int) {
		if cmd.flags.debugCpuprofile != "" {
			pprof.StopCPUProfile()
		}
		if path := cmd.flags.debugMemprofile; path != "" {
			f, err := os.Create(path)
			if err != nil {
				panic(err)
			}
			runtime.GC()
			pprof.WriteHeapProfile(f)
		}
		if cmd.flags.debugTrace != "" {
			trace.Stop()
		}
		os.Exit(code)
	}
	if path := cmd.flags.debugCpuprofile; path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}
	if path := cmd.flags.debugTrace; path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		trace.Start(f)
	}

	exit(cmd.run())
}

// run does the work of Run and returns the exit code.
func (cmd *Command) run() int {
	if cmd.flags.debugVersion {
		version.Verbose(cmd.version, cmd.machineVersion)
		return 0
	}

	cs := make([]*lint.Analyzer, 0, len(cmd.analyzers))
	for _, a := range cmd.analyzers {
		cs = append(cs, a)
	}
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].Analyzer.Name < cs[j].Analyzer.Name
	})

	if cmd.flags.listChecks {
		for _, c := range cs {
			var title string
			if c.Doc != nil {
				title = c.Doc.Title
			}
			fmt.Fprintf(cmd.stdout, "%s %s\n", c.Analyzer.Name, title)
		}
		return 0
	}

	if cmd.flags.printVersion {
		version.Print(cmd.version, cmd.machineVersion)
		return 0
	}

	// Validate that the tags argument is well-formed. go/packages
	// doesn't detect malformed build flags and returns unhelpful
	// errors.
	tf := buildutil.TagsFlag{}
	if err := tf.Set(cmd.flags.tags); err != nil {
		fmt.Fprintln(cmd.stderr, fmt.Errorf("invalid value %q for flag -tags: %s", cmd.flags.tags, err))
		return 1
	}

	if explain := cmd.flags.explain; explain != "" {
		var check *lint.Analyzer
		for name, a := range cmd.analyzers {
			if strings.EqualFold(name, explain) {
				check = a
				break
			}
		}
		if check == nil {
			fmt.Fprintln(cmd.stderr, "Couldn't find check", explain)
			return 1
		}
		if check.Analyzer.Doc == "" {
			fmt.Fprintln(cmd.stderr, explain, "has no documentation")
			return 1
		}
		fmt.Fprintln(cmd.stdout, check.Analyzer.Doc)
		if check.Analyzer.URL != "" {
			fmt.Fprintln(cmd.stdout, "Online documentation\n    "+check.Analyzer.URL)
		}
		return 0
	}

	var f formatter
	switch cmd.flags.formatter {
	case "text":
		f = textFormatter{W: cmd.stdout}
	case "stylish":
		f = &stylishFormatter{W: cmd.stdout}
	case "json":
		f = jsonFormatter{W: cmd.stdout}
	case "null":
		f = nullFormatter{}
	default:
		fmt.Fprintf(cmd.stderr, "unsupported output format %q\n", cmd.flags.formatter)
		return 2
	}

	if len(cmd.flags.fs.Args()) == 0 {
		cmd.flags.fs.Usage()
		return 2
	}

	ps, warnings, err := doLint(cs, cmd.flags.fs.Args(), &options{
		Checks:    cmd.flags.checks,
		Tags:      cmd.flags.tags,
		LintTests: cmd.flags.tests,
	})
	if err != nil {
		fmt.Fprintln(cmd.stderr, err)
		return 1
	}

	for _, w := range warnings {
		fmt.Fprintln(cmd.stderr, "warning:", w)
	}

	analyzerNames := make([]string, len(cs))
	for i, a := range cs {
		analyzerNames[i] = a.Analyzer.Name
	}
	shouldExit, err := filterAnalyzerNames(analyzerNames, cmd.flags.fail)
	if err != nil {
		fmt.Fprintln(cmd.stderr, err)
		return 2
	}
	shouldExit["compile"] = true

	numErrors, numWarnings, numIgnored, ps := applyFail(ps, shouldExit, cmd.flags.showIgnored)
	f.Format(cs, ps)
	if f, ok := f.(statter); ok {
		f.Stats(numErrors+numWarnings+numIgnored, numErrors, numWarnings, numIgnored)
	}

	if numErrors > 0 {
		return 1
	}
	return 0
}

// applyFail sets the severity of each diagnostic according to the
// -fail flag and drops ignored diagnostics unless showIgnored is set.
func applyFail(ps []diagnostic, shouldExit map[string]bool, showIgnored bool) (numErrors, numWarnings, numIgnored int, out []diagnostic) {
	out = make([]diagnostic, 0, len(ps))
	for _, p := range ps {
		if p.Severity == severityIgnored {
			numIgnored++
			if showIgnored {
				out = append(out, p)
			}
			continue
		}
		if shouldExit[p.Category] {
			p.Severity = severityError
			numErrors++
		} else {
			p.Severity = severityWarning
			numWarnings++
		}
		out = append(out, p)
	}
	return numErrors, numWarnings, numIgnored, out
}

func usage(name string, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [packages]\n", name)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		printDefaults(fs)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For help about specifying packages, see 'go help packages'")
	}
}

// isZeroValue determines whether the string represents the zero
// value for a flag.
//
// this function has been copied from the Go standard library's 'flag' package.
func isZeroValue(f *flag.Flag, value string) bool {
	typ := reflect.TypeOf(f.Value)
	var z reflect.Value
	if typ.Kind() == reflect.Ptr {
		z = reflect.New(typ.Elem())
	} else {
		z = reflect.Zero(typ)
	}
	return value == z.Interface().(flag.Value).String()
}

// this function has been copied from the Go standard library's 'flag' package and modified to skip debug flags.
func printDefaults(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		// Don't print debug flags
		if strings.HasPrefix(f.Name, "debug.") {
			return
		}

		var b strings.Builder
		fmt.Fprintf(&b, "  -%s", f.Name) // Two spaces before -; see next two comments.
		name, usage := flag.UnquoteUsage(f)
		if len(name) > 0 {
			b.WriteString(" ")
			b.WriteString(name)
		}
		// Boolean flags of one ASCII letter are so common we
		// treat them specially, putting their usage on the same line.
		if b.Len() <= 4 { // space, space, '-', 'x'.
			b.WriteString("\t")
		} else {
			// Four spaces before the tab triggers good alignment
			// for both 4- and 8-space tab stops.
			b.WriteString("\n    \t")
		}
		b.WriteString(strings.ReplaceAll(usage, "\n", "\n    \t"))

		if !isZeroValue(f, f.DefValue) {
			if T := reflect.TypeOf(f.Value); T.Name() == "*stringValue" && T.PkgPath() == "flag" {
				// put quotes on the value
				fmt.Fprintf(&b, " (default %q)", f.DefValue)
			} else {
				fmt.Fprintf(&b, " (default %v)", f.DefValue)
			}
		}
		fmt.Fprint(fs.Output(), b.String(), "\n")
	})
}
