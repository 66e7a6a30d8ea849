// mustuse reports parameters of must-use types that are never used.
package main

import (
	"os"

	"github.com/jkendall327/InvocationRequiredAnalyzer/lintcmd"
	"github.com/jkendall327/InvocationRequiredAnalyzer/mustuse"
)

func main() {
	cmd := lintcmd.NewCommand("mustuse")
	cmd.SetVersion("2026.1", "v0.1.0")
	cmd.AddAnalyzers(mustuse.SCAnalyzer)
	cmd.ParseFlags(os.Args[1:])
	cmd.Run()
}
