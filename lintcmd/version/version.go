// Package version prints version information about linter binaries.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// String returns a human readable version descriptor. If human is
// "devel", the version of the main module is used instead, if known.
func String(human, machine string) string {
	if human != "devel" {
		return fmt.Sprintf("%s (%s)", human, machine)
	}
	if v, ok := buildInfoVersion(); ok {
		return fmt.Sprintf("devel, %s", v)
	}
	return "no version"
}

func Print(human, machine string) {
	name := filepath.Base(os.Args[0])
	if human != "devel" {
		fmt.Printf("%s %s\n", name, String(human, machine))
	} else {
		fmt.Printf("%s (%s)\n", name, String(human, machine))
	}
}

func Verbose(human, machine string) {
	Print(human, machine)
	fmt.Println()
	fmt.Println("Compiled with Go version:", runtime.Version())
	printBuildInfo()
}
