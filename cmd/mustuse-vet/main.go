// mustuse-vet runs the MustUseType check as a vet tool:
//
//	go vet -vettool=$(which mustuse-vet) ./...
package main

import (
	"github.com/jkendall327/InvocationRequiredAnalyzer/mustuse"

	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(mustuse.Analyzer)
}
