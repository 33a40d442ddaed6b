// rangecheck reports integer comparisons whose outcome is fixed by the
// ranges of their operands, and divisions by values that are always
// zero.
package main

import (
	"os"

	"honnef.co/go/ranges/analysis/rangecheck"
	"honnef.co/go/ranges/version"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-version", "--version":
			version.Print(os.Stdout)
			return
		case "-debug.version":
			version.Verbose(os.Stdout)
			return
		}
	}
	singlechecker.Main(rangecheck.Analyzer)
}
