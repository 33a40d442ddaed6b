// Package version reports the version of the rangecheck binary.
package version

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

// Version is set for releases. Development builds fall back to the
// module version recorded in the build information.
const Version = "devel"

// version returns a version descriptor and reports whether the
// version is a known release.
func version(info *debug.BuildInfo) (string, bool) {
	if Version != "devel" {
		return Version, true
	}
	if info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, false
	}
	return "devel", false
}

// Print writes the name and version of the running binary to w.
func Print(w io.Writer) {
	info, _ := debug.ReadBuildInfo()
	printVersion(w, filepath.Base(os.Args[0]), info)
}

func printVersion(w io.Writer, name string, info *debug.BuildInfo) {
	v, release := version(info)
	switch {
	case release:
		fmt.Fprintf(w, "%s %s\n", name, v)
	case v == "devel":
		fmt.Fprintf(w, "%s (no version)\n", name)
	default:
		fmt.Fprintf(w, "%s (devel, %s)\n", name, v)
	}
}

// Verbose is like Print but also lists the Go version and the
// modules the binary was built from.
func Verbose(w io.Writer) {
	Print(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compiled with Go version:", runtime.Version())
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(w, "Built without Go modules")
		return
	}
	printBuildInfo(w, info)
}

func printBuildInfo(w io.Writer, info *debug.BuildInfo) {
	fmt.Fprintln(w, "Main module:")
	printModule(w, &info.Main)
	fmt.Fprintln(w, "Dependencies:")
	for _, dep := range info.Deps {
		printModule(w, dep)
	}
}

func printModule(w io.Writer, m *debug.Module) {
	fmt.Fprintf(w, "\t%s", m.Path)
	if m.Version != "(devel)" {
		fmt.Fprintf(w, "@%s", m.Version)
	}
	if m.Sum != "" {
		fmt.Fprintf(w, " (sum: %s)", m.Sum)
	}
	if m.Replace != nil {
		fmt.Fprintf(w, " (replace: %s)", m.Replace.Path)
	}
	fmt.Fprintln(w)
}
