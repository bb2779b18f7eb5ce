// Command silkrau converts SLB game-data files to YAML and back.
package main

import (
	"io"
	"os"
)

const (
	exitOK      = 0
	exitFailure = -1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).execute(args)
}
