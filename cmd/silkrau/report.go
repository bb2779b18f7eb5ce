package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/twinfer/silkrau/pkg/silkrau"
)

// report prints err and writes a dump file when it needs a post-mortem.
func (a *app) report(invocation fmt.Stringer, err error) int {
	var domainErr silkrau.Error
	if errors.As(err, &domainErr) {
		fmt.Fprintln(a.stderr, err)

		var badFormat *silkrau.BadFormatError
		if errors.As(err, &badFormat) {
			a.dump(invocation, err)
		}
		return exitFailure
	}

	fmt.Fprintf(a.stderr, "Fatal, unexpected error: %v\n", err)
	fmt.Fprintln(a.stderr, silkrau.FailureStack(err))
	a.dump(invocation, err)
	return exitFailure
}

func (a *app) dump(invocation fmt.Stringer, err error) {
	name := dumpFileName(a.now())
	contents := strings.Join([]string{
		fmt.Sprintf("Failed to execute: %v", invocation),
		fmt.Sprintf("With message: %v", err),
		silkrau.FailureStack(err),
	}, "\n") + "\n"

	if writeErr := os.WriteFile(filepath.Join(a.dumpDir, name), []byte(contents), 0o644); writeErr != nil {
		fmt.Fprintf(a.stderr, "Failed to create dump file %s: %v\n", name, writeErr)
		return
	}
	fmt.Fprintf(a.stderr, "Created dump file %s\n", name)
}

// dumpFileName returns SilkRau.dump.<timestamp> with millisecond precision,
// e.g. SilkRau.dump.2024-03-09T14-05-07-042.
func dumpFileName(t time.Time) string {
	return fmt.Sprintf("SilkRau.dump.%s-%03d", t.Format("2006-01-02T15-04-05"), t.Nanosecond()/int(time.Millisecond))
}
