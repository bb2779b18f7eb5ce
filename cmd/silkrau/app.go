package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/twinfer/silkrau/pkg/silkrau"
)

// app holds the process-wide state shared by the commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// dumpDir is where dump files are written; empty means the working
	// directory.
	dumpDir string
	now     func() time.Time

	verbose bool
	program *silkrau.Program
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}
}

// commandError is returned once a command has started running; anything else
// coming out of cobra is a command line usage error.
type commandError struct {
	invocation fmt.Stringer
	err        error
}

func (e *commandError) Error() string {
	return e.err.Error()
}

func (e *commandError) Unwrap() error {
	return e.err
}

func (a *app) execute(args []string) int {
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var cmdErr *commandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return exitUsage
	}
	return a.report(cmdErr.invocation, cmdErr.err)
}

// setup builds the program once flags are parsed.
func (a *app) setup() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	registry := silkrau.DefaultRegistry()
	factory := silkrau.NewFactory(registry, silkrau.WithLogger(logger))
	a.program = silkrau.NewProgram(registry, factory, a.stdout, silkrau.FilesystemPathValidator{})
}

// runCommand runs fn, marking any failure as having happened after argument
// parsing. A panic in fn is reported as a fatal error.
func runCommand[T fmt.Stringer](opts T, fn func(T) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &commandError{invocation: opts, err: pkgerrors.WithStack(fmt.Errorf("panic: %v", p))}
		}
	}()

	if err := fn(opts); err != nil {
		return &commandError{invocation: opts, err: err}
	}
	return nil
}
