// Package report prints generation progress, warnings and errors to the
// console. Progress lines follow the "[ OK ] Created <path>" convention;
// colour is applied when the output is a terminal.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ppm-tools/ppm/internal/writer"
)

var (
	okTag   = color.New(color.FgGreen).SprintFunc()
	skipTag = color.New(color.FgHiBlack).SprintFunc()
	warnTag = color.New(color.FgYellow, color.Bold).SprintFunc()
	errTag  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Reporter writes progress to out and problems to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Reporter writing to out and errOut.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// Discard returns a Reporter that prints nothing.
func Discard() *Reporter {
	return New(io.Discard, io.Discard)
}

// Created reports a newly created file or directory.
func (r *Reporter) Created(path string) {
	fmt.Fprintf(r.out, "  %s Created %s\n", okTag("[ OK ]"), path)
}

// Appended reports content appended to an existing file.
func (r *Reporter) Appended(path string) {
	fmt.Fprintf(r.out, "  %s Appended to %s\n", okTag("[ OK ]"), path)
}

// Skipped reports a path that already existed.
func (r *Reporter) Skipped(path string) {
	fmt.Fprintf(r.out, "  %s %s already exists\n", skipTag("[SKIP]"), path)
}

// Infof prints a plain progress line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Warnf prints a non-fatal problem.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.errOut, "%s %s\n", warnTag("!"), fmt.Sprintf(format, args...))
}

// Error prints err. Filesystem failures are shown with the offending path.
func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	var ioErr *writer.IOError
	if errors.As(err, &ioErr) {
		fmt.Fprintf(r.errOut, "%s cannot %s %s: %v\n", errTag("error:"), ioErr.Op, ioErr.Path, ioErr.Err)
		return
	}
	fmt.Fprintf(r.errOut, "%s %v\n", errTag("error:"), err)
}
