package ui

import (
	"fmt"
	"io"
)

// Reporter writes the fixed diagnostic lines of a publish run. Lines are
// plain text so packaging scripts can match on them.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Found reports the selected artifact
func (r *Reporter) Found(path string) {
	fmt.Fprintf(r.w, "Found binary %s\n", path)
}

// Linking reports the link about to be created
func (r *Reporter) Linking(src, target string) {
	fmt.Fprintf(r.w, "Linking binary %s to %s\n", src, target)
}

// NotFound reports an exhausted search
func (r *Reporter) NotFound() {
	fmt.Fprintln(r.w, "Build result not found")
}
