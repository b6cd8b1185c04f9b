package progress

import (
	"fmt"
	"io"
)

// Null is a Reporter that discards every update. Use it when a build
// has no host to report to (tests, the test-tile driver).
var Null Reporter = nullReporter{}

type nullReporter struct{}

func (nullReporter) BeginStage(string) Observer { return nullObserver{} }

type nullObserver struct{}

func (nullObserver) Update(Update) {}

// Writer is a Reporter that renders each update as one line, in the
// style a terminal progress bar would print. It is the simplest real
// sink and doubles as the default for command-line hosts.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Reporter that writes progress lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) BeginStage(name string) Observer {
	fmt.Fprintf(r.w, "-- %s --\n", name)
	return &writerObserver{w: r.w}
}

type writerObserver struct {
	w io.Writer
}

func (o *writerObserver) Update(u Update) {
	fmt.Fprintln(o.w, u.String())
}
