package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shibukawa/vecloc/location"
)

// Reporter receives resolution failures. Implementations render them; they
// never hand a value back to the resolver.
type Reporter interface {
	ReportOutOfBounds(subscript location.Vector, size int)
	ReportNameNotFound(subscript location.Vector, names location.Vector)
	Report(err error)
}

// WriterReporter writes rendered messages to an io.Writer.
type WriterReporter struct {
	w       io.Writer
	colored bool
	count   int
}

// NewWriterReporter creates a reporter. When colored is set, headlines and
// bullet markers are colorized.
func NewWriterReporter(w io.Writer, colored bool) *WriterReporter {
	return &WriterReporter{w: w, colored: colored}
}

// Count returns how many failures were reported.
func (r *WriterReporter) Count() int {
	return r.count
}

func (r *WriterReporter) ReportOutOfBounds(subscript location.Vector, size int) {
	r.write(outOfBounds(Message{Label: Label(location.ReasonOutOfBounds)}, subscript, size, -1))
}

func (r *WriterReporter) ReportNameNotFound(subscript location.Vector, names location.Vector) {
	r.write(nameNotFound(Message{Label: Label(location.ReasonNameNotFound)}, subscript, names))
}

func (r *WriterReporter) Report(err error) {
	if err == nil {
		return
	}

	r.write(Render(err))
}

func (r *WriterReporter) write(m Message) {
	r.count++

	if !r.colored {
		fmt.Fprintln(r.w, m.String())
		return
	}

	errLabel := color.New(color.Bold, color.FgRed)
	cross := color.New(color.FgRed).Sprint("✖")
	info := color.New(color.FgCyan).Sprint("ℹ")

	if m.Label != "" {
		fmt.Fprintf(r.w, "%s %s\n", errLabel.Sprintf("Error (%s):", m.Label), m.Headline)
	} else {
		fmt.Fprintf(r.w, "%s %s\n", errLabel.Sprint("Error:"), m.Headline)
	}

	for _, b := range m.Bullets {
		marker := cross
		if b.Kind == BulletInfo {
			marker = info
		}

		fmt.Fprintf(r.w, "%s %s\n", marker, b.Text)
	}
}
