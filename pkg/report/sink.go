// Package report renders validation outcomes for two consumers at once:
// humans reading the CI log and the CI platform's annotation parser. Both
// streams go to the same writer (stdout in production); the process exit
// code, not the text, is the authoritative pass/fail signal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/console"
	"github.com/runbookops/runbook-guard/pkg/logger"
)

var sinkLog = logger.New("report:sink")

// Sink writes human-readable lines and CI annotations. The annotation
// title is fixed per invocation profile.
type Sink struct {
	out   io.Writer
	title string
}

// NewSink creates a Sink writing to out with the given annotation title.
func NewSink(out io.Writer, title string) *Sink {
	return &Sink{out: out, title: title}
}

// Info writes an informational line.
func (s *Sink) Info(message string) {
	fmt.Fprintln(s.out, console.FormatInfoMessage(message))
}

// Success writes a success line.
func (s *Sink) Success(message string) {
	fmt.Fprintln(s.out, console.FormatSuccessMessage(message))
}

// Failure reports one validation failure: a styled human-readable line
// followed by a machine-parsable annotation. relPath may be empty when the
// failure is not attributable to a file.
func (s *Sink) Failure(relPath, message string) {
	sinkLog.Printf("Reporting failure: file=%s", relPath)
	fmt.Fprintln(s.out, console.FormatErrorMessage(message))
	fmt.Fprintln(s.out, s.annotation(relPath, message))
}

// annotation renders the CI log-annotation side channel. The format is a
// fixed external contract:
//
//	::error file=<relativePath>,title=<title>::<message>
//
// with the file attribute omitted when no path is known.
func (s *Sink) annotation(relPath, message string) string {
	if relPath == "" {
		return fmt.Sprintf("::error title=%s::%s", escapeProperty(s.title), escapeData(message))
	}
	return fmt.Sprintf("::error file=%s,title=%s::%s", escapeProperty(relPath), escapeProperty(s.title), escapeData(message))
}

// Table writes a summary table.
func (s *Sink) Table(config console.TableConfig) {
	fmt.Fprint(s.out, console.RenderTable(config))
}

// escapeData escapes an annotation message so multi-line text stays one
// log line (GitHub workflow-command escaping).
func escapeData(v string) string {
	v = strings.ReplaceAll(v, "%", "%25")
	v = strings.ReplaceAll(v, "\r", "%0D")
	v = strings.ReplaceAll(v, "\n", "%0A")
	return v
}

// escapeProperty escapes an annotation property value; properties
// additionally escape their delimiters.
func escapeProperty(v string) string {
	v = escapeData(v)
	v = strings.ReplaceAll(v, ":", "%3A")
	v = strings.ReplaceAll(v, ",", "%2C")
	return v
}
