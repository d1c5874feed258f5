package writer

import (
	"fmt"
	"strings"
)

// Writer is an indentation-aware line writer. It is the output cursor threaded
// through one generation pass and must not be shared between goroutines.
type Writer struct {
	sb          strings.Builder
	indentLevel int
	indentUnit  string
	linePrefix  string
	needsIndent bool
	// trailing counts the newlines at the end of the buffer
	trailing int
}

// NewWriter creates a new writer that indents with indentUnit
func NewWriter(indentUnit string) *Writer {
	return &Writer{
		indentUnit:  indentUnit,
		needsIndent: true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.SetIndentLevel(w.indentLevel + 1)
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.SetIndentLevel(w.indentLevel - 1)
	}
}

// SetIndentLevel moves the cursor to an absolute indentation depth
func (w *Writer) SetIndentLevel(level int) {
	if level < 0 {
		level = 0
	}
	w.indentLevel = level
	w.linePrefix = strings.Repeat(w.indentUnit, level)
}

// IndentLevel returns the current indentation level
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Nest runs content one level deeper
func (w *Writer) Nest(content func()) {
	w.Indent()
	defer w.Dedent()
	content()
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	if w.needsIndent {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
	w.trailing = 0
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline ends the current line
func (w *Writer) Newline() {
	w.sb.WriteByte('\n')
	w.needsIndent = true
	w.trailing++
}

// BlankLine separates blocks with a single empty line. It never produces
// two consecutive empty lines and does nothing at the start of the output.
func (w *Writer) BlankLine() {
	if w.sb.Len() == 0 || w.trailing >= 2 {
		return
	}
	if w.trailing == 0 {
		w.Newline()
	}
	w.Newline()
}

// WriteRaw appends pre-rendered text verbatim, without re-indenting it
func (w *Writer) WriteRaw(text string) {
	if text == "" {
		return
	}
	w.sb.WriteString(text)

	n := strings.Count(text, "\n")
	if trimmed := strings.TrimRight(text, "\n"); len(trimmed) == 0 {
		w.trailing += n
	} else {
		w.trailing = len(text) - len(trimmed)
	}
	w.needsIndent = strings.HasSuffix(text, "\n")
}

// WriteBlock writes content inside a block with proper indentation
// Example: WriteBlock("public int Count", "}", func() { ... })
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Nest(content)
	w.WriteLine(closer)
}

// WriteComment writes a single-line comment with the given marker, e.g. "//" or "#"
func (w *Writer) WriteComment(marker, comment string) {
	if comment == "" {
		w.WriteLine(marker)
		return
	}
	w.WriteLinef("%s %s", marker, comment)
}

// WriteDocComment writes every line of doc as a comment with the given marker
func (w *Writer) WriteDocComment(marker, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		w.WriteComment(marker, strings.TrimSpace(line))
	}
}

// String returns the generated code as a string
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated code as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}
