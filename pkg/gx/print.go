package gx

import (
	"io"
	"os"
	"strings"
)

// stdout is the sink of Print and Println.
var stdout io.Writer = os.Stdout

var newline = []byte{'\n'}

// Print writes the canonical text of each value to standard output, in order,
// without separators. Write errors are ignored.
func Print(vs ...Value) {
	_, _ = Fprint(stdout, vs...)
}

// Println is Print followed by a single line terminator.
func Println(vs ...Value) {
	_, _ = Fprintln(stdout, vs...)
}

// Fprint writes the canonical text of each value to w, one write per value.
// It stops at the first write error.
func Fprint(w io.Writer, vs ...Value) (int, error) {
	var (
		total int
		buf   []byte
	)
	for _, v := range vs {
		buf = AppendText(buf[:0], v)
		if len(buf) == 0 {
			continue
		}
		n, err := w.Write(buf)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Fprintln is Fprint followed by a single line terminator.
func Fprintln(w io.Writer, vs ...Value) (int, error) {
	n, err := Fprint(w, vs...)
	if err != nil {
		return n, err
	}
	m, err := w.Write(newline)
	return n + m, err
}

// Sprint returns what Print would write.
func Sprint(vs ...Value) string {
	var sb strings.Builder
	_, _ = Fprint(&sb, vs...)
	return sb.String()
}

// Sprintln returns what Println would write.
func Sprintln(vs ...Value) string {
	var sb strings.Builder
	_, _ = Fprintln(&sb, vs...)
	return sb.String()
}
