package track

import (
	"fmt"
	"strings"
)

// ErrorEntry is one recorded (code, text) pair.
type ErrorEntry struct {
	Code int
	Text string
}

// ErrorChain accumulates every error recorded during a run. The first
// Append fills the primary slot; later appends extend the chain. A chain
// with a zero primary code and no entries means no error was recorded.
type ErrorChain struct {
	Code  int
	Text  string
	Chain []ErrorEntry
}

// Append records an error without discarding anything already recorded.
func (e *ErrorChain) Append(code int, text string) {
	if e.Code == 0 {
		e.Code = code
		e.Text = text
		return
	}
	e.Chain = append(e.Chain, ErrorEntry{Code: code, Text: text})
}

// Appendf records an error built from a format string.
func (e *ErrorChain) Appendf(code int, format string, args ...any) {
	e.Append(code, fmt.Sprintf(format, args...))
}

// HasError reports whether anything was recorded.
func (e *ErrorChain) HasError() bool {
	return e.Code != 0 || len(e.Chain) > 0
}

// Len returns the number of recorded errors.
func (e *ErrorChain) Len() int {
	if e.Code == 0 {
		return len(e.Chain)
	}
	return len(e.Chain) + 1
}

// Error renders the whole chain, one entry per line.
func (e *ErrorChain) Error() string {
	if !e.HasError() {
		return "no errors\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "code: %d, text: %s\n", e.Code, e.Text)
	for _, entry := range e.Chain {
		fmt.Fprintf(&b, "code: %d, text: %s\n", entry.Code, entry.Text)
	}
	return b.String()
}
