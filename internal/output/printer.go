package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Printer writes matching lines, one per output line.
type Printer struct {
	w         io.Writer
	highlight *color.Color
}

// NewPrinter creates a Printer writing to w. Highlighting is decided once from
// mode and the kind of writer.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	p := &Printer{w: w}
	if mode.enabled(w) {
		p.highlight = color.New(color.FgRed, color.Bold)
		// fatih/color disables itself for non-terminals; the mode already decided.
		p.highlight.EnableColor()
	}
	return p
}

// Print writes lines in order. Without highlighting each line is written verbatim.
func (p *Printer) Print(lines []string, query string, caseSensitive bool) error {
	bw := bufio.NewWriter(p.w)
	for _, line := range lines {
		if p.highlight != nil && query != "" {
			line = p.mark(line, query, caseSensitive)
		}
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// mark wraps every occurrence of query in line with the highlight color.
// Case-insensitive highlighting falls back to the plain line when lowering
// changes byte offsets.
func (p *Printer) mark(line, query string, caseSensitive bool) string {
	haystack := line
	if !caseSensitive {
		lower := cases.Lower(language.Und)
		haystack = lower.String(line)
		query = lower.String(query)
		if len(haystack) != len(line) {
			return line
		}
	}

	var b strings.Builder
	for {
		idx := strings.Index(haystack, query)
		if idx < 0 {
			b.WriteString(line)
			return b.String()
		}
		end := idx + len(query)
		b.WriteString(line[:idx])
		b.WriteString(p.highlight.Sprint(line[idx:end]))
		line, haystack = line[end:], haystack[end:]
	}
}
