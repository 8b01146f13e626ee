package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	valid := map[string]Mode{
		"auto":    ModeAuto,
		"ALWAYS":  ModeAlways,
		" never ": ModeNever,
	}
	for raw, want := range valid {
		got, err := ParseMode(raw)
		if err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{"", "sometimes", "yes"} {
		if _, err := ParseMode(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPrinterWritesVerbatim(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lines := []string{"hello World", "", "another world line"}
	if err := NewPrinter(&buf, ModeNever).Print(lines, "world", false); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	if want := "hello World\n\nanother world line\n"; buf.String() != want {
		t.Fatalf("unexpected output %q, want %q", buf.String(), want)
	}
}

func TestPrinterAutoModeSkipsNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModeAuto).Print([]string{"find me"}, "me", true); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if buf.String() != "find me\n" {
		t.Fatalf("expected plain output, got %q", buf.String())
	}
}

func TestPrinterNoLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModeAlways).Print(nil, "x", true); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrinterHighlightsMatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, ModeAlways)
	if err := p.Print([]string{"a World of worlds"}, "world", false); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "\x1b[") < 2 {
		t.Fatalf("expected escape sequences in %q", out)
	}
	if !strings.Contains(out, p.highlight.Sprint("World")) || !strings.Contains(out, p.highlight.Sprint("world")) {
		t.Fatalf("expected both occurrences highlighted in %q", out)
	}
	if !strings.HasPrefix(out, "a ") || !strings.HasSuffix(out, "s\n") {
		t.Fatalf("expected surrounding text preserved in %q", out)
	}
}

func TestPrinterHighlightCaseSensitive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, ModeAlways)
	if err := p.Print([]string{"World world"}, "world", true); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	want := "World " + p.highlight.Sprint("world") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrinterPropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	if err := NewPrinter(failingWriter{}, ModeNever).Print([]string{"x"}, "x", true); err == nil {
		t.Fatalf("expected write error")
	}
}
