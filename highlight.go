package main

import (
	"strings"

	"github.com/jcorbin/lineforth/internal/lexer"
	"github.com/jcorbin/lineforth/internal/runeio"
)

const (
	colorError = "\033[1;31m"
	colorReset = "\033[0m"
)

// highlight renders line with the span marked: in color, or on a second line
// of carets. Control runes in the line are made visible first.
func highlight(line string, sp lexer.Span, color bool) string {
	before, within, after := sp.Slice(line)
	var sb strings.Builder
	sb.WriteString("  ")
	if color {
		sb.WriteString(runeio.Visible(before))
		sb.WriteString(colorError)
		sb.WriteString(runeio.Visible(within))
		sb.WriteString(colorReset)
		sb.WriteString(runeio.Visible(after))
		return sb.String()
	}

	width := runeio.Width(within)
	if width == 0 {
		width = 1
	}
	sb.WriteString(runeio.Visible(line))
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", runeio.Width(before)))
	sb.WriteString(strings.Repeat("^", width))
	return sb.String()
}
