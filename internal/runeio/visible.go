// Package runeio renders source text with control runes made visible, so
// that echoing a line cannot disturb the terminal.
package runeio

import (
	"strings"
	"unicode/utf8"
)

// CaretForm computes the ^-escaped printable form of a control rune, or
// returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Visible returns s with every control rune replaced by its caret form, so
// that a source line can be echoed without a stray tab or escape changing
// the terminal state or the column of anything after it.
func Visible(s string) string {
	i := strings.IndexFunc(s, isControl)
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Width returns the number of terminal columns Visible(s) occupies, counting
// one column per rune.
func Width(s string) int {
	return utf8.RuneCountInString(Visible(s))
}

func isControl(r rune) bool { return CaretForm(r) != "" }
