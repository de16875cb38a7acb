package lexer

import (
	"fmt"

	"github.com/cznic/mathutil"
)

// Span is a half-open [Start, End) offset range into a source line.
type Span struct {
	Start int
	End   int
}

// Location returns the span itself; any type embedding a Span gets it.
func (sp Span) Location() Span { return sp }

// Len returns the number of bytes covered by the span.
func (sp Span) Len() int { return sp.End - sp.Start }

func (sp Span) String() string { return fmt.Sprintf("[%d,%d)", sp.Start, sp.End) }

// Slice splits line into the parts before, within, and after the span. Span
// bounds are clamped into the line, so a stale or synthetic span never panics.
func (sp Span) Slice(line string) (before, within, after string) {
	start := mathutil.Clamp(sp.Start, 0, len(line))
	end := mathutil.Clamp(sp.End, start, len(line))
	return line[:start], line[start:end], line[end:]
}

// Symbol is one classified token: a Number, Word, Comment, or Function.
type Symbol interface {
	Location() Span
	symbol()
}

// Number is a signed integer literal.
type Number struct {
	Span
	Value int
}

// Word is any token that is not a comment, number, or function header; it is
// resolved by name when executed.
type Word struct {
	Span
	Name string
}

// Comment is the text between a balanced ( ... ) pair.
type Comment struct {
	Span
	Content string
}

// Function is a ": name body ;" definition. Body is the raw unparsed text
// between the name and the terminator.
type Function struct {
	Span
	Name string
	Body string
}

func (Number) symbol()   {}
func (Word) symbol()     {}
func (Comment) symbol()  {}
func (Function) symbol() {}

func (sym Number) String() string   { return fmt.Sprintf("number %d @%v", sym.Value, sym.Span) }
func (sym Word) String() string     { return fmt.Sprintf("word %q @%v", sym.Name, sym.Span) }
func (sym Comment) String() string  { return fmt.Sprintf("comment %q @%v", sym.Content, sym.Span) }
func (sym Function) String() string { return fmt.Sprintf(": %v %q @%v", sym.Name, sym.Body, sym.Span) }
