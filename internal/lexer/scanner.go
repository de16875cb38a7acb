package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnbalancedParenthesis = errors.New("unbalanced parenthesis")
	ErrMissingTerminator     = errors.New("missing ; terminator")
	ErrMissingFunctionName   = errors.New("missing function name")
)

// SyntaxError is a lexing failure; Span covers the malformed region.
type SyntaxError struct {
	Err error
	Span
	Text string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%v at %d: %q", err.Err, err.Start, err.Text)
}

func (err *SyntaxError) Unwrap() error { return err.Err }

// Scanner produces symbols from a single line, one at a time. The sequence
// ends at end of line or at the first error; a scanner is not restartable, but
// calling Scan again on the same line starts over.
type Scanner struct {
	line string
	pos  int
	sym  Symbol
	err  error
}

// Scan returns a Scanner over line.
func Scan(line string) *Scanner {
	return &Scanner{line: line}
}

// Symbol returns the symbol produced by the last successful call to Scan.
func (sc *Scanner) Symbol() Symbol { return sc.sym }

// Err returns the error, if any, that stopped scanning.
func (sc *Scanner) Err() error { return sc.err }

// All drains the scanner, returning every symbol up to the first error.
func (sc *Scanner) All() (syms []Symbol, err error) {
	for sc.Scan() {
		syms = append(syms, sc.Symbol())
	}
	return syms, sc.Err()
}

// Scan advances to the next symbol, returning false at end of line or on error.
func (sc *Scanner) Scan() bool {
	sc.sym = nil
	if sc.err != nil || sc.pos >= len(sc.line) {
		return false
	}

	p := sc.pos
	next := len(sc.line)
	// the separator search starts past the token's first character
	if i := strings.IndexByte(sc.line[p+1:], ' '); i >= 0 {
		next = p + 1 + i
	}
	token := sc.line[p:next]
	n, numErr := strconv.ParseInt(token, 10, strconv.IntSize)

	switch {
	case token[0] == '(':
		stop, err := sc.comment(p)
		if err != nil {
			sc.err = err
			return false
		}
		sc.pos = stop + 1
		return true

	case numErr == nil:
		sc.sym = Number{Span{p, next}, int(n)}

	case token[0] == ':':
		stop, err := sc.function(p)
		if err != nil {
			sc.err = err
			return false
		}
		sc.pos = stop + 1
		return true

	default:
		sc.sym = Word{Span{p, next}, token}
	}

	sc.pos = next + 1
	return true
}

func (sc *Scanner) comment(p int) (stop int, err error) {
	depth := 0
	for i := p; i < len(sc.line); i++ {
		switch sc.line[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			stop = i + 1
			sc.sym = Comment{Span{p, stop}, inner(sc.line[p:stop])}
			return stop, nil
		}
	}
	return 0, sc.fail(ErrUnbalancedParenthesis, Span{p, len(sc.line)})
}

func (sc *Scanner) function(p int) (stop int, err error) {
	depth := 0
	for i := p; i < len(sc.line); i++ {
		switch sc.line[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ';':
			if depth == 0 {
				stop = i + 1
			}
		}
		if stop != 0 {
			break
		}
	}
	if stop == 0 {
		if depth != 0 {
			return 0, sc.fail(ErrUnbalancedParenthesis, Span{p, len(sc.line)})
		}
		return 0, sc.fail(ErrMissingTerminator, Span{p, len(sc.line)})
	}

	text := inner(sc.line[p:stop])
	i := strings.IndexByte(text, ' ')
	if i <= 0 {
		return 0, sc.fail(ErrMissingFunctionName, Span{p, stop})
	}
	name, body := text[:i], text[i+1:]

	// header span covers ": name"
	nameEnd := p + 1 + len(name)
	if sc.line[p+1] == ' ' {
		nameEnd++
	}
	sc.sym = Function{Span{p, nameEnd}, name, body}
	return stop, nil
}

// inner strips the opening delimiter with one following space, and the
// closing delimiter, from a matched region.
func inner(region string) string {
	s := region[1 : len(region)-1]
	if strings.HasPrefix(s, " ") {
		s = s[1:]
	}
	return s
}

func (sc *Scanner) fail(err error, sp Span) error {
	return &SyntaxError{err, sp, sc.line[sp.Start:sp.End]}
}
