package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/lineforth/internal/lexer"
)

var (
	ErrUnknownWord    = errors.New("unknown word")
	ErrEmptyStack     = errors.New("empty stack")
	ErrDivisionByZero = errors.New("division by zero")
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// RuntimeError is an execution failure. Span always lies within the line
// given to Execute: failures inside a function body are reported at the
// top-level call site of that function.
type RuntimeError struct {
	Err  error
	Word string
	lexer.Span

	// Suggest holds similarly named words for ErrUnknownWord.
	Suggest []string
}

func (err *RuntimeError) Error() string {
	var sb strings.Builder
	// a syntax error's own offset is within the function body, not the line
	var synErr *lexer.SyntaxError
	if errors.As(err.Err, &synErr) {
		fmt.Fprintf(&sb, "%v in %q", synErr.Err, synErr.Text)
	} else {
		fmt.Fprint(&sb, err.Err)
	}
	fmt.Fprintf(&sb, ": %q at %d", err.Word, err.Start)
	if len(err.Suggest) > 0 {
		fmt.Fprintf(&sb, " (did you mean %v?)", strings.Join(err.Suggest, " or "))
	}
	return sb.String()
}

func (err *RuntimeError) Unwrap() error { return err.Err }

func located(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re)
}
