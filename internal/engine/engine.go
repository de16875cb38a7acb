// Package engine evaluates lines of a small Forth-like language against an
// integer stack and a table of words.
package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jcorbin/lineforth/internal/flushio"
	"github.com/jcorbin/lineforth/internal/lexer"
)

// Engine owns a stack and a word table. Neither is shared with any other
// Engine, so independent engines may be used from separate goroutines; a
// single Engine is not safe for concurrent use.
type Engine struct {
	logging

	out flushio.WriteFlusher

	// The stack is shared by every nested execution: a function body operates
	// on its caller's stack.
	stack []int

	// Words only ever grow; defining an existing name replaces its binding.
	words map[string]word

	depth    int
	maxDepth int
}

type word struct {
	name string

	// run implements a builtin word; it is nil for defined words, which
	// instead re-lex and execute body on every call.
	run  func(e *Engine) error
	body string
}

func (w word) String() string {
	if w.run != nil {
		return fmt.Sprintf("%v <builtin>", w.name)
	}
	if w.body == "" {
		return fmt.Sprintf(": %v ;", w.name)
	}
	return fmt.Sprintf(": %v %v;", w.name, w.body)
}

// New creates an Engine with the builtin words defined.
func New(opts ...Option) *Engine {
	e := &Engine{
		logging: logging{markWidth: 4},
		words:   make(map[string]word, len(builtins)),
	}
	for _, w := range builtins {
		e.words[w.name] = w
	}
	e.apply(opts...)
	return e
}

// Execute runs one line. On success " OK" is written after any output the
// line produced. Any error aborts the rest of the line; effects already made
// on the stack and word table are kept. Output is flushed in either case.
func (e *Engine) Execute(line string) (err error) {
	e.logf(">", "%q", line)
	defer func() {
		if ferr := e.out.Flush(); err == nil {
			err = ferr
		}
	}()
	if err := e.execute(line, nil); err != nil {
		e.logf("!", "%v", err)
		return err
	}
	_, err = io.WriteString(e.out, " OK\n")
	return err
}

// execute runs text; site is the top-level symbol span being called when text
// is a function body, and nil at top level.
func (e *Engine) execute(text string, site *lexer.Span) error {
	if site != nil {
		if e.depth >= e.maxDepth {
			return ErrRecursionLimit
		}
		e.depth++
		defer func() { e.depth-- }()
	}

	sc := lexer.Scan(text)
	for sc.Scan() {
		sym := sc.Symbol()
		at := sym.Location()
		if site != nil {
			at = *site
		}
		switch sym := sym.(type) {
		case lexer.Comment:
			e.logf("(", "%q", sym.Content)
		case lexer.Number:
			e.push(sym.Value)
		case lexer.Function:
			e.define(sym.Name, sym.Body)
		case lexer.Word:
			if err := e.call(sym.Name, at); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

func (e *Engine) define(name, body string) {
	if _, redefined := e.words[name]; redefined {
		e.logf(":", "%v %q (redefined)", name, body)
	} else {
		e.logf(":", "%v %q", name, body)
	}
	e.words[name] = word{name: name, body: body}
}

func (e *Engine) call(name string, at lexer.Span) error {
	w, defined := e.words[name]
	if !defined {
		return &RuntimeError{Err: ErrUnknownWord, Word: name, Span: at, Suggest: e.suggest(name)}
	}
	e.logf("call", "%v @%v -- s:%v", name, at, e.stack)

	var err error
	if w.run != nil {
		err = w.run(e)
	} else {
		err = e.execute(w.body, &at)
	}

	// errors from a nested call already carry the call site
	if err != nil && !located(err) {
		err = &RuntimeError{Err: err, Word: name, Span: at}
	}
	return err
}

func (e *Engine) push(val int) {
	e.stack = append(e.stack, val)
}

func (e *Engine) pop() (int, error) {
	i := len(e.stack) - 1
	if i < 0 {
		return 0, ErrEmptyStack
	}
	val := e.stack[i]
	e.stack = e.stack[:i]
	return val, nil
}

// pop2 pops b then a, leaving the stack untouched if it holds fewer than two
// values.
func (e *Engine) pop2() (a, b int, err error) {
	i := len(e.stack) - 2
	if i < 0 {
		return 0, 0, ErrEmptyStack
	}
	a, b = e.stack[i], e.stack[i+1]
	e.stack = e.stack[:i]
	return a, b, nil
}

// Stack returns a copy of the stack, bottom first.
func (e *Engine) Stack() []int {
	stack := make([]int, len(e.stack))
	copy(stack, e.stack)
	return stack
}

// Reset clears the stack; defined words are kept.
func (e *Engine) Reset() {
	e.stack = e.stack[:0]
}

// Defined returns true if name is a builtin or defined word.
func (e *Engine) Defined(name string) bool {
	_, defined := e.words[name]
	return defined
}

// Words returns the names of all words, sorted.
func (e *Engine) Words() []string {
	names := make([]string, 0, len(e.words))
	for name := range e.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type logging struct {
	logfn     func(mess string, args ...interface{})
	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
