package engine

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

//// Builtin words

// Name   Function
//  +     pop b then a, push a + b
//  -     pop b then a, push a - b
//  *     pop b then a, push a * b
//  /     pop b then a, push a / b truncated toward zero
//  .     pop and print in decimal, without a newline
//  CR    print a newline
//  DUP   duplicate the top of stack
//  DROP  discard the top of stack
//  SWAP  exchange the top two values
//  OVER  copy the second value over the top
//  .S    print the stack, bottom first, without changing it
//  WORDS print the names of all words
var builtins = []word{
	{name: "+", run: (*Engine).add},
	{name: "-", run: (*Engine).sub},
	{name: "*", run: (*Engine).mul},
	{name: "/", run: (*Engine).div},
	{name: ".", run: (*Engine).print},
	{name: "CR", run: (*Engine).cr},
	{name: "DUP", run: (*Engine).dup},
	{name: "DROP", run: (*Engine).drop},
	{name: "SWAP", run: (*Engine).swap},
	{name: "OVER", run: (*Engine).over},
	{name: ".S", run: (*Engine).printStack},
	{name: "WORDS", run: (*Engine).printWords},
}

func (e *Engine) add() error { return e.binary(func(a, b int) int { return a + b }) }
func (e *Engine) sub() error { return e.binary(func(a, b int) int { return a - b }) }
func (e *Engine) mul() error { return e.binary(func(a, b int) int { return a * b }) }

func (e *Engine) div() error {
	if n := len(e.stack); n > 1 && e.stack[n-1] == 0 {
		return ErrDivisionByZero
	}
	return e.binary(func(a, b int) int { return a / b })
}

func (e *Engine) binary(op func(a, b int) int) error {
	a, b, err := e.pop2()
	if err == nil {
		e.push(op(a, b))
	}
	return err
}

func (e *Engine) print() error {
	val, err := e.pop()
	if err == nil {
		_, err = io.WriteString(e.out, strconv.Itoa(val))
	}
	return err
}

func (e *Engine) cr() error {
	_, err := io.WriteString(e.out, "\n")
	return err
}

func (e *Engine) dup() error {
	val, err := e.pop()
	if err == nil {
		e.push(val)
		e.push(val)
	}
	return err
}

func (e *Engine) drop() error {
	_, err := e.pop()
	return err
}

func (e *Engine) swap() error {
	a, b, err := e.pop2()
	if err == nil {
		e.push(b)
		e.push(a)
	}
	return err
}

func (e *Engine) over() error {
	a, b, err := e.pop2()
	if err == nil {
		e.push(a)
		e.push(b)
		e.push(a)
	}
	return err
}

func (e *Engine) printStack() error {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(strconv.Itoa(len(e.stack)))
	sb.WriteString(">")
	for _, val := range e.stack {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(val))
	}
	_, err := io.WriteString(e.out, sb.String())
	return err
}

func (e *Engine) printWords() error {
	_, err := io.WriteString(e.out, strings.Join(e.Words(), " "))
	return err
}

// suggest returns up to three words whose names fuzzily match name, closest
// first. Single character words are never suggested, they match too much.
func (e *Engine) suggest(name string) []string {
	const maxSuggest = 3
	var ranks fuzzy.Ranks
	for _, candidate := range e.Words() {
		if len(candidate) < 2 {
			continue
		}
		if fuzzy.MatchNormalizedFold(name, candidate) || fuzzy.MatchNormalizedFold(candidate, name) {
			ranks = append(ranks, fuzzy.Rank{
				Source:        name,
				Target:        candidate,
				Distance:      fuzzy.LevenshteinDistance(strings.ToUpper(name), strings.ToUpper(candidate)),
				OriginalIndex: len(ranks),
			})
		}
	}
	sort.Stable(ranks)
	var names []string
	for i := 0; i < len(ranks) && i < maxSuggest; i++ {
		names = append(names, ranks[i].Target)
	}
	return names
}
