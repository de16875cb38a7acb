package engine

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human readable description of the engine state: limits,
// stack, and every word, builtin words first.
func (e *Engine) Dump(out io.Writer) error {
	dump := dumper{e: e, out: out}
	return dump.dump()
}

type dumper struct {
	e   *Engine
	out io.Writer
	buf strings.Builder
}

func (dump *dumper) dump() error {
	fmt.Fprintf(&dump.buf, "# Engine Dump\n")
	fmt.Fprintf(&dump.buf, "  depth: %v/%v\n", dump.e.depth, dump.e.maxDepth)
	dump.dumpStack()
	dump.dumpWords()
	_, err := io.WriteString(dump.out, dump.buf.String())
	return err
}

func (dump *dumper) dumpStack() {
	fmt.Fprintf(&dump.buf, "# Stack (%v)\n", len(dump.e.stack))
	for i := len(dump.e.stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&dump.buf, "  %v: %v\n", len(dump.e.stack)-1-i, dump.e.stack[i])
	}
}

func (dump *dumper) dumpWords() {
	var builtin, defined []word
	for _, name := range dump.e.Words() {
		w := dump.e.words[name]
		if w.run != nil {
			builtin = append(builtin, w)
		} else {
			defined = append(defined, w)
		}
	}

	fmt.Fprintf(&dump.buf, "# Builtin Words (%v)\n", len(builtin))
	for _, w := range builtin {
		fmt.Fprintf(&dump.buf, "  %v\n", w.name)
	}

	fmt.Fprintf(&dump.buf, "# Defined Words (%v)\n", len(defined))
	for _, w := range defined {
		fmt.Fprintf(&dump.buf, "  %v\n", w)
	}
}
