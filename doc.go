/* Command lineforth: a line at a time, almost FORTH

Lineforth evaluates a tiny FORTH dialect one line at a time. Each line is
split into symbols, which are run left to right against a shared stack of
integers and a table of words:

	1 2 +          numbers are pushed; words pop their operands
	( comment )    parenthesized text is skipped, nesting is allowed
	: SQ DUP * ;   defines the word SQ; definitions outlive the line
	3 SQ .         prints 9

A line that runs to completion is answered with " OK". When a symbol fails,
the rest of its line is abandoned; whatever the line already did to the stack
and the word table is kept. The failure is reported with its input location,
and the offending symbol is highlighted within the line. A failure inside a
defined word is reported at the word's call site on the line being run.

Builtin words:

	+ - * /     binary integer arithmetic: pops b, then a; pushes a op b
	.           pops and prints a value
	CR          prints a line feed
	DUP DROP    duplicate or discard the top value
	SWAP OVER   exchange the top two values, or copy the second over the top
	.S          prints the stack size and values, bottom first: <3> 1 2 3
	WORDS       prints every word name, sorted

Usage:

	lineforth [OPTIONS] [FILE...]

Files are run in order on one engine, followed by standard input when no
files are named or when -i is given; the prompt is only shown for standard
input. With --batch, each file instead runs on its own engine concurrently,
its output logged under the file's name.

Settings are read from ~/.lineforth.properties, or the --config file, and may
be overridden by flags:

	prompt     = >\u0020
	color      = true
	trace      = false
	max.depth  = 1024
	transcript = ~/lineforth.log

The exit status is 1 if any line failed, 2 on usage errors.
*/
package main
