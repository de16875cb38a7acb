// Package fileinput reads statements one line at a time from a queue of
// input streams, tracking where each line came from.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one line of input, without its line ending.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input reads lines sequentially through a Queue of input streams. Streams
// are closed, if they implement io.Closer, once exhausted.
type Input struct {
	Queue []io.Reader

	cur io.Reader
	rr  io.RuneReader
	loc Location
	buf strings.Builder
}

// ReadLine returns the next line, moving on to the next queued stream at the
// end of each one. A final line without a line feed is still returned. Once
// every stream is exhausted, io.EOF is returned.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.takeLine(), nil
			}
			in.buf.WriteRune(r)
			continue
		}
		if err != io.EOF {
			return Line{}, fmt.Errorf("%v: %w", in.loc.Name, err)
		}

		partial := in.buf.Len() > 0
		var line Line
		if partial {
			line = in.takeLine()
		}
		in.closeIn()
		if partial {
			return line, nil
		}
	}
}

// Close closes the current stream, and any still queued.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) takeLine() Line {
	in.loc.Line++
	text := strings.TrimSuffix(in.buf.String(), "\r")
	in.buf.Reset()
	return Line{in.loc, text}
}

func (in *Input) closeIn() (err error) {
	if in.cur != nil {
		if cl, ok := in.cur.(io.Closer); ok {
			err = cl.Close()
		}
		in.cur, in.rr = nil, nil
	}
	in.buf.Reset()
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		if rr, ok := r.(io.RuneReader); ok {
			in.rr = rr
		} else {
			in.rr = bufio.NewReader(r)
		}
		in.loc = Location{Name: nameOf(r)}
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
